package payments

import "context"

// Processor is the opaque payment capability: charge, refund, status.
// The booking core never talks to a provider SDK directly.
type Processor interface {
	Charge(ctx context.Context, in ChargeInput) (ChargeResult, error)
	Refund(ctx context.Context, providerRef string, amount float64) (RefundResult, error)
	Status(ctx context.Context, providerRef string) (string, error)
}

type ChargeInput struct {
	Amount      float64
	Currency    string
	Description string

	// CardToken is the tokenized payment method produced client-side.
	CardToken  string
	PayerEmail string
}

type ChargeResult struct {
	ProviderRef string
	Approved    bool
	Detail      string
}

type RefundResult struct {
	RefundRef string
	Status    string
}
