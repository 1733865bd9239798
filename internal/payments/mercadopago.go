package payments

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"

	"github.com/glamora/booking-api/internal/httperr"
)

const statusApproved = "approved"

// MercadoPago adapts the Mercado Pago SDK to the Processor interface.
type MercadoPago struct {
	payments payment.Client
	refunds  refund.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		payments: payment.NewClient(cfg),
		refunds:  refund.NewClient(cfg),
	}, nil
}

func (m *MercadoPago) Charge(ctx context.Context, in ChargeInput) (ChargeResult, error) {
	req := payment.Request{
		TransactionAmount: in.Amount,
		Description:       in.Description,
		Token:             in.CardToken,
		Installments:      1,
		Payer: &payment.PayerRequest{
			Email: in.PayerEmail,
		},
	}

	resp, err := m.payments.Create(ctx, req)
	if err != nil {
		return ChargeResult{}, fmt.Errorf("mercadopago charge: %w", err)
	}

	return ChargeResult{
		ProviderRef: strconv.Itoa(resp.ID),
		Approved:    resp.Status == statusApproved,
		Detail:      resp.StatusDetail,
	}, nil
}

func (m *MercadoPago) Refund(ctx context.Context, providerRef string, amount float64) (RefundResult, error) {
	id, err := strconv.Atoi(providerRef)
	if err != nil {
		return RefundResult{}, httperr.ErrBusiness("invalid_payment_reference")
	}

	resp, err := m.refunds.Create(ctx, id)
	if err != nil {
		return RefundResult{}, fmt.Errorf("mercadopago refund: %w", err)
	}

	return RefundResult{
		RefundRef: strconv.Itoa(resp.ID),
		Status:    resp.Status,
	}, nil
}

func (m *MercadoPago) Status(ctx context.Context, providerRef string) (string, error) {
	id, err := strconv.Atoi(providerRef)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_payment_reference")
	}

	resp, err := m.payments.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("mercadopago status: %w", err)
	}

	return resp.Status, nil
}

var _ Processor = (*MercadoPago)(nil)
