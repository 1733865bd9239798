package models

import "time"

const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
	TransactionRefund     = "refund"
)

const (
	TransactionPending   = "pending"
	TransactionSucceeded = "succeeded"
	TransactionFailed    = "failed"
	TransactionInTransit = "in_transit"
)

type BankDetails struct {
	BankName      string `gorm:"size:100" json:"bank_name,omitempty"`
	AccountNumber string `gorm:"size:50" json:"account_number,omitempty"`
	IBAN          string `gorm:"size:50" json:"iban,omitempty"`
}

type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ArtistID      uint  `gorm:"index:idx_transactions_artist_status" json:"artist_id"`
	ClientID      *uint `json:"client_id"`
	AppointmentID *uint `gorm:"index" json:"appointment_id"`

	Type   string `gorm:"size:20;not null;index" json:"type"`
	Status string `gorm:"size:20;default:'pending';index:idx_transactions_artist_status" json:"status"`

	Amount   float64 `json:"amount"`
	Currency string  `gorm:"size:3;default:'AED'" json:"currency"`

	Description   string `gorm:"size:255" json:"description"`
	PaymentMethod string `gorm:"size:20;default:'card'" json:"payment_method"`

	BankDetails BankDetails `gorm:"embedded;embeddedPrefix:bank_" json:"bank_details"`

	// Reference is our idempotency handle; ProviderRef is the processor's id.
	Reference   string `gorm:"size:64;uniqueIndex" json:"reference"`
	ProviderRef string `gorm:"size:100" json:"provider_ref,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
