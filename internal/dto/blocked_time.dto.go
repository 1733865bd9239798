package dto

import (
	"time"

	"github.com/glamora/booking-api/internal/models"
)

type BlockedTimeDTO struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	StartTime string    `json:"start_time,omitempty"`
	Duration  string    `json:"duration,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	IsActive  bool      `json:"is_active"`
}

func NewBlockedTimeDTO(bt *models.BlockedTime) BlockedTimeDTO {
	return BlockedTimeDTO{
		ID:        bt.ID,
		Type:      bt.Type,
		StartDate: bt.StartDate,
		EndDate:   bt.EndDate,
		StartTime: bt.StartTime,
		Duration:  bt.Duration,
		Reason:    bt.Reason,
		IsActive:  bt.IsActive,
	}
}

type TransactionDTO struct {
	ID            uint      `json:"id"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Description   string    `json:"description,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	Reference     string    `json:"reference"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewTransactionDTO(tx *models.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:            tx.ID,
		Type:          tx.Type,
		Status:        tx.Status,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Description:   tx.Description,
		PaymentMethod: tx.PaymentMethod,
		Reference:     tx.Reference,
		CreatedAt:     tx.CreatedAt,
	}
}
