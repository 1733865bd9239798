package payment

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/glamora/booking-api/internal/audit"
	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
	"github.com/glamora/booking-api/internal/payments"
)

type RequestRefundInput struct {
	ClientID      uint
	AppointmentID uint
	Reason        string
}

type RequestRefund struct {
	repo      domain.Repository
	processor payments.Processor
	audit     *audit.Dispatcher
}

func NewRequestRefund(
	repo domain.Repository,
	processor payments.Processor,
	auditor *audit.Dispatcher,
) *RequestRefund {
	return &RequestRefund{
		repo:      repo,
		processor: processor,
		audit:     auditor,
	}
}

// Execute refunds a paid booking. The refund only moves the payment
// machine; the appointment status (cancelled or not) is left untouched.
func (uc *RequestRefund) Execute(
	ctx context.Context,
	in RequestRefundInput,
) (*models.Appointment, error) {

	var result payments.RefundResult

	ap, err := uc.repo.UpdateAppointmentPayment(ctx, in.AppointmentID, in.ClientID, func(ap *models.Appointment) error {
		if err := domain.CanRefund(domain.PaymentStatus(ap.PaymentStatus)); err != nil {
			return err
		}

		var err error
		result, err = uc.processor.Refund(ctx, ap.PaymentRef, ap.TotalAmount)
		if err != nil {
			log.Printf("refund failed for appointment %d: %v", ap.ID, err)
			return httperr.ErrBusiness("refund_failed")
		}

		return domain.MarkRefunded(ap)
	})
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ArtistID:      ap.ArtistID,
		ClientID:      &ap.ClientID,
		AppointmentID: &ap.ID,
		Type:          models.TransactionRefund,
		Status:        models.TransactionSucceeded,
		Amount:        ap.TotalAmount,
		Currency:      ap.Currency,
		Description:   fmt.Sprintf("Refund for appointment %d: %s", ap.ID, in.Reason),
		PaymentMethod: "card",
		Reference:     uuid.NewString(),
		ProviderRef:   result.RefundRef,
	}
	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		log.Printf("failed to record refund transaction for appointment %d: %v", ap.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "refund_processed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
