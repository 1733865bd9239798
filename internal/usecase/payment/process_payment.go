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
	"github.com/glamora/booking-api/internal/notify"
	"github.com/glamora/booking-api/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type ProcessPaymentInput struct {
	ClientID      uint
	AppointmentID uint
	CardToken     string
}

// ======================================================
// USE CASE
// ======================================================

type ProcessPayment struct {
	repo      domain.Repository
	processor payments.Processor
	audit     *audit.Dispatcher
	mailer    notify.Sender
}

func NewProcessPayment(
	repo domain.Repository,
	processor payments.Processor,
	auditor *audit.Dispatcher,
	mailer notify.Sender,
) *ProcessPayment {
	return &ProcessPayment{
		repo:      repo,
		processor: processor,
		audit:     auditor,
		mailer:    mailer,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute charges a pay-now booking. The whole check-charge-persist
// sequence runs while the appointment row is locked, so concurrent calls
// serialize and retried calls for an already-paid appointment fail with
// already_paid before the processor is touched. A processor failure is
// surfaced but the booking itself is kept.
func (uc *ProcessPayment) Execute(
	ctx context.Context,
	in ProcessPaymentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	var result payments.ChargeResult
	declined := false

	ap, err := uc.repo.UpdateAppointmentPayment(ctx, in.AppointmentID, in.ClientID, func(ap *models.Appointment) error {
		if ap.PaymentMethod != "pay_now" {
			return httperr.ErrBusiness("invalid_payment_method")
		}

		if err := domain.CanPay(domain.PaymentStatus(ap.PaymentStatus)); err != nil {
			return err
		}

		result, err = uc.processor.Charge(ctx, payments.ChargeInput{
			Amount:      ap.TotalAmount,
			Currency:    ap.Currency,
			Description: fmt.Sprintf("Booking payment for appointment %d", ap.ID),
			CardToken:   in.CardToken,
			PayerEmail:  client.Email,
		})
		if err != nil {
			// Transport-level failure: payment state stays untouched so the
			// client can retry.
			log.Printf("payment charge failed for appointment %d: %v", ap.ID, err)
			return httperr.ErrBusiness("payment_failed")
		}

		if !result.Approved {
			// The decline still commits: the failed status is real state.
			declined = true
			return domain.MarkPaymentFailed(ap)
		}

		return domain.MarkPaid(ap, result.ProviderRef)
	})
	if err != nil {
		return nil, err
	}

	if declined {
		uc.recordTransaction(ctx, ap, models.TransactionDeposit, models.TransactionFailed, result.ProviderRef)
		return nil, httperr.ErrBusiness("payment_declined")
	}

	uc.recordTransaction(ctx, ap, models.TransactionDeposit, models.TransactionSucceeded, result.ProviderRef)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "payment_processed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notify(ctx, client.Email, ap)

	return ap, nil
}

func (uc *ProcessPayment) recordTransaction(
	ctx context.Context,
	ap *models.Appointment,
	txType string,
	status string,
	providerRef string,
) {
	tx := &models.Transaction{
		ArtistID:      ap.ArtistID,
		ClientID:      &ap.ClientID,
		AppointmentID: &ap.ID,
		Type:          txType,
		Status:        status,
		Amount:        ap.TotalAmount,
		Currency:      ap.Currency,
		Description:   fmt.Sprintf("Booking payment for appointment %d", ap.ID),
		PaymentMethod: "card",
		Reference:     uuid.NewString(),
		ProviderRef:   providerRef,
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		log.Printf("failed to record %s transaction for appointment %d: %v", txType, ap.ID, err)
	}
}

func (uc *ProcessPayment) notify(ctx context.Context, email string, ap *models.Appointment) {
	if uc.mailer == nil || email == "" {
		return
	}

	body := fmt.Sprintf(
		"We received your payment of %.2f %s for your appointment on %s.",
		ap.TotalAmount, ap.Currency, ap.AppointmentDate.Format("2006-01-02"),
	)

	if err := uc.mailer.Send(ctx, email, "Payment received", body); err != nil {
		log.Printf("payment notification failed for appointment %d: %v", ap.ID, err)
	}
}
