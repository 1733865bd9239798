package appointment

import (
	"time"

	"github.com/glamora/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Who ended a booking; stored on the appointment for audit.
const (
	CancelledByArtist = "artist"
	CancelledByClient = "client"
	CancelledBySystem = "system"
)

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Reject(ap *models.Appointment) error {
	if err := CanReject(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	return nil
}

func Cancel(ap *models.Appointment, reason, by string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.CancelledBy = by
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// MarkPaid records a successful charge and auto-confirms a still-pending
// booking (the pay-now path).
func MarkPaid(ap *models.Appointment, providerRef string) error {
	if err := CanPay(PaymentStatus(ap.PaymentStatus)); err != nil {
		return err
	}

	ap.PaymentStatus = string(PaymentPaid)
	ap.PaymentRef = providerRef

	if Status(ap.Status) == StatusPending {
		ap.Status = string(StatusConfirmed)
	}
	return nil
}

func MarkPaymentFailed(ap *models.Appointment) error {
	if err := CanPay(PaymentStatus(ap.PaymentStatus)); err != nil {
		return err
	}

	ap.PaymentStatus = string(PaymentFailed)
	return nil
}

// MarkRefunded only touches the payment machine; the appointment status
// (cancelled or otherwise) is left alone.
func MarkRefunded(ap *models.Appointment) error {
	if err := CanRefund(PaymentStatus(ap.PaymentStatus)); err != nil {
		return err
	}

	ap.PaymentStatus = string(PaymentRefunded)
	return nil
}
