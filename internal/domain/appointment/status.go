package appointment

import "github.com/glamora/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// Status and PaymentStatus are two independent machines. Any Status may
// coexist with any PaymentStatus: in particular a cancelled appointment
// stays paid until the client explicitly requests a refund.

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Terminal statuses never transition again.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReject(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus is pending for client bookings; artist-created
// appointments start confirmed (the artist is trusted).
func InitialStatus(artistCreated bool) Status {
	if artistCreated {
		return StatusConfirmed
	}
	return StatusPending
}

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// CanPay permits pending and failed (retry after a declined charge).
// Once paid, the only exits are refunded and failed.
func CanPay(current PaymentStatus) error {
	switch current {
	case PaymentPending, PaymentFailed:
		return nil
	case PaymentPaid:
		return httperr.ErrBusiness("already_paid")
	}
	return httperr.ErrBusiness("invalid_payment_state")
}

func CanRefund(current PaymentStatus) error {
	if current != PaymentPaid {
		return httperr.ErrBusiness("not_paid")
	}
	return nil
}
