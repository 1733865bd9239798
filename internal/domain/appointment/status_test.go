package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
)

func TestStatusTransitionMatrix(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected}

	for _, from := range all {
		assert.Equal(t, from == StatusPending, CanConfirm(from) == nil, "confirm from %s", from)
		assert.Equal(t, from == StatusPending, CanReject(from) == nil, "reject from %s", from)
		assert.Equal(t, from == StatusPending || from == StatusConfirmed, CanCancel(from) == nil, "cancel from %s", from)
		assert.Equal(t, from == StatusConfirmed, CanComplete(from) == nil, "complete from %s", from)
	}
}

func TestTerminalStatusesNeverMove(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusRejected} {
		require.True(t, s.Terminal())
		assert.Error(t, CanConfirm(s))
		assert.Error(t, CanReject(s))
		assert.Error(t, CanCancel(s))
		assert.Error(t, CanComplete(s))
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(false))
	assert.Equal(t, StatusConfirmed, InitialStatus(true))
}

func TestCancelRecordsActorAndReason(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Cancel(ap, "client no-show", CancelledByArtist, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, "client no-show", ap.CancellationReason)
	assert.Equal(t, CancelledByArtist, ap.CancelledBy)
	require.NotNil(t, ap.CancelledAt)
	assert.True(t, ap.CancelledAt.Equal(now))
}

func TestCompleteStampsTimestamp(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
}

func TestPaymentMachine(t *testing.T) {
	assert.NoError(t, CanPay(PaymentPending))
	assert.NoError(t, CanPay(PaymentFailed))

	err := CanPay(PaymentPaid)
	assert.True(t, httperr.IsBusiness(err, "already_paid"))

	err = CanPay(PaymentRefunded)
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_state"))

	assert.NoError(t, CanRefund(PaymentPaid))
	for _, s := range []PaymentStatus{PaymentPending, PaymentFailed, PaymentRefunded} {
		assert.True(t, httperr.IsBusiness(CanRefund(s), "not_paid"), string(s))
	}
}

func TestMarkPaidAutoConfirmsPendingBooking(t *testing.T) {
	ap := &models.Appointment{
		Status:        string(StatusPending),
		PaymentStatus: string(PaymentPending),
	}

	require.NoError(t, MarkPaid(ap, "mp-123"))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, string(PaymentPaid), ap.PaymentStatus)
	assert.Equal(t, "mp-123", ap.PaymentRef)
}

func TestMarkPaidLeavesNonPendingStatusAlone(t *testing.T) {
	ap := &models.Appointment{
		Status:        string(StatusConfirmed),
		PaymentStatus: string(PaymentFailed),
	}

	require.NoError(t, MarkPaid(ap, "mp-456"))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestRefundKeepsAppointmentStatus(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{
		Status:        string(StatusConfirmed),
		PaymentStatus: string(PaymentPaid),
	}

	require.NoError(t, Cancel(ap, "travel", CancelledByClient, now))
	require.NoError(t, MarkRefunded(ap))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, string(PaymentRefunded), ap.PaymentStatus)
}

func TestDoubleRefundRejected(t *testing.T) {
	ap := &models.Appointment{PaymentStatus: string(PaymentPaid)}

	require.NoError(t, MarkRefunded(ap))
	err := MarkRefunded(ap)
	assert.True(t, httperr.IsBusiness(err, "not_paid"))
}
