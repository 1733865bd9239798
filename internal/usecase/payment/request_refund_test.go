package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora/booking-api/internal/audit"
	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
)

func seedPaidBooking(repo *fakeRepo) *models.Appointment {
	ap := seedPayNowBooking(repo)
	ap.PaymentStatus = string(domain.PaymentPaid)
	ap.PaymentRef = "mp-42"
	ap.Status = string(domain.StatusConfirmed)
	return ap
}

func newRefundUC(repo *fakeRepo, proc *fakeProcessor) *RequestRefund {
	return NewRequestRefund(repo, proc, audit.NewDispatcher(nil))
}

func TestRefundPaidBooking(t *testing.T) {
	repo := newPaymentRepo()
	ap := seedPaidBooking(repo)
	proc := &fakeProcessor{}
	uc := newRefundUC(repo, proc)

	out, err := uc.Execute(context.Background(), RequestRefundInput{
		ClientID:      repo.client.ID,
		AppointmentID: ap.ID,
		Reason:        "artist cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PaymentRefunded), out.PaymentStatus)
	assert.Equal(t, 1, proc.refunds)

	require.Len(t, repo.transactions, 1)
	tx := repo.transactions[0]
	assert.Equal(t, models.TransactionRefund, tx.Type)
	assert.Equal(t, models.TransactionSucceeded, tx.Status)
	assert.Equal(t, 300.0, tx.Amount)
	assert.Equal(t, "rf-1", tx.ProviderRef)
}

func TestRefundKeepsCancelledStatus(t *testing.T) {
	repo := newPaymentRepo()
	ap := seedPaidBooking(repo)
	ap.Status = string(domain.StatusCancelled)
	uc := newRefundUC(repo, &fakeProcessor{})

	out, err := uc.Execute(context.Background(), RequestRefundInput{
		ClientID:      repo.client.ID,
		AppointmentID: ap.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), out.Status)
	assert.Equal(t, string(domain.PaymentRefunded), out.PaymentStatus)
}

func TestRefundRequiresPaidBooking(t *testing.T) {
	repo := newPaymentRepo()
	ap := seedPayNowBooking(repo)
	proc := &fakeProcessor{}
	uc := newRefundUC(repo, proc)

	_, err := uc.Execute(context.Background(), RequestRefundInput{
		ClientID:      repo.client.ID,
		AppointmentID: ap.ID,
	})
	assert.True(t, httperr.IsBusiness(err, "not_paid"))
	assert.Zero(t, proc.refunds)
}

func TestRefundProviderFailureKeepsPaidState(t *testing.T) {
	repo := newPaymentRepo()
	ap := seedPaidBooking(repo)
	proc := &fakeProcessor{refundFail: true}
	uc := newRefundUC(repo, proc)

	_, err := uc.Execute(context.Background(), RequestRefundInput{
		ClientID:      repo.client.ID,
		AppointmentID: ap.ID,
	})
	assert.True(t, httperr.IsBusiness(err, "refund_failed"))
	assert.Equal(t, string(domain.PaymentPaid), ap.PaymentStatus)
	assert.Zero(t, repo.commits)
	assert.Empty(t, repo.transactions)
}

func TestDoubleRefundRejected(t *testing.T) {
	repo := newPaymentRepo()
	ap := seedPaidBooking(repo)
	uc := newRefundUC(repo, &fakeProcessor{})

	in := RequestRefundInput{ClientID: repo.client.ID, AppointmentID: ap.ID}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "not_paid"))
	assert.Len(t, repo.transactions, 1)
}
