package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora/booking-api/internal/audit"
	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/notify"
)

func seedPendingAppointment(t *testing.T) (*fakeRepo, uint, uint) {
	t.Helper()

	repo, artist, client, services := seedMarketplace(t)
	booking := newBookingUC(repo)

	ap, err := booking.Execute(context.Background(), CreateBookingInput{
		ClientID:   client.ID,
		ArtistID:   artist.ID,
		ServiceIDs: []uint{services[0].ID},
		Date:       "2024-06-01",
		Time:       "10:00",
	})
	require.NoError(t, err)

	return repo, artist.ID, ap.ID
}

func newStatusUC(repo *fakeRepo) *UpdateStatus {
	return NewUpdateStatus(repo, audit.NewDispatcher(nil), notify.NopSender{}, testTZ)
}

func TestUpdateStatusConfirmThenComplete(t *testing.T) {
	repo, artistID, apID := seedPendingAppointment(t)
	uc := newStatusUC(repo)

	ap, err := uc.Execute(context.Background(), UpdateStatusInput{
		ArtistID:      artistID,
		AppointmentID: apID,
		Status:        string(domain.StatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)

	ap, err = uc.Execute(context.Background(), UpdateStatusInput{
		ArtistID:      artistID,
		AppointmentID: apID,
		Status:        string(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)
}

func TestUpdateStatusCannotCompletePending(t *testing.T) {
	repo, artistID, apID := seedPendingAppointment(t)
	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ArtistID:      artistID,
		AppointmentID: apID,
		Status:        string(domain.StatusCompleted),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateStatusCancelKeepsReason(t *testing.T) {
	repo, artistID, apID := seedPendingAppointment(t)
	uc := newStatusUC(repo)

	ap, err := uc.Execute(context.Background(), UpdateStatusInput{
		ArtistID:           artistID,
		AppointmentID:      apID,
		Status:             string(domain.StatusCancelled),
		CancellationReason: "double booked offline",
	})
	require.NoError(t, err)

	assert.Equal(t, "double booked offline", ap.CancellationReason)
	assert.Equal(t, domain.CancelledByArtist, ap.CancelledBy)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo, artistID, apID := seedPendingAppointment(t)
	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ArtistID:      artistID,
		AppointmentID: apID,
		Status:        "snoozed",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatusScopedToOwner(t *testing.T) {
	repo, _, apID := seedPendingAppointment(t)
	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ArtistID:      9999,
		AppointmentID: apID,
		Status:        string(domain.StatusConfirmed),
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
