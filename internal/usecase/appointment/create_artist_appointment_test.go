package appointment

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

func newArtistUC(repo *fakeRepo) *CreateArtistAppointment {
	return NewCreateArtistAppointment(repo, audit.NewDispatcher(nil), nil, 150, testTZ)
}

func TestArtistAppointmentAutoConfirms(t *testing.T) {
	repo, artist, client, services := seedMarketplace(t)
	uc := newArtistUC(repo)

	ap, err := uc.Execute(context.Background(), CreateArtistAppointmentInput{
		ArtistID:   artist.ID,
		ClientID:   client.ID,
		ServiceIDs: []uint{services[0].ID},
		Date:       "2024-06-01",
		Time:       "11:00",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.Equal(t, client.ID, ap.ClientID)
}

func TestArtistAppointmentRegistersWalkInClient(t *testing.T) {
	repo, artist, _, services := seedMarketplace(t)
	uc := newArtistUC(repo)

	ap, err := uc.Execute(context.Background(), CreateArtistAppointmentInput{
		ArtistID:        artist.ID,
		ClientFirstName: "Noor",
		ClientLastName:  "H",
		ClientEmail:     "Noor.H@mail.com",
		ServiceIDs:      []uint{services[0].ID},
		Date:            "2024-06-01",
		Time:            "11:00",
	})
	require.NoError(t, err)

	created, err := repo.FindUserByEmail(context.Background(), "noor.h@mail.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, created.Role)
	assert.NotEmpty(t, created.PasswordHash)
	assert.Equal(t, created.ID, ap.ClientID)
}

func TestArtistAppointmentReusesExistingEmail(t *testing.T) {
	repo, artist, client, services := seedMarketplace(t)
	uc := newArtistUC(repo)

	ap, err := uc.Execute(context.Background(), CreateArtistAppointmentInput{
		ArtistID:        artist.ID,
		ClientFirstName: "Sara",
		ClientLastName:  "A",
		ClientEmail:     client.Email,
		ServiceIDs:      []uint{services[0].ID},
		Date:            "2024-06-01",
		Time:            "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, client.ID, ap.ClientID)
}

func TestArtistAppointmentNeedsClientDetails(t *testing.T) {
	repo, artist, _, services := seedMarketplace(t)
	uc := newArtistUC(repo)

	_, err := uc.Execute(context.Background(), CreateArtistAppointmentInput{
		ArtistID:        artist.ID,
		ClientFirstName: "Noor",
		ServiceIDs:      []uint{services[0].ID},
		Date:            "2024-06-01",
		Time:            "11:00",
	})
	assert.True(t, httperr.IsBusiness(err, "client_details_required"))
}
