package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/timezone"
)

type fakeCache struct {
	entries map[string]domain.Conflicts
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]domain.Conflicts{}}
}

func (c *fakeCache) Get(_ context.Context, artistID uint, day time.Time) (domain.Conflicts, bool) {
	v, ok := c.entries[dayKey(artistID, day)]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, artistID uint, day time.Time, conflicts domain.Conflicts) {
	c.entries[dayKey(artistID, day)] = conflicts
	c.sets++
}

func testDay(t *testing.T, raw string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", raw, timezone.Location(testTZ))
	require.NoError(t, err)
	return day
}

func TestCheckAvailabilityFreeDay(t *testing.T) {
	repo, artist, _, _ := seedMarketplace(t)
	uc := NewCheckAvailability(repo, nil)

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID: artist.ID,
		Date:     testDay(t, "2024-06-01"),
		Time:     "2:00 PM",
	})
	require.NoError(t, err)

	assert.True(t, out.Available)
	assert.Equal(t, "2024-06-01", out.Date)
	assert.Equal(t, "2:00 PM", out.Time)
	assert.True(t, out.Conflicts.None())
}

func TestCheckAvailabilityCountsLiveAppointments(t *testing.T) {
	repo, artist, client, services := seedMarketplace(t)
	booking := newBookingUC(repo)

	_, err := booking.Execute(context.Background(), CreateBookingInput{
		ClientID:   client.ID,
		ArtistID:   artist.ID,
		ServiceIDs: []uint{services[0].ID},
		Date:       "2024-06-01",
		Time:       "10:00",
	})
	require.NoError(t, err)

	uc := NewCheckAvailability(repo, nil)
	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID: artist.ID,
		Date:     testDay(t, "2024-06-01"),
	})
	require.NoError(t, err)

	assert.False(t, out.Available)
	assert.Equal(t, 1, out.Conflicts.Appointments)
}

func TestCheckAvailabilityCountsVacations(t *testing.T) {
	repo, artist, _, _ := seedMarketplace(t)
	day := testDay(t, "2024-06-01")
	repo.vacationDays[dayKey(artist.ID, day)] = 1

	uc := NewCheckAvailability(repo, nil)
	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID: artist.ID,
		Date:     day,
	})
	require.NoError(t, err)

	assert.False(t, out.Available)
	assert.Equal(t, 1, out.Conflicts.Vacations)
}

func TestCheckAvailabilityUsesCache(t *testing.T) {
	repo, artist, _, _ := seedMarketplace(t)
	cache := newFakeCache()
	day := testDay(t, "2024-06-01")

	uc := NewCheckAvailability(repo, cache)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{ArtistID: artist.ID, Date: day})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// A conflict written behind the cache is not seen until it expires.
	repo.blockedDays[dayKey(artist.ID, day)] = 1

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{ArtistID: artist.ID, Date: day})
	require.NoError(t, err)
	assert.True(t, out.Available)
	assert.Equal(t, 1, cache.sets)
}

func TestCheckAvailabilityUnknownArtist(t *testing.T) {
	repo, _, _, _ := seedMarketplace(t)
	uc := NewCheckAvailability(repo, nil)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID: 9999,
		Date:     testDay(t, "2024-06-01"),
	})
	assert.True(t, httperr.IsBusiness(err, "artist_not_found"))
}
