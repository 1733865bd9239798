package blockedtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
)

func TestParseDurationHours(t *testing.T) {
	for in, want := range map[string]int{
		"3 hours": 3,
		"2h":      2,
		"1 hour":  1,
		"10":      10,
	} {
		got, err := ParseDurationHours(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseDurationHoursRejectsNonNumeric(t *testing.T) {
	_, err := ParseDurationHours("all day")
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
}

func TestDeriveEndDateAnchorsOnStartClock(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	end, err := DeriveEndDate(start, "1:00 PM", "3 hours")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC), end)
}

func TestDeriveEndDateIgnoresStartClockInDateArg(t *testing.T) {
	// A start date carrying a time-of-day must not shift the result.
	start := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	end, err := DeriveEndDate(start, "10:00", "2 hours")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), end)
}

func TestDeriveEndDateInvalidClock(t *testing.T) {
	_, err := DeriveEndDate(time.Now(), "25:00", "2 hours")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestValidate(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	ok := &models.BlockedTime{
		Type:      models.BlockedTypeVacation,
		StartDate: day,
		EndDate:   day.AddDate(0, 0, 7),
	}
	assert.NoError(t, Validate(ok))

	sameDay := &models.BlockedTime{
		Type:      models.BlockedTypeSlot,
		StartDate: day,
		EndDate:   day,
	}
	assert.NoError(t, Validate(sameDay))

	inverted := &models.BlockedTime{
		Type:      models.BlockedTypeVacation,
		StartDate: day,
		EndDate:   day.AddDate(0, 0, -1),
	}
	assert.True(t, httperr.IsBusiness(Validate(inverted), "end_before_start"))

	unknown := &models.BlockedTime{
		Type:      "holiday",
		StartDate: day,
		EndDate:   day,
	}
	assert.True(t, httperr.IsBusiness(Validate(unknown), "invalid_type"))
}
