package blockedtime

import (
	"regexp"
	"strconv"
	"time"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
)

var hoursPattern = regexp.MustCompile(`\d+`)

// ParseDurationHours pulls the leading number out of a duration label
// like "3 hours" or "2h".
func ParseDurationHours(s string) (int, error) {
	m := hoursPattern.FindString(s)
	if m == "" {
		return 0, httperr.ErrBusiness("invalid_duration")
	}
	return strconv.Atoi(m)
}

// DeriveEndDate resolves the end of a same-day blocked slot from its
// start clock plus a duration label: 2024-06-01 + "1:00 PM" + "3 hours"
// ends at 2024-06-01T16:00, not at the start day's midnight.
func DeriveEndDate(startDate time.Time, startTime, duration string) (time.Time, error) {
	startMin, err := domain.ParseClock(startTime)
	if err != nil {
		return time.Time{}, err
	}

	hours, err := ParseDurationHours(duration)
	if err != nil {
		return time.Time{}, err
	}

	day := time.Date(
		startDate.Year(), startDate.Month(), startDate.Day(),
		0, 0, 0, 0,
		startDate.Location(),
	)

	return day.
		Add(time.Duration(startMin) * time.Minute).
		Add(time.Duration(hours) * time.Hour), nil
}

// Validate enforces the write-time invariant: violating records are
// rejected, never silently corrected.
func Validate(bt *models.BlockedTime) error {
	if bt.Type != models.BlockedTypeSlot && bt.Type != models.BlockedTypeVacation {
		return httperr.ErrBusiness("invalid_type")
	}
	if bt.EndDate.Before(bt.StartDate) {
		return httperr.ErrBusiness("end_before_start")
	}
	return nil
}
