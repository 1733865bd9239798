package appointment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/glamora/booking-api/internal/httperr"
)

// Clock strings arrive free-form from clients: "1:00 PM", "01:00PM",
// "14:00", "9 AM". Everything is normalized to minutes since midnight.

const minutesPerDay = 1440

var clockPattern = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])?\s*$`)

func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	marker := strings.ToUpper(m[3])

	if minute > 59 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	switch marker {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, httperr.ErrBusiness("invalid_time")
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, httperr.ErrBusiness("invalid_time")
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, httperr.ErrBusiness("invalid_time")
		}
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes-since-midnight as a 12-hour display string
// ("2:30 PM"), the representation stored on appointments.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay

	hour24 := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour24 >= 12 {
		period = "PM"
	}

	hour12 := hour24 % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, period)
}

// Window is a normalized appointment time window.
type Window struct {
	// Display is what gets persisted as appointmentTime,
	// e.g. "1:00 PM - 2:30 PM".
	Display string

	StartMinutes int
	DurationMin  int
}

// ComputeWindow builds the window from a start string and either an
// explicit end string or a duration in minutes. An explicit end is used
// verbatim; it is not validated to be after the start. Durations wrap
// past midnight modulo 24h.
func ComputeWindow(start string, explicitEnd string, durationMin int) (Window, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}

	w := Window{
		Display:      start,
		StartMinutes: startMin,
		DurationMin:  durationMin,
	}

	switch {
	case explicitEnd != "":
		w.Display = start + " - " + explicitEnd
	case durationMin > 0:
		w.Display = start + " - " + FormatClock(startMin+durationMin)
	}

	return w, nil
}
