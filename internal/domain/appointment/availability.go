package appointment

import "time"

// Availability is checked at day granularity on purpose: one live
// appointment or one active blocked interval makes the whole day
// unavailable. Coarse but conservative; per-slot math is not attempted
// because service durations vary per booking.

type AvailabilityInput struct {
	ArtistID uint
	Date     time.Time
	// Time is echoed back to the caller; the check itself ignores it.
	Time string
}

type Conflicts struct {
	Appointments int `json:"appointments"`
	BlockedTime  int `json:"blockedTime"`
	Vacations    int `json:"vacations"`
}

type Availability struct {
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"`
	Available bool      `json:"available"`
	Conflicts Conflicts `json:"conflicts"`
}

func (c Conflicts) None() bool {
	return c.Appointments == 0 && c.BlockedTime == 0 && c.Vacations == 0
}
