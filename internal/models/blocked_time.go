package models

import "time"

const (
	BlockedTypeSlot     = "blocked_time"
	BlockedTypeVacation = "vacation"
)

// BlockedTime is an artist-declared unavailable interval. Records never
// expire on their own; the artist deletes them explicitly.
type BlockedTime struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"index:idx_blocked_artist_type" json:"artist_id"`

	Type string `gorm:"size:20;not null;index:idx_blocked_artist_type" json:"type"`

	StartDate time.Time `gorm:"index" json:"start_date"`
	EndDate   time.Time `gorm:"index" json:"end_date"`

	// StartTime + Duration are only set for blocked_time records and are the
	// inputs EndDate was derived from ("1:00 PM", "3 hours").
	StartTime string `gorm:"size:20" json:"start_time,omitempty"`
	Duration  string `gorm:"size:20" json:"duration,omitempty"`

	Reason   string `gorm:"size:500" json:"reason"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
