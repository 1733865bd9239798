package models

import "time"

type Service struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"index:idx_services_artist_active" json:"artist_id"`

	ServiceName        string `gorm:"size:100;not null" json:"service_name"`
	ServiceDescription string `gorm:"size:200" json:"service_description"`
	ServiceType        string `gorm:"size:20;default:'other'" json:"service_type"`

	PriceType string  `gorm:"size:20;default:'fixed'" json:"price_type"`
	Price     float64 `json:"price"`
	Currency  string  `gorm:"size:3;default:'AED'" json:"currency"`

	// Duration is an opaque display label ("1h", "90 min"); the booking flow
	// carries its own numeric duration.
	Duration string `gorm:"size:20;default:'1h'" json:"duration"`

	IsActive bool `gorm:"default:true;index:idx_services_artist_active" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
