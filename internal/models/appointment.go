package models

import "time"

type VenueDetails struct {
	VenueName string `gorm:"size:100" json:"venue_name"`
	Street    string `gorm:"size:255" json:"street"`
	City      string `gorm:"size:100" json:"city"`
	State     string `gorm:"size:100" json:"state"`
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ArtistID uint `gorm:"index:idx_appointments_artist_day" json:"artist_id"`
	Artist   User `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"artist"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// AppointmentDate is the calendar day at midnight in the platform
	// timezone; AppointmentTime is the display window ("1:00 PM - 2:30 PM").
	AppointmentDate time.Time `gorm:"index:idx_appointments_artist_day" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:50" json:"appointment_time"`

	Venue        string       `gorm:"size:20;default:'artist_studio'" json:"venue"`
	VenueDetails VenueDetails `gorm:"embedded;embeddedPrefix:venue_" json:"venue_details"`

	// Snapshotted at booking time; later service edits never touch these.
	Services []AppointmentService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	TotalAmount float64 `json:"total_amount"`
	ServiceFee  float64 `json:"service_fee"`
	Currency    string  `gorm:"size:3;default:'AED'" json:"currency"`
	ServiceType string  `gorm:"size:20;default:'other'" json:"service_type"`

	PaymentMethod string `gorm:"size:20;default:'pay_at_venue'" json:"payment_method"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaymentRef    string `gorm:"size:100" json:"-"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	Notes              string `gorm:"size:500" json:"notes"`
	CancellationReason string `gorm:"size:500" json:"cancellation_reason"`
	CancelledBy        string `gorm:"size:20" json:"cancelled_by"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService is a priced snapshot of one selected service.
type AppointmentService struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	ServiceID   uint    `json:"service_id"`
	ServiceName string  `gorm:"size:100" json:"service_name"`
	Price       float64 `json:"price"`
	Currency    string  `gorm:"size:3" json:"currency"`
	Duration    string  `gorm:"size:20" json:"duration"`
}
