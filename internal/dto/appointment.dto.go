package dto

import (
	"time"

	"github.com/glamora/booking-api/internal/models"
)

// Explicit response shapes per operation instead of ad-hoc field
// spreading at the handler level.

type ServiceSnapshotDTO struct {
	ServiceID   uint    `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Duration    string  `json:"duration"`
}

type AppointmentDTO struct {
	ID       uint `json:"id"`
	ArtistID uint `json:"artist_id"`
	ClientID uint `json:"client_id"`

	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`

	Venue        string              `json:"venue"`
	VenueDetails models.VenueDetails `json:"venue_details"`

	Services []ServiceSnapshotDTO `json:"services"`

	TotalAmount float64 `json:"total_amount"`
	ServiceFee  float64 `json:"service_fee"`
	Currency    string  `json:"currency"`
	ServiceType string  `json:"service_type"`

	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`

	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty"`
	CancelledBy        string `json:"cancelled_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type AppointmentListItemDTO struct {
	ID              uint    `json:"id"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	TotalAmount     float64 `json:"total_amount"`
	Currency        string  `json:"currency"`
	ServiceType     string  `json:"service_type"`
	ArtistName      string  `json:"artist_name,omitempty"`
	ClientName      string  `json:"client_name,omitempty"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	services := make([]ServiceSnapshotDTO, 0, len(ap.Services))
	for _, s := range ap.Services {
		services = append(services, ServiceSnapshotDTO{
			ServiceID:   s.ServiceID,
			ServiceName: s.ServiceName,
			Price:       s.Price,
			Currency:    s.Currency,
			Duration:    s.Duration,
		})
	}

	return AppointmentDTO{
		ID:                 ap.ID,
		ArtistID:           ap.ArtistID,
		ClientID:           ap.ClientID,
		AppointmentDate:    ap.AppointmentDate.Format("2006-01-02"),
		AppointmentTime:    ap.AppointmentTime,
		Venue:              ap.Venue,
		VenueDetails:       ap.VenueDetails,
		Services:           services,
		TotalAmount:        ap.TotalAmount,
		ServiceFee:         ap.ServiceFee,
		Currency:           ap.Currency,
		ServiceType:        ap.ServiceType,
		PaymentMethod:      ap.PaymentMethod,
		PaymentStatus:      ap.PaymentStatus,
		Status:             ap.Status,
		Notes:              ap.Notes,
		CancellationReason: ap.CancellationReason,
		CancelledBy:        ap.CancelledBy,
		CreatedAt:          ap.CreatedAt,
	}
}

func NewAppointmentListItemDTO(ap *models.Appointment) AppointmentListItemDTO {
	item := AppointmentListItemDTO{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		PaymentStatus:   ap.PaymentStatus,
		TotalAmount:     ap.TotalAmount,
		Currency:        ap.Currency,
		ServiceType:     ap.ServiceType,
	}
	if ap.Artist.ID != 0 {
		item.ArtistName = ap.Artist.FullName()
	}
	if ap.Client.ID != 0 {
		item.ClientName = ap.Client.FullName()
	}
	return item
}
