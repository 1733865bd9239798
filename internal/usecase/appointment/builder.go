package appointment

import (
	"context"
	"time"
	"unicode/utf8"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
	"github.com/glamora/booking-api/internal/timezone"
)

// Shared assembly for both booking paths (client- and artist-initiated).

const (
	minDurationMin = 15
	maxDurationMin = 1440
	maxNotesLen    = 500
)

type bookingInput struct {
	ArtistID uint
	ClientID uint

	ServiceIDs []uint

	Date        string // "2006-01-02"
	Time        string // free-form clock, "1:00 PM"
	EndTime     string // optional explicit end, used verbatim
	DurationMin int    // optional, used when EndTime is empty

	Venue        string
	VenueDetails models.VenueDetails

	PaymentMethod string
	Notes         string
}

func (in *bookingInput) validate() error {
	if len(in.ServiceIDs) == 0 {
		return httperr.ErrBusiness("invalid_service_selection")
	}
	if in.DurationMin != 0 && (in.DurationMin < minDurationMin || in.DurationMin > maxDurationMin) {
		return httperr.ErrBusiness("invalid_duration")
	}
	// Character limit, not bytes: multibyte notes count by rune.
	if utf8.RuneCountInString(in.Notes) > maxNotesLen {
		return httperr.ErrBusiness("notes_too_long")
	}
	return nil
}

// assembleAppointment runs steps shared by both paths: resolve services
// fail-closed, price the session, snapshot the catalog entries and
// compute the display window. Status is set by the caller.
func assembleAppointment(
	ctx context.Context,
	repo domain.Repository,
	in bookingInput,
	serviceFee float64,
	tz string,
) (*models.Appointment, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location(tz))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	services, err := repo.ListActiveServices(ctx, in.ArtistID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// Fail closed: a single missing or inactive service rejects the whole
	// selection instead of silently dropping it.
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("invalid_service_selection")
	}

	var totalAmount float64
	snapshots := make([]models.AppointmentService, 0, len(services))
	for _, svc := range services {
		totalAmount += svc.Price
		snapshots = append(snapshots, models.AppointmentService{
			ServiceID:   svc.ID,
			ServiceName: svc.ServiceName,
			Price:       svc.Price,
			Currency:    svc.Currency,
			Duration:    svc.Duration,
		})
	}
	totalAmount += serviceFee

	window, err := domain.ComputeWindow(in.Time, in.EndTime, in.DurationMin)
	if err != nil {
		return nil, err
	}

	venue := in.Venue
	if venue == "" {
		venue = "artist_studio"
	}

	venueDetails := models.VenueDetails{}
	if venue == "client_venue" {
		venueDetails = in.VenueDetails
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "pay_at_venue"
	}

	// Mixed currencies are not supported: the first service decides.
	primary := services[0]

	return &models.Appointment{
		ArtistID:        in.ArtistID,
		ClientID:        in.ClientID,
		AppointmentDate: date,
		AppointmentTime: window.Display,
		Venue:           venue,
		VenueDetails:    venueDetails,
		Services:        snapshots,
		TotalAmount:     totalAmount,
		ServiceFee:      serviceFee,
		Currency:        primary.Currency,
		ServiceType:     primary.ServiceType,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   string(domain.PaymentPending),
		Notes:           in.Notes,
	}, nil
}
