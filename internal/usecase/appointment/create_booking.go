package appointment

import (
	"context"
	"time"

	"github.com/glamora/booking-api/internal/audit"
	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID uint
	ArtistID uint

	ServiceIDs []uint

	Date        string
	Time        string
	EndTime     string
	DurationMin int

	Venue        string
	VenueDetails models.VenueDetails

	PaymentMethod string
	Notes         string
}

// AvailabilityInvalidator drops cached availability for a day after a
// calendar write.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, artistID uint, day time.Time)
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityInvalidator

	serviceFee float64
	tz         string
}

func NewCreateBooking(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	cache AvailabilityInvalidator,
	serviceFee float64,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:       repo,
		audit:      auditor,
		cache:      cache,
		serviceFee: serviceFee,
		tz:         tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetArtist(ctx, in.ArtistID); err != nil {
		return nil, err
	}

	ap, err := assembleAppointment(ctx, uc.repo, bookingInput{
		ArtistID:      in.ArtistID,
		ClientID:      in.ClientID,
		ServiceIDs:    in.ServiceIDs,
		Date:          in.Date,
		Time:          in.Time,
		EndTime:       in.EndTime,
		DurationMin:   in.DurationMin,
		Venue:         in.Venue,
		VenueDetails:  in.VenueDetails,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}, uc.serviceFee, uc.tz)
	if err != nil {
		return nil, err
	}

	ap.Status = string(domain.InitialStatus(false))

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.ArtistID, ap.AppointmentDate)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
