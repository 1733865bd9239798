package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/glamora/booking-api/internal/audit"
	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Artist-initiated creation either references an existing client or
// carries enough detail to register one inline.
type CreateArtistAppointmentInput struct {
	ArtistID uint

	ClientID        uint
	ClientFirstName string
	ClientLastName  string
	ClientEmail     string
	ClientPhone     string

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

// ======================================================
// USE CASE
// ======================================================

type CreateArtistAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityInvalidator

	serviceFee float64
	tz         string
}

func NewCreateArtistAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	cache AvailabilityInvalidator,
	serviceFee float64,
	tz string,
) *CreateArtistAppointment {
	return &CreateArtistAppointment{
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

func (uc *CreateArtistAppointment) Execute(
	ctx context.Context,
	in CreateArtistAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.resolveClient(ctx, in)
	if err != nil {
		return nil, err
	}

	ap, err := assembleAppointment(ctx, uc.repo, bookingInput{
		ArtistID:      in.ArtistID,
		ClientID:      client.ID,
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

	// The artist is booking their own calendar: trusted, auto-confirmed.
	ap.Status = string(domain.InitialStatus(true))

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.ArtistID, ap.AppointmentDate)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ArtistID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateArtistAppointment) resolveClient(
	ctx context.Context,
	in CreateArtistAppointmentInput,
) (*models.User, error) {

	if in.ClientID != 0 {
		return uc.repo.GetClient(ctx, in.ClientID)
	}

	if in.ClientFirstName == "" || in.ClientLastName == "" || in.ClientEmail == "" {
		return nil, httperr.ErrBusiness("client_details_required")
	}

	email := strings.ToLower(strings.TrimSpace(in.ClientEmail))

	if existing, err := uc.repo.FindUserByEmail(ctx, email); err == nil {
		return existing, nil
	}

	// Walk-in client: register with a throwaway password they can reset.
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	client := &models.User{
		FirstName:    in.ClientFirstName,
		LastName:     in.ClientLastName,
		Email:        email,
		Phone:        in.ClientPhone,
		PasswordHash: string(hashed),
		Role:         models.RoleClient,
		IsActive:     true,
	}

	if err := uc.repo.CreateUser(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
