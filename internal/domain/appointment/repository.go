package appointment

import (
	"context"
	"time"

	"github.com/glamora/booking-api/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetArtist(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	// -------- Services --------
	ListActiveServices(
		ctx context.Context,
		artistID uint,
		serviceIDs []uint,
	) ([]models.Service, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment runs the day-conflict check and the insert in one
	// transaction; a busy day fails with the slot_unavailable business code.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CountDayConflicts(
		ctx context.Context,
		artistID uint,
		day time.Time,
	) (Conflicts, error)

	// -------- Appointment (state change) --------
	GetAppointmentForArtist(
		ctx context.Context,
		appointmentID uint,
		artistID uint,
	) (*models.Appointment, error)

	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateAppointmentPayment loads the client's appointment under a row
	// lock, applies mutate and persists the result in one transaction, so
	// concurrent payment actions on the same booking serialize. A mutate
	// error rolls everything back; a missing or foreign appointment fails
	// with the booking_not_found business code.
	UpdateAppointmentPayment(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
		mutate func(ap *models.Appointment) error,
	) (*models.Appointment, error)

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, int64, error)

	// -------- Payments --------
	CreateTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error
}

// ListFilter narrows appointment listings for either side of the
// marketplace. Zero values mean "no filter".
type ListFilter struct {
	ArtistID    uint
	ClientID    uint
	Status      string
	ServiceType string
	From        *time.Time
	To          *time.Time

	Page  int
	Limit int
}
