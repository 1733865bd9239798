package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

// GetArtist only resolves approved artists: pending and rejected
// profiles are invisible to clients and cannot be booked.
func (r *BookingGormRepository) GetArtist(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ? AND approval_status = ?", id, models.RoleArtist, models.ApprovalApproved).
		First(&user).Error; err != nil {
		return nil, httperr.ErrBusiness("artist_not_found")
	}
	return &user, nil
}

func (r *BookingGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleClient).
		First(&user).Error; err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return &user, nil
}

func (r *BookingGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
	artistID uint,
	serviceIDs []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND artist_id = ? AND is_active = ?", serviceIDs, artistID, true).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment checks the day transactionally and inserts while
// holding FOR UPDATE locks on the artist's live appointments for that
// day. The partial unique index catches whatever slips through.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	dayStart, dayEnd := dayBounds(ap.AppointmentDate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"artist_id = ? AND status IN ? AND appointment_date >= ? AND appointment_date < ?",
				ap.ArtistID,
				[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
				dayStart, dayEnd,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		var blocked int64
		if err := tx.
			Model(&models.BlockedTime{}).
			Where(
				"artist_id = ? AND is_active = ? AND start_date < ? AND end_date >= ?",
				ap.ArtistID, true, dayEnd, dayStart,
			).
			Count(&blocked).Error; err != nil {
			return err
		}

		if blocked > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(ap).Error
	})

	if httperr.IsStorageConflict(err) {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return err
}

func (r *BookingGormRepository) CountDayConflicts(
	ctx context.Context,
	artistID uint,
	day time.Time,
) (domain.Conflicts, error) {

	dayStart, dayEnd := dayBounds(day)

	var conflicts domain.Conflicts

	var appointments int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"artist_id = ? AND status IN ? AND appointment_date >= ? AND appointment_date < ?",
			artistID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			dayStart, dayEnd,
		).
		Count(&appointments).Error; err != nil {
		return conflicts, err
	}

	var blocked int64
	if err := r.countBlocked(ctx, artistID, models.BlockedTypeSlot, dayStart, &blocked); err != nil {
		return conflicts, err
	}

	var vacations int64
	if err := r.countBlocked(ctx, artistID, models.BlockedTypeVacation, dayStart, &vacations); err != nil {
		return conflicts, err
	}

	conflicts.Appointments = int(appointments)
	conflicts.BlockedTime = int(blocked)
	conflicts.Vacations = int(vacations)
	return conflicts, nil
}

func (r *BookingGormRepository) countBlocked(
	ctx context.Context,
	artistID uint,
	blockedType string,
	day time.Time,
	out *int64,
) error {
	return r.db.WithContext(ctx).
		Model(&models.BlockedTime{}).
		Where(
			"artist_id = ? AND type = ? AND is_active = ? AND start_date <= ? AND end_date >= ?",
			artistID, blockedType, true, day, day,
		).
		Count(out).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentForArtist(
	ctx context.Context,
	appointmentID uint,
	artistID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Client").
		Where("id = ? AND artist_id = ?", appointmentID, artistID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// UpdateAppointmentPayment holds FOR UPDATE on the row while mutate
// runs, the same guard CreateAppointment uses for the calendar. Two
// concurrent payment calls serialize here; the loser re-reads the
// committed payment status and fails its own CanPay/CanRefund check.
func (r *BookingGormRepository) UpdateAppointmentPayment(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
	mutate func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND client_id = ?", appointmentID, clientID).
			First(&ap).Error; err != nil {
			return httperr.ErrBusiness("booking_not_found")
		}

		if err := mutate(&ap); err != nil {
			return err
		}

		return tx.Save(&ap).Error
	})
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.ArtistID != 0 {
		q = q.Where("artist_id = ?", filter.ArtistID)
	}
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ServiceType != "" && filter.ServiceType != "all" {
		q = q.Where("service_type = ?", filter.ServiceType)
	}
	if filter.From != nil {
		q = q.Where("appointment_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("appointment_date < ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var aps []models.Appointment
	if err := q.
		Preload("Artist").
		Preload("Client").
		Preload("Services").
		Order("appointment_date ASC, appointment_time ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (r *BookingGormRepository) CreateTransaction(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
