package appointment

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
)

// fakeRepo is an in-memory Repository with the same day-uniqueness
// guarantee as the real one: at most one live appointment per artist
// per day, enforced under a lock.
type fakeRepo struct {
	mu sync.Mutex

	users    map[uint]*models.User
	services map[uint]models.Service

	appointments []*models.Appointment
	transactions []*models.Transaction

	blockedDays  map[string]int
	vacationDays map[string]int

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		services:     map[uint]models.Service{},
		blockedDays:  map[string]int{},
		vacationDays: map[string]int{},
		nextID:       1,
	}
}

func (r *fakeRepo) addUser(u models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = &u
	return &u
}

func (r *fakeRepo) addService(s models.Service) models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.services[s.ID] = s
	return s
}

func dayKey(artistID uint, day time.Time) string {
	return fmt.Sprintf("%d/%s", artistID, day.Format("2006-01-02"))
}

func (r *fakeRepo) GetArtist(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.Role != models.RoleArtist || u.ApprovalStatus != models.ApprovalApproved {
		return nil, httperr.ErrBusiness("artist_not_found")
	}
	return u, nil
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.Role != models.RoleClient {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return u, nil
}

func (r *fakeRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, httperr.ErrBusiness("client_not_found")
}

func (r *fakeRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeRepo) ListActiveServices(_ context.Context, artistID uint, serviceIDs []uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Service
	for _, id := range serviceIDs {
		s, ok := r.services[id]
		if ok && s.ArtistID == artistID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		live := existing.Status == string(domain.StatusPending) || existing.Status == string(domain.StatusConfirmed)
		sameDay := existing.AppointmentDate.Equal(ap.AppointmentDate)
		if live && sameDay && existing.ArtistID == ap.ArtistID {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) CountDayConflicts(_ context.Context, artistID uint, day time.Time) (domain.Conflicts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var c domain.Conflicts
	for _, ap := range r.appointments {
		live := ap.Status == string(domain.StatusPending) || ap.Status == string(domain.StatusConfirmed)
		if live && ap.ArtistID == artistID && ap.AppointmentDate.Equal(day) {
			c.Appointments++
		}
	}
	c.BlockedTime = r.blockedDays[dayKey(artistID, day)]
	c.Vacations = r.vacationDays[dayKey(artistID, day)]
	return c, nil
}

func (r *fakeRepo) GetAppointmentForArtist(_ context.Context, appointmentID, artistID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.ID == appointmentID && ap.ArtistID == artistID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) GetAppointmentForClient(_ context.Context, appointmentID, clientID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.ID == appointmentID && ap.ClientID == clientID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (r *fakeRepo) UpdateAppointmentPayment(
	_ context.Context,
	appointmentID uint,
	clientID uint,
	mutate func(ap *models.Appointment) error,
) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.ID != appointmentID || ap.ClientID != clientID {
			continue
		}
		cp := *ap
		if err := mutate(&cp); err != nil {
			return nil, err
		}
		*ap = cp
		return ap, nil
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.ArtistID != 0 && ap.ArtistID != filter.ArtistID {
			continue
		}
		if filter.ClientID != 0 && ap.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		out = append(out, *ap)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx.ID = r.nextID
	r.nextID++
	r.transactions = append(r.transactions, tx)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
