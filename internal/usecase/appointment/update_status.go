package appointment

import (
	"context"
	"fmt"
	"log"

	"github.com/glamora/booking-api/internal/audit"
	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
	"github.com/glamora/booking-api/internal/notify"
	"github.com/glamora/booking-api/internal/timezone"
)

type UpdateStatusInput struct {
	ArtistID      uint
	AppointmentID uint

	Status             string
	CancellationReason string
}

type UpdateStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer notify.Sender
	tz     string
}

func NewUpdateStatus(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	mailer notify.Sender,
	tz string,
) *UpdateStatus {
	return &UpdateStatus{
		repo:   repo,
		audit:  auditor,
		mailer: mailer,
		tz:     tz,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForArtist(ctx, in.AppointmentID, in.ArtistID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)

	switch domain.Status(in.Status) {
	case domain.StatusConfirmed:
		err = domain.Confirm(ap)
	case domain.StatusRejected:
		err = domain.Reject(ap)
	case domain.StatusCancelled:
		err = domain.Cancel(ap, in.CancellationReason, domain.CancelledByArtist, now)
	case domain.StatusCompleted:
		err = domain.Complete(ap, now)
	default:
		err = httperr.ErrBusiness("invalid_status")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ArtistID,
		Action:   "appointment_" + in.Status,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifyClient(ctx, ap)

	return ap, nil
}

// notifyClient is best-effort: a dead mailer never fails the transition.
func (uc *UpdateStatus) notifyClient(ctx context.Context, ap *models.Appointment) {
	if uc.mailer == nil || ap.Client.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your appointment is %s", ap.Status)
	body := fmt.Sprintf(
		"Your appointment on %s at %s is now %s.",
		ap.AppointmentDate.Format("2006-01-02"),
		ap.AppointmentTime,
		ap.Status,
	)

	if err := uc.mailer.Send(ctx, ap.Client.Email, subject, body); err != nil {
		log.Printf("status notification failed for appointment %d: %v", ap.ID, err)
	}
}
