package artist

import (
	"time"

	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/models"
)

// ===============================
// Artist Approval
// ===============================

// Artists register as pending and stay invisible to clients until an
// admin approves them. Approval is a one-way gate for bookability: a
// pending or rejected artist can still sign in and manage their own
// calendar, but never appears in public lookups.

// Approve marks a pending (or previously rejected) artist as approved.
func Approve(u *models.User, now time.Time) error {
	if u.Role != models.RoleArtist {
		return httperr.ErrBusiness("artist_not_found")
	}

	switch u.ApprovalStatus {
	case models.ApprovalApproved:
		return httperr.ErrBusiness("already_approved")
	case models.ApprovalPending, models.ApprovalRejected:
		u.ApprovalStatus = models.ApprovalApproved
		u.RejectionReason = ""
		u.ApprovedAt = &now
		return nil
	}
	return httperr.ErrBusiness("invalid_approval_state")
}

// Reject turns down a pending artist, keeping the reason for the
// notification email and later review.
func Reject(u *models.User, reason string) error {
	if u.Role != models.RoleArtist {
		return httperr.ErrBusiness("artist_not_found")
	}

	switch u.ApprovalStatus {
	case models.ApprovalApproved:
		return httperr.ErrBusiness("already_approved")
	case models.ApprovalRejected:
		return httperr.ErrBusiness("already_rejected")
	case models.ApprovalPending:
		u.ApprovalStatus = models.ApprovalRejected
		u.RejectionReason = reason
		u.ApprovedAt = nil
		return nil
	}
	return httperr.ErrBusiness("invalid_approval_state")
}

// Bookable reports whether the artist can appear in public lookups and
// take bookings.
func Bookable(u *models.User) bool {
	return u.Role == models.RoleArtist && u.ApprovalStatus == models.ApprovalApproved
}

// InitialApproval is pending for artists, approved for everyone else.
func InitialApproval(role string) string {
	if role == models.RoleArtist {
		return models.ApprovalPending
	}
	return models.ApprovalApproved
}
