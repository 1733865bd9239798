package handlers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/glamora/booking-api/internal/audit"
	artistdomain "github.com/glamora/booking-api/internal/domain/artist"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/models"
	"github.com/glamora/booking-api/internal/notify"
)

// AdminHandler reviews artist registrations. Approval is what makes an
// artist visible in public lookups and bookable by clients.
type AdminHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	mailer notify.Sender
}

func NewAdminHandler(db *gorm.DB, auditor *audit.Dispatcher, mailer notify.Sender) *AdminHandler {
	return &AdminHandler{db: db, audit: auditor, mailer: mailer}
}

type rejectArtistRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListArtists returns artists filtered by approval status, defaulting
// to the pending review queue.
func (h *AdminHandler) ListArtists(c *gin.Context) {
	status := c.DefaultQuery("status", models.ApprovalPending)
	switch status {
	case models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
	default:
		httperr.BadRequest(c, "invalid_status", "Status must be pending, approved or rejected.")
		return
	}

	var artists []models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("role = ? AND approval_status = ?", models.RoleArtist, status).
		Order("created_at ASC").
		Find(&artists).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list artists.")
		return
	}

	out := make([]userResponse, 0, len(artists))
	for i := range artists {
		out = append(out, toUserResponse(&artists[i]))
	}
	httpresp.List(c, "Artists retrieved.", out, int64(len(out)))
}

func (h *AdminHandler) ApproveArtist(c *gin.Context) {
	h.review(c, func(u *models.User) error {
		return artistdomain.Approve(u, time.Now())
	}, "artist_approved", "Artist approved.")
}

func (h *AdminHandler) RejectArtist(c *gin.Context) {
	var req rejectArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "A rejection reason is required.")
		return
	}

	h.review(c, func(u *models.User) error {
		return artistdomain.Reject(u, req.Reason)
	}, "artist_rejected", "Artist rejected.")
}

// review loads the artist under a row lock, applies the approval
// transition and persists it, so two admins deciding at once cannot
// both win.
func (h *AdminHandler) review(c *gin.Context, transition func(u *models.User) error, action, message string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Artist id must be numeric.")
		return
	}

	var user models.User
	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND role = ?", uint(id), models.RoleArtist).
			First(&user).Error; err != nil {
			return httperr.ErrBusiness("artist_not_found")
		}
		if err := transition(&user); err != nil {
			return err
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	adminID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   action,
		Entity:   "user",
		EntityID: &user.ID,
	})

	h.notifyArtist(c, &user)

	httpresp.OK(c, message, toUserResponse(&user))
}

func (h *AdminHandler) notifyArtist(c *gin.Context, u *models.User) {
	if h.mailer == nil || u.Email == "" {
		return
	}

	var subject, body string
	if u.ApprovalStatus == models.ApprovalApproved {
		subject = "Your artist profile has been approved"
		body = fmt.Sprintf("Hi %s, your profile was approved. Clients can now find and book you.", u.FirstName)
	} else {
		subject = "Your artist profile was not approved"
		body = fmt.Sprintf("Hi %s, your profile was not approved. Reason: %s", u.FirstName, u.RejectionReason)
	}

	if err := h.mailer.Send(c.Request.Context(), u.Email, subject, body); err != nil {
		log.Printf("approval notification failed for user %d: %v", u.ID, err)
	}
}
