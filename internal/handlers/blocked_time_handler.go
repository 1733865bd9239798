package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamora/booking-api/internal/audit"
	"github.com/glamora/booking-api/internal/domain/blockedtime"
	"github.com/glamora/booking-api/internal/dto"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/models"
	"github.com/glamora/booking-api/internal/timezone"
	ucappointment "github.com/glamora/booking-api/internal/usecase/appointment"
)

// maxInvalidateDays caps how many cached availability days a single
// calendar write can flush.
const maxInvalidateDays = 31

type BlockedTimeHandler struct {
	db    *gorm.DB
	cache ucappointment.AvailabilityInvalidator
	audit *audit.Dispatcher
	tz    string
}

func NewBlockedTimeHandler(
	db *gorm.DB,
	cache ucappointment.AvailabilityInvalidator,
	auditor *audit.Dispatcher,
	tz string,
) *BlockedTimeHandler {
	return &BlockedTimeHandler{db: db, cache: cache, audit: auditor, tz: tz}
}

type createBlockedTimeRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	Duration  string `json:"duration" binding:"required"`
	Reason    string `json:"reason"`
}

type createVacationRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *BlockedTimeHandler) CreateBlockedTime(c *gin.Context) {
	var req createBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Date, start time and duration are required.")
		return
	}

	loc := timezone.Location(h.tz)
	startDate, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date, expected YYYY-MM-DD.")
		return
	}

	endDate, err := blockedtime.DeriveEndDate(startDate, req.StartTime, req.Duration)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	artistID := currentUserID(c)
	bt := models.BlockedTime{
		ArtistID:  artistID,
		Type:      models.BlockedTypeSlot,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Reason:    req.Reason,
		IsActive:  true,
	}

	if err := blockedtime.Validate(&bt); err != nil {
		writeDomainError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&bt).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not save blocked time.")
		return
	}

	h.invalidateRange(c, artistID, bt.StartDate, bt.EndDate)
	h.audit.Dispatch(audit.Event{ActorID: &artistID, Action: "blocked_time_created", Entity: "blocked_time", EntityID: &bt.ID})

	httpresp.Created(c, "Blocked time created.", dto.NewBlockedTimeDTO(&bt))
}

func (h *BlockedTimeHandler) CreateVacation(c *gin.Context) {
	var req createVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Start date and end date are required.")
		return
	}

	loc := timezone.Location(h.tz)
	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid start date, expected YYYY-MM-DD.")
		return
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid end date, expected YYYY-MM-DD.")
		return
	}

	artistID := currentUserID(c)
	vac := models.BlockedTime{
		ArtistID:  artistID,
		Type:      models.BlockedTypeVacation,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		IsActive:  true,
	}

	if err := blockedtime.Validate(&vac); err != nil {
		writeDomainError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&vac).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not save vacation.")
		return
	}

	h.invalidateRange(c, artistID, vac.StartDate, vac.EndDate)
	h.audit.Dispatch(audit.Event{ActorID: &artistID, Action: "vacation_created", Entity: "blocked_time", EntityID: &vac.ID})

	httpresp.Created(c, "Vacation created.", dto.NewBlockedTimeDTO(&vac))
}

func (h *BlockedTimeHandler) ListBlockedTimes(c *gin.Context) {
	h.list(c, models.BlockedTypeSlot, "Blocked times retrieved.")
}

func (h *BlockedTimeHandler) ListVacations(c *gin.Context) {
	h.list(c, models.BlockedTypeVacation, "Vacations retrieved.")
}

func (h *BlockedTimeHandler) DeleteBlockedTime(c *gin.Context) {
	h.delete(c, models.BlockedTypeSlot, "blocked_time_not_found", "Blocked time deleted.")
}

func (h *BlockedTimeHandler) DeleteVacation(c *gin.Context) {
	h.delete(c, models.BlockedTypeVacation, "vacation_not_found", "Vacation deleted.")
}

func (h *BlockedTimeHandler) list(c *gin.Context, blockedType, message string) {
	var items []models.BlockedTime
	err := h.db.WithContext(c.Request.Context()).
		Where("artist_id = ? AND type = ? AND is_active = ?", currentUserID(c), blockedType, true).
		Order("start_date ASC").
		Find(&items).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list entries.")
		return
	}

	out := make([]dto.BlockedTimeDTO, 0, len(items))
	for i := range items {
		out = append(out, dto.NewBlockedTimeDTO(&items[i]))
	}

	httpresp.List(c, message, out, int64(len(out)))
}

// delete is scoped by owner and by type so a vacation id sent to the
// blocked-time route reads as missing instead of leaking across kinds.
func (h *BlockedTimeHandler) delete(c *gin.Context, blockedType, notFoundCode, message string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id must be numeric.")
		return
	}

	artistID := currentUserID(c)

	var bt models.BlockedTime
	err = h.db.WithContext(c.Request.Context()).
		Where("id = ? AND artist_id = ? AND type = ?", uint(id), artistID, blockedType).
		First(&bt).Error
	if err != nil {
		writeDomainError(c, httperr.ErrBusiness(notFoundCode))
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&bt).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not delete entry.")
		return
	}

	h.invalidateRange(c, artistID, bt.StartDate, bt.EndDate)
	h.audit.Dispatch(audit.Event{ActorID: &artistID, Action: blockedType + "_deleted", Entity: "blocked_time", EntityID: &bt.ID})

	httpresp.OK(c, message, gin.H{"id": bt.ID})
}

func (h *BlockedTimeHandler) invalidateRange(c *gin.Context, artistID uint, start, end time.Time) {
	if h.cache == nil {
		return
	}

	day, _ := timezone.DayBounds(start)
	for i := 0; i < maxInvalidateDays && !day.After(end); i++ {
		h.cache.Invalidate(c.Request.Context(), artistID, day)
		day = day.AddDate(0, 0, 1)
	}
}
