package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/models"
)

type AuditLogHandler struct {
	db *gorm.DB
}

func NewAuditLogHandler(db *gorm.DB) *AuditLogHandler {
	return &AuditLogHandler{db: db}
}

// List returns the caller's own trail, newest first.
func (h *AuditLogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("actor_id = ?", currentUserID(c))

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not list audit logs.")
		return
	}

	var logs []models.AuditLog
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list audit logs.")
		return
	}

	httpresp.List(c, "Audit logs retrieved.", logs, total)
}
