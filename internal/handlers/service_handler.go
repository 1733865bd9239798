package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type serviceRequest struct {
	ServiceName        string  `json:"serviceName" binding:"required"`
	ServiceDescription string  `json:"serviceDescription"`
	ServiceType        string  `json:"serviceType"`
	PriceType          string  `json:"priceType"`
	Price              float64 `json:"price" binding:"required,gt=0"`
	Currency           string  `json:"currency"`
	Duration           string  `json:"duration"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Service name and a positive price are required.")
		return
	}

	svc := models.Service{
		ArtistID:           currentUserID(c),
		ServiceName:        req.ServiceName,
		ServiceDescription: req.ServiceDescription,
		ServiceType:        req.ServiceType,
		PriceType:          req.PriceType,
		Price:              req.Price,
		Currency:           req.Currency,
		Duration:           req.Duration,
		IsActive:           true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not create service.")
		return
	}

	httpresp.Created(c, "Service created.", svc)
}

func (h *ServiceHandler) ListMine(c *gin.Context) {
	var items []models.Service
	err := h.db.WithContext(c.Request.Context()).
		Where("artist_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list services.")
		return
	}

	httpresp.List(c, "Services retrieved.", items, int64(len(items)))
}

// ListForArtist is the public catalog browsed before booking; only
// active services of approved artists are exposed.
func (h *ServiceHandler) ListForArtist(c *gin.Context) {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Artist id must be numeric.")
		return
	}

	var visible int64
	err = h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("id = ? AND role = ? AND approval_status = ?", uint(artistID), models.RoleArtist, models.ApprovalApproved).
		Count(&visible).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list services.")
		return
	}
	if visible == 0 {
		httperr.NotFound(c, "artist_not_found", "Artist not found.")
		return
	}

	var items []models.Service
	err = h.db.WithContext(c.Request.Context()).
		Where("artist_id = ? AND is_active = ?", uint(artistID), true).
		Order("service_name ASC").
		Find(&items).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list services.")
		return
	}

	httpresp.List(c, "Services retrieved.", items, int64(len(items)))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Service name and a positive price are required.")
		return
	}

	var svc models.Service
	err = h.db.WithContext(c.Request.Context()).
		Where("id = ? AND artist_id = ?", uint(id), currentUserID(c)).
		First(&svc).Error
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	svc.ServiceName = req.ServiceName
	svc.ServiceDescription = req.ServiceDescription
	if req.ServiceType != "" {
		svc.ServiceType = req.ServiceType
	}
	if req.PriceType != "" {
		svc.PriceType = req.PriceType
	}
	svc.Price = req.Price
	if req.Currency != "" {
		svc.Currency = req.Currency
	}
	if req.Duration != "" {
		svc.Duration = req.Duration
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not update service.")
		return
	}

	httpresp.OK(c, "Service updated.", svc)
}

// Delete deactivates instead of removing so past appointment snapshots
// keep a valid origin.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Service{}).
		Where("id = ? AND artist_id = ?", uint(id), currentUserID(c)).
		Update("is_active", false)
	if result.Error != nil {
		httperr.Internal(c, "internal_error", "Could not delete service.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, "Service deactivated.", gin.H{"id": uint(id)})
}
