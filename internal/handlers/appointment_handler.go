package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/dto"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/models"
	"github.com/glamora/booking-api/internal/timezone"
	ucappointment "github.com/glamora/booking-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create       *ucappointment.CreateArtistAppointment
	updateStatus *ucappointment.UpdateStatus
	list         *ucappointment.ListAppointments
	repo         domain.Repository
	tz           string
}

func NewAppointmentHandler(
	create *ucappointment.CreateArtistAppointment,
	updateStatus *ucappointment.UpdateStatus,
	list *ucappointment.ListAppointments,
	repo domain.Repository,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		list:         list,
		repo:         repo,
		tz:           tz,
	}
}

type clientDetailsRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type createAppointmentRequest struct {
	ClientID      uint                 `json:"clientId"`
	ClientDetails clientDetailsRequest `json:"clientDetails"`

	Services []uint `json:"services" binding:"required,min=1"`

	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	EndTime     string `json:"endTime"`
	DurationMin int    `json:"duration"`

	Venue        string              `json:"venue"`
	VenueDetails venueDetailsRequest `json:"venueDetails"`

	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

type updateStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	CancellationReason string `json:"cancellationReason"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "At least one service, a date and a time are required.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateArtistAppointmentInput{
		ArtistID:        currentUserID(c),
		ClientID:        req.ClientID,
		ClientFirstName: req.ClientDetails.FirstName,
		ClientLastName:  req.ClientDetails.LastName,
		ClientEmail:     req.ClientDetails.Email,
		ClientPhone:     req.ClientDetails.Phone,
		ServiceIDs:      req.Services,
		Date:            req.Date,
		Time:            req.Time,
		EndTime:         req.EndTime,
		DurationMin:     req.DurationMin,
		Venue:           req.Venue,
		VenueDetails: models.VenueDetails{
			VenueName: req.VenueDetails.VenueName,
			Street:    req.VenueDetails.Street,
			City:      req.VenueDetails.City,
			State:     req.VenueDetails.State,
		},
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Created(c, "Appointment created.", dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := domain.ListFilter{
		ArtistID:    currentUserID(c),
		Status:      c.Query("status"),
		ServiceType: c.Query("serviceType"),
		Page:        page,
		Limit:       limit,
	}

	loc := timezone.Location(h.tz)
	if raw := c.Query("from"); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid from date, expected YYYY-MM-DD.")
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid to date, expected YYYY-MM-DD.")
			return
		}
		end := to.AddDate(0, 0, 1)
		filter.To = &end
	}

	items, total, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list appointments.")
		return
	}

	out := make([]dto.AppointmentListItemDTO, 0, len(items))
	for i := range items {
		out = append(out, dto.NewAppointmentListItemDTO(&items[i]))
	}

	httpresp.List(c, "Appointments retrieved.", out, total)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.repo.GetAppointmentForArtist(c.Request.Context(), uint(id), currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, "Appointment retrieved.", dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Status is required.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucappointment.UpdateStatusInput{
		ArtistID:           currentUserID(c),
		AppointmentID:      uint(id),
		Status:             req.Status,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, "Appointment updated.", dto.NewAppointmentDTO(ap))
}
