package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/dto"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/models"
	ucappointment "github.com/glamora/booking-api/internal/usecase/appointment"
)

type BookingHandler struct {
	createBooking *ucappointment.CreateBooking
	list          *ucappointment.ListAppointments
	repo          domain.Repository
}

func NewBookingHandler(
	createBooking *ucappointment.CreateBooking,
	list *ucappointment.ListAppointments,
	repo domain.Repository,
) *BookingHandler {
	return &BookingHandler{
		createBooking: createBooking,
		list:          list,
		repo:          repo,
	}
}

type venueDetailsRequest struct {
	VenueName string `json:"venueName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
}

type createBookingRequest struct {
	ArtistID uint   `json:"artistId" binding:"required"`
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

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Artist, at least one service, a date and a time are required.")
		return
	}

	ap, err := h.createBooking.Execute(c.Request.Context(), ucappointment.CreateBookingInput{
		ClientID:    currentUserID(c),
		ArtistID:    req.ArtistID,
		ServiceIDs:  req.Services,
		Date:        req.Date,
		Time:        req.Time,
		EndTime:     req.EndTime,
		DurationMin: req.DurationMin,
		Venue:       req.Venue,
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

	httpresp.Created(c, "Booking created.", dto.NewAppointmentDTO(ap))
}

func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, total, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		ClientID:    currentUserID(c),
		Status:      c.Query("status"),
		ServiceType: c.Query("serviceType"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list bookings.")
		return
	}

	out := make([]dto.AppointmentListItemDTO, 0, len(items))
	for i := range items {
		out = append(out, dto.NewAppointmentListItemDTO(&items[i]))
	}

	httpresp.List(c, "Bookings retrieved.", out, total)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	ap, err := h.repo.GetAppointmentForClient(c.Request.Context(), uint(id), currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.OK(c, "Booking retrieved.", dto.NewAppointmentDTO(ap))
}
