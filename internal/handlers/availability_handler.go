package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/timezone"
	ucappointment "github.com/glamora/booking-api/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	check *ucappointment.CheckAvailability
	tz    string
}

func NewAvailabilityHandler(check *ucappointment.CheckAvailability, tz string) *AvailabilityHandler {
	return &AvailabilityHandler{check: check, tz: tz}
}

// Check is public: clients consult an artist's calendar before booking.
func (h *AvailabilityHandler) Check(c *gin.Context) {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Artist id must be numeric.")
		return
	}

	rawDate := c.Query("date")
	if rawDate == "" {
		httperr.Validation(c, "Validation failed.", map[string]string{
			"date": "Date is required.",
		})
		return
	}

	day, err := time.ParseInLocation("2006-01-02", rawDate, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date, expected YYYY-MM-DD.")
		return
	}

	availability, err := h.check.Execute(c.Request.Context(), domain.AvailabilityInput{
		ArtistID: uint(artistID),
		Date:     day,
		Time:     c.Query("time"),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, "Availability retrieved.", availability)
}
