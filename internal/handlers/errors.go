package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glamora/booking-api/internal/httperr"
)

// Domain errors bubble up as business codes; this is the single place
// they turn into HTTP responses.
var businessMessages = map[string]string{
	"artist_not_found":          "Artist not found.",
	"client_not_found":          "Client not found.",
	"appointment_not_found":     "Appointment not found.",
	"booking_not_found":         "Booking not found.",
	"blocked_time_not_found":    "Blocked time not found.",
	"vacation_not_found":        "Vacation not found.",
	"invalid_service_selection": "One or more services not found or inactive.",
	"invalid_date":              "Invalid date, expected YYYY-MM-DD.",
	"invalid_time":              "Invalid time.",
	"invalid_duration":          "Duration must be between 15 minutes and 24 hours.",
	"notes_too_long":            "Notes cannot exceed 500 characters.",
	"client_details_required":   "Either a client id or first name, last name and email are required.",
	"invalid_status":            "Unknown appointment status.",
	"invalid_state":             "The appointment does not allow this transition.",
	"invalid_type":              "Unknown blocked time type.",
	"end_before_start":          "End date must be after start date.",
	"slot_unavailable":          "The artist is not available on this date.",
	"already_approved":          "This artist is already approved.",
	"already_rejected":          "This artist was already rejected.",
	"invalid_approval_state":    "The artist does not allow this approval action.",
	"already_paid":              "This booking is already paid.",
	"not_paid":                  "This booking has not been paid.",
	"invalid_payment_state":     "The booking does not allow this payment action.",
	"invalid_payment_method":    "This booking is not a pay-now booking.",
	"payment_failed":            "The payment provider could not process the charge.",
	"payment_declined":          "The payment was declined.",
	"refund_failed":             "The payment provider could not process the refund.",
}

func writeDomainError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	message, known := businessMessages[code]
	if !known {
		message = "Request failed."
	}

	switch code {
	case "artist_not_found", "client_not_found", "appointment_not_found",
		"booking_not_found", "blocked_time_not_found", "vacation_not_found":
		httperr.NotFound(c, code, message)

	case "slot_unavailable", "already_paid", "not_paid",
		"already_approved", "already_rejected",
		"invalid_state", "invalid_payment_state", "invalid_approval_state":
		httperr.Conflict(c, code, message)

	case "payment_failed", "payment_declined", "refund_failed":
		httperr.UpstreamPayment(c, code, message)

	default:
		httperr.BadRequest(c, code, message)
	}
}
