package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/glamora/booking-api/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func statusFor(t *testing.T, err error) int {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeDomainError(c, err)
	return w.Code
}

func TestWriteDomainErrorMapping(t *testing.T) {
	cases := map[string]int{
		"artist_not_found":       http.StatusNotFound,
		"booking_not_found":      http.StatusNotFound,
		"vacation_not_found":     http.StatusNotFound,
		"slot_unavailable":       http.StatusConflict,
		"already_paid":           http.StatusConflict,
		"not_paid":               http.StatusConflict,
		"invalid_state":          http.StatusConflict,
		"payment_failed":         http.StatusBadGateway,
		"payment_declined":       http.StatusBadGateway,
		"refund_failed":          http.StatusBadGateway,
		"invalid_date":           http.StatusBadRequest,
		"invalid_time":           http.StatusBadRequest,
		"end_before_start":       http.StatusBadRequest,
		"invalid_payment_method": http.StatusBadRequest,
	}

	for code, want := range cases {
		assert.Equal(t, want, statusFor(t, httperr.ErrBusiness(code)), code)
	}
}

func TestWriteDomainErrorUnknownIsInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(t, errors.New("disk on fire")))
}
