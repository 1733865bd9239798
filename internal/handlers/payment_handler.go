package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glamora/booking-api/internal/dto"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	ucpayment "github.com/glamora/booking-api/internal/usecase/payment"
)

type PaymentHandler struct {
	process *ucpayment.ProcessPayment
	refund  *ucpayment.RequestRefund
}

func NewPaymentHandler(process *ucpayment.ProcessPayment, refund *ucpayment.RequestRefund) *PaymentHandler {
	return &PaymentHandler{process: process, refund: refund}
}

type processPaymentRequest struct {
	AppointmentID uint   `json:"appointmentId" binding:"required"`
	CardToken     string `json:"cardToken" binding:"required"`
}

type refundRequest struct {
	AppointmentID uint   `json:"appointmentId" binding:"required"`
	Reason        string `json:"reason"`
}

func (h *PaymentHandler) Process(c *gin.Context) {
	var req processPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "An appointment id and a card token are required.")
		return
	}

	ap, err := h.process.Execute(c.Request.Context(), ucpayment.ProcessPaymentInput{
		ClientID:      currentUserID(c),
		AppointmentID: req.AppointmentID,
		CardToken:     req.CardToken,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, "Payment processed.", dto.NewAppointmentDTO(ap))
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	var req refundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "An appointment id is required.")
		return
	}

	ap, err := h.refund.Execute(c.Request.Context(), ucpayment.RequestRefundInput{
		ClientID:      currentUserID(c),
		AppointmentID: req.AppointmentID,
		Reason:        req.Reason,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, "Refund processed.", dto.NewAppointmentDTO(ap))
}
