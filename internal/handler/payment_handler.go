package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-admin-api/internal/service"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/response"
)

// PayRequest carries the cash amount handed over at the desk.
type PayRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// PaymentHandler exposes the fee collection endpoints.
type PaymentHandler struct {
	payments *service.PaymentService
	exports  *service.ExportService
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(payments *service.PaymentService, exports *service.ExportService) *PaymentHandler {
	return &PaymentHandler{payments: payments, exports: exports}
}

// Lookup godoc
// @Summary Look up a student's balance before taking a payment
// @Tags Payments
// @Produce json
// @Param code path string true "Student code"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /payments/{code} [get]
func (h *PaymentHandler) Lookup(c *gin.Context) {
	statement, err := h.payments.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, statement, nil)
}

// Pay godoc
// @Summary Record a fee payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param code path string true "Student code"
// @Param payload body PayRequest true "Payment amount"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /payments/{code} [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.payments.Pay(c.Request.Context(), c.Param("code"), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// History godoc
// @Summary List a student's recorded payments
// @Tags Payments
// @Produce json
// @Param code path string true "Student code"
// @Success 200 {object} response.Envelope
// @Router /payments/{code}/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	_, payments, err := h.payments.History(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments, nil)
}

// Receipt godoc
// @Summary Download a PDF receipt of a student's payments
// @Tags Payments
// @Produce application/pdf
// @Param code path string true "Student code"
// @Success 200 {file} file
// @Router /payments/{code}/receipt [get]
func (h *PaymentHandler) Receipt(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}
	code := c.Param("code")
	payload, err := h.exports.Receipt(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "receipt-"+code+".pdf"))
	c.Data(http.StatusOK, "application/pdf", payload)
}
