package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "klusmarkt/internal/adapter/http/dto/request"
	response "klusmarkt/internal/adapter/http/dto/response"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"
)

// QuoteHandler serves craftsman quotes. Accepted quotes double as invoices.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes godoc
// @Summary  List quotes
// @Tags     quotes
// @Produce  json
// @Param    jobId query string false "Only quotes for this job"
// @Success  200 {object} response.ListResponse[entities.Quote]
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var (
		quotes []entities.Quote
		err    error
	)
	if jobID := c.Query("jobId"); jobID != "" {
		quotes, err = h.usecase.ListByJob(c.Request.Context(), jobID)
	} else {
		quotes, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(quotes))
}

// GetQuote godoc
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} entities.Quote
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateQuote godoc
// @Summary  Submit a quote on a job
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote body request.QuoteRequest true "Quote"
// @Success  201 {object} entities.Quote
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quote)
}

// UpdateQuote godoc
// @Summary  Edit a pending quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id path string true "Quote ID"
// @Param    quote body request.QuotePatchRequest true "Fields to change"
// @Success  200 {object} entities.Quote
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id} [patch]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuotePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	quote, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// DeleteQuote godoc
// @Summary  Remove a pending or rejected quote
// @Tags     quotes
// @Param    id path string true "Quote ID"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AcceptQuote godoc
// @Summary  Accept a pending quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id   path string                     true "Quote ID"
// @Param    body body request.AcceptQuoteRequest true "Acceptance"
// @Success  200 {object} entities.Quote
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/accept [post]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	var payload request.AcceptQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.Quote, error) {
		return h.usecase.Accept(ctx, id, payload.ToInput())
	})
}

// RejectQuote godoc
// @Summary  Reject a pending quote
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} entities.Quote
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/reject [post]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.respond(c, h.usecase.Reject)
}

// RecordPayment godoc
// @Summary  Record how an accepted quote is paid
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id   path string                       true "Quote ID"
// @Param    body body request.RecordPaymentRequest true "Payment"
// @Success  200 {object} entities.Quote
// @Router   /quotes/{id}/payment [post]
func (h *QuoteHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.Quote, error) {
		return h.usecase.RecordPayment(ctx, id, payload.Method, payload.NumInstallments())
	})
}

// MarkInstallmentPaid godoc
// @Summary  Mark one installment as paid
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Param    number path int true "Installment number"
// @Success  200 {object} entities.Quote
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/installments/{number}/paid [post]
func (h *QuoteHandler) MarkInstallmentPaid(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.Quote, error) {
		return h.usecase.MarkInstallmentPaid(ctx, id, number)
	})
}

func (h *QuoteHandler) respond(c *gin.Context, fn func(ctx context.Context, id string) (entities.Quote, error)) {
	quote, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
