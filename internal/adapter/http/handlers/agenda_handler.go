package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "klusmarkt/internal/adapter/http/dto/request"
	response "klusmarkt/internal/adapter/http/dto/response"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/projections"
	"klusmarkt/internal/usecase"
)

const defaultUpcomingDays = 7

// AgendaHandler serves the craftsman's calendar.
type AgendaHandler struct {
	usecase usecase.IAgendaUseCase
	clock   func() time.Time
}

func NewAgendaHandler(uc usecase.IAgendaUseCase) *AgendaHandler {
	return &AgendaHandler{usecase: uc, clock: time.Now}
}

// ListAgenda godoc
// @Summary  List agenda items
// @Tags     agenda
// @Produce  json
// @Success  200 {object} response.ListResponse[entities.AgendaItem]
// @Router   /agenda [get]
func (h *AgendaHandler) ListAgenda(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

// GetAgendaItem godoc
// @Summary  Get an agenda item
// @Tags     agenda
// @Produce  json
// @Param    id path string true "Agenda item ID"
// @Success  200 {object} entities.AgendaItem
// @Failure  404 {object} pkg.HTTPError
// @Router   /agenda/{id} [get]
func (h *AgendaHandler) GetAgendaItem(c *gin.Context) {
	item, err := h.usecase.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateAgendaItem godoc
// @Summary  Add an agenda item
// @Tags     agenda
// @Accept   json
// @Produce  json
// @Param    item body request.AgendaRequest true "Agenda item"
// @Success  201 {object} entities.AgendaItem
// @Failure  400 {object} pkg.HTTPError
// @Router   /agenda [post]
func (h *AgendaHandler) CreateAgendaItem(c *gin.Context) {
	var payload request.AgendaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ScheduleQuote godoc
// @Summary  Book an accepted quote into the agenda
// @Tags     agenda
// @Accept   json
// @Produce  json
// @Param    body body request.ScheduleQuoteRequest true "Booking"
// @Success  201 {object} entities.AgendaItem
// @Failure  409 {object} pkg.HTTPError
// @Router   /agenda/from-quote [post]
func (h *AgendaHandler) ScheduleQuote(c *gin.Context) {
	var payload request.ScheduleQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	item, err := h.usecase.CreateFromQuote(c.Request.Context(), payload.QuoteID, payload.Date, payload.StartTime, payload.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateAgendaItem godoc
// @Summary  Edit a scheduled or running item
// @Tags     agenda
// @Accept   json
// @Produce  json
// @Param    id path string true "Agenda item ID"
// @Param    item body request.AgendaPatchRequest true "Fields to change"
// @Success  200 {object} entities.AgendaItem
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /agenda/{id} [patch]
func (h *AgendaHandler) UpdateAgendaItem(c *gin.Context) {
	var payload request.AgendaPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteAgendaItem godoc
// @Summary  Remove an agenda item
// @Tags     agenda
// @Param    id path string true "Agenda item ID"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /agenda/{id} [delete]
func (h *AgendaHandler) DeleteAgendaItem(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StartAgendaItem godoc
// @Summary  Start a scheduled item
// @Tags     agenda
// @Produce  json
// @Param    id path string true "Agenda item ID"
// @Success  200 {object} entities.AgendaItem
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /agenda/{id}/start [post]
func (h *AgendaHandler) StartAgendaItem(c *gin.Context) {
	h.transition(c, h.usecase.Start)
}

// CompleteAgendaItem godoc
// @Summary  Complete a running item
// @Tags     agenda
// @Produce  json
// @Param    id path string true "Agenda item ID"
// @Success  200 {object} entities.AgendaItem
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /agenda/{id}/complete [post]
func (h *AgendaHandler) CompleteAgendaItem(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

// CancelAgendaItem godoc
// @Summary  Cancel an item
// @Tags     agenda
// @Produce  json
// @Param    id path string true "Agenda item ID"
// @Success  200 {object} entities.AgendaItem
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /agenda/{id}/cancel [post]
func (h *AgendaHandler) CancelAgendaItem(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *AgendaHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (entities.AgendaItem, error)) {
	item, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Upcoming godoc
// @Summary  Upcoming agenda
// @Description Non-terminal items ordered by date and start time.
// @Tags     agenda
// @Produce  json
// @Param    from query string false "Start date YYYY-MM-DD, default today"
// @Param    days query int false "Horizon in days, default 7"
// @Success  200 {object} response.ListResponse[entities.AgendaItem]
// @Failure  400 {object} pkg.HTTPError
// @Router   /agenda/upcoming [get]
func (h *AgendaHandler) Upcoming(c *gin.Context) {
	var q request.UpcomingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidPayload(c)
		return
	}

	from := h.clock().UTC()
	if q.From != "" {
		parsed, err := projections.ParseDate(q.From)
		if err != nil {
			respondInvalidPayload(c)
			return
		}
		from = parsed
	}
	days := q.Days
	if days <= 0 {
		days = defaultUpcomingDays
	}

	items, err := h.usecase.Upcoming(c.Request.Context(), from, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}
