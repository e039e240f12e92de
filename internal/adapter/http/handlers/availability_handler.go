package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "klusmarkt/internal/adapter/http/dto/response"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"
)

type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

// GetAvailability godoc
// @Summary  Working hours and break
// @Tags     availability
// @Produce  json
// @Success  200 {object} entities.AvailabilitySettings
// @Router   /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveAvailability godoc
// @Summary  Save working hours and break
// @Tags     availability
// @Accept   json
// @Produce  json
// @Param    settings body entities.AvailabilitySettings true "Availability"
// @Success  200 {object} entities.AvailabilitySettings
// @Failure  400 {object} pkg.HTTPError
// @Router   /availability [put]
func (h *AvailabilityHandler) SaveAvailability(c *gin.Context) {
	var payload entities.AvailabilitySettings
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Slots godoc
// @Summary  Free slots on a date
// @Tags     availability
// @Produce  json
// @Param    date query string true "YYYY-MM-DD"
// @Success  200 {object} response.ListResponse[projections.Slot]
// @Router   /availability/slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	slots, err := h.usecase.Slots(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(slots))
}
