package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "klusmarkt/internal/adapter/http/dto/request"
	response "klusmarkt/internal/adapter/http/dto/response"
	"klusmarkt/internal/domain/projections"
	"klusmarkt/pkg"
)

var (
	errInvalidInstallments = pkg.NewDomainErrorSimple("INVALID_INSTALLMENTS", "Invalid installment request", http.StatusBadRequest)
)

// ProjectionHandler exposes the pure money calculations used by the UI.
type ProjectionHandler struct {
	clock func() time.Time
}

func NewProjectionHandler() *ProjectionHandler {
	return &ProjectionHandler{clock: time.Now}
}

// Commission godoc
// @Summary  Split an amount into commission and net
// @Tags     projections
// @Accept   json
// @Produce  json
// @Param    body body request.CommissionRequest true "Amount and rate"
// @Success  200 {object} projections.Breakdown
// @Router   /projections/commission [post]
func (h *ProjectionHandler) Commission(c *gin.Context) {
	var payload request.CommissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Rate < 0 || payload.Rate > 100 {
		respondInvalidPayload(c)
		return
	}
	c.JSON(http.StatusOK, projections.CommissionBreakdown(payload.Amount, payload.Rate))
}

// Installments godoc
// @Summary  Installment schedule
// @Tags     projections
// @Accept   json
// @Produce  json
// @Param    request body request.InstallmentsRequest true "Total, count and start date"
// @Success  200 {object} response.InstallmentsResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /projections/installments [post]
func (h *ProjectionHandler) Installments(c *gin.Context) {
	var payload request.InstallmentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	from := h.clock().UTC()
	if payload.From != "" {
		parsed, err := projections.ParseDate(payload.From)
		if err != nil {
			respondInvalidPayload(c)
			return
		}
		from = parsed
	}

	schedule, err := projections.InstallmentSchedule(payload.Total, payload.Installments, from)
	if err != nil {
		appErr := pkg.NewDomainError(errInvalidInstallments.Code, err.Error(), err, errInvalidInstallments.HTTPStatus)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.InstallmentsResponse{Total: payload.Total, Installments: schedule})
}
