package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	request "klusmarkt/internal/adapter/http/dto/request"
	response "klusmarkt/internal/adapter/http/dto/response"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"
)

// JobHandler serves customer jobs and the craftsman feed built from their listings.
type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// ListJobs godoc
// @Summary  List jobs
// @Tags     jobs
// @Produce  json
// @Success  200 {object} response.ListResponse[entities.Job]
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(jobs))
}

// GetJob godoc
// @Summary  Get a job
// @Tags     jobs
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} entities.Job
// @Failure  404 {object} pkg.HTTPError
// @Router   /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary  Post a new job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    job body request.JobRequest true "Job"
// @Success  201 {object} entities.Job
// @Failure  400 {object} pkg.HTTPError
// @Router   /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary  Edit an active job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id path string true "Job ID"
// @Param    job body request.JobPatchRequest true "Fields to change"
// @Success  200 {object} entities.Job
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.JobPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary  Remove a job and its public listing
// @Tags     jobs
// @Param    id path string true "Job ID"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FillJob godoc
// @Summary  Mark a job as filled
// @Tags     jobs
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} entities.Job
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /jobs/{id}/fill [post]
func (h *JobHandler) FillJob(c *gin.Context) {
	h.transition(c, h.usecase.Fill)
}

// CancelJob godoc
// @Summary  Cancel a job
// @Tags     jobs
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} entities.Job
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /jobs/{id}/cancel [post]
func (h *JobHandler) CancelJob(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *JobHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (entities.Job, error)) {
	job, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// PublishJob godoc
// @Summary  Publish a job to the craftsman feed
// @Tags     jobs
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} entities.PublicJobListing
// @Failure  409 {object} pkg.HTTPError
// @Router   /jobs/{id}/publish [post]
func (h *JobHandler) PublishJob(c *gin.Context) {
	listing, err := h.usecase.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Feed godoc
// @Summary  Craftsman job feed
// @Tags     feed
// @Produce  json
// @Param    lat query number false "Viewer latitude"
// @Param    lng query number false "Viewer longitude"
// @Success  200 {object} response.ListResponse[entities.PublicJobListing]
// @Router   /feed [get]
func (h *JobHandler) Feed(c *gin.Context) {
	var q request.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidPayload(c)
		return
	}

	listings, err := h.usecase.Feed(c.Request.Context(), q.Viewer())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(listings))
}
