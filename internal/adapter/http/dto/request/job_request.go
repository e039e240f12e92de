package request

import (
	"strings"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"
)

type JobRequest struct {
	Title       string            `json:"title" binding:"required"`
	Category    string            `json:"category" binding:"required"`
	Description string            `json:"description"`
	Location    entities.Location `json:"location"`
	Budget      entities.Budget   `json:"budget"`
	Timing      entities.Timing   `json:"timing"`
	Images      []string          `json:"images"`
	OwnerID     string            `json:"ownerId"`
}

func (r JobRequest) ToDraft() usecase.JobDraft {
	return usecase.JobDraft{
		Title:       r.Title,
		Category:    entities.JobCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		Description: r.Description,
		Location:    r.Location,
		Budget:      r.Budget,
		Timing:      r.Timing,
		Images:      r.Images,
		OwnerID:     r.OwnerID,
	}
}

// JobPatchRequest carries only the fields the caller wants to change.
type JobPatchRequest struct {
	Title       *string            `json:"title"`
	Category    *string            `json:"category"`
	Description *string            `json:"description"`
	Location    *entities.Location `json:"location"`
	Budget      *entities.Budget   `json:"budget"`
	Timing      *entities.Timing   `json:"timing"`
	Images      *[]string          `json:"images"`
}

func (r JobPatchRequest) ToPatch() usecase.JobPatch {
	p := usecase.JobPatch{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Budget:      r.Budget,
		Timing:      r.Timing,
		Images:      r.Images,
	}
	if r.Category != nil {
		c := entities.JobCategory(strings.ToLower(strings.TrimSpace(*r.Category)))
		p.Category = &c
	}
	return p
}

// FeedQuery is the optional viewer position for distance annotation.
type FeedQuery struct {
	Lat *float64 `form:"lat"`
	Lng *float64 `form:"lng"`
}

func (q FeedQuery) Viewer() *entities.Location {
	if q.Lat == nil || q.Lng == nil {
		return nil
	}
	return &entities.Location{Latitude: *q.Lat, Longitude: *q.Lng}
}
