package entities

import (
	"time"
)

// PublicJobListing is the craftsman-facing projection of a Job.
//
// Stored under "publicJobListings" for the existing feed UI. DistanceKm and
// PostedAgo depend on the viewer and the clock, so they are filled on read and
// never persisted.
type PublicJobListing struct {
	ID                 string      `json:"id"`
	JobID              string      `json:"jobId"`
	Title              string      `json:"title"`
	Category           JobCategory `json:"category"`
	DescriptionPreview string      `json:"descriptionPreview"`
	City               string      `json:"city,omitempty"`
	PostalCode         string      `json:"postalCode,omitempty"`
	Latitude           float64     `json:"latitude,omitempty"`
	Longitude          float64     `json:"longitude,omitempty"`
	Budget             Budget      `json:"budget"`
	StartDate          string      `json:"startDate,omitempty"`
	Status             JobStatus   `json:"status"`
	ImageCount         int         `json:"imageCount"`
	Thumbnail          string      `json:"thumbnail,omitempty"`
	OwnerID            string      `json:"ownerId"`
	PublishedAt        time.Time   `json:"publishedAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`

	DistanceKm *float64 `json:"distanceKm,omitempty"`
	PostedAgo  string   `json:"postedAgo,omitempty"`
}

func (l PublicJobListing) EntityID() string { return l.ID }
