package entities

import (
	"time"

	"klusmarkt/internal/domain/money"
)

// JobStatus is the lifecycle of a posted job.
//
// active -> filled | cancelled; both are terminal and edits are only legal while active.
type JobStatus string

const (
	JobStatusActive    JobStatus = "active"
	JobStatusFilled    JobStatus = "filled"
	JobStatusCancelled JobStatus = "cancelled"
)

type JobCategory string

const (
	JobCategoryPlumbing   JobCategory = "plumbing"
	JobCategoryElectrical JobCategory = "electrical"
	JobCategoryCarpentry  JobCategory = "carpentry"
	JobCategoryPainting   JobCategory = "painting"
	JobCategoryRoofing    JobCategory = "roofing"
	JobCategoryGardening  JobCategory = "gardening"
	JobCategoryCleaning   JobCategory = "cleaning"
	JobCategoryRenovation JobCategory = "renovation"
	JobCategoryOther      JobCategory = "other"
)

var jobCategories = map[JobCategory]struct{}{
	JobCategoryPlumbing: {}, JobCategoryElectrical: {}, JobCategoryCarpentry: {},
	JobCategoryPainting: {}, JobCategoryRoofing: {}, JobCategoryGardening: {},
	JobCategoryCleaning: {}, JobCategoryRenovation: {}, JobCategoryOther: {},
}

func (c JobCategory) Valid() bool {
	_, ok := jobCategories[c]
	return ok
}

type Location struct {
	Street     string  `json:"street,omitempty"`
	PostalCode string  `json:"postalCode,omitempty"`
	City       string  `json:"city,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the location can be used for distance math.
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

type Budget struct {
	Min      *money.Amount `json:"min,omitempty"`
	Max      *money.Amount `json:"max,omitempty"`
	Currency string        `json:"currency,omitempty"`
}

type Timing struct {
	StartDate string `json:"startDate,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// Job is a customer's posted request for work.
//
// Storage: element of the JSON array under key "jobs". The craftsman feed reads
// PublicJobListing instead, which is re-projected from the Job on every write.
type Job struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Category    JobCategory `json:"category"`
	Description string      `json:"description"`
	Location    Location    `json:"location"`
	Budget      Budget      `json:"budget"`
	Timing      Timing      `json:"timing"`
	Status      JobStatus   `json:"status"`
	Images      []string    `json:"images"`
	OwnerID     string      `json:"ownerId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (j Job) EntityID() string { return j.ID }

// CanTransition reports whether the job may move from its current status to next.
func (j Job) CanTransition(next JobStatus) bool {
	return j.Status == JobStatusActive && (next == JobStatusFilled || next == JobStatusCancelled)
}
