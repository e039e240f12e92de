package interfaces

import (
	"context"
	"time"

	"klusmarkt/internal/domain/entities"
)

// IJobRepository persists jobs together with their public listings.
//
// Lookups return the zero value when the id is absent. Update and Delete keep
// the job's listing consistent within the same storage commit.
type IJobRepository interface {
	List(ctx context.Context) ([]entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	Update(ctx context.Context, id string, fn func(*entities.Job) error) (entities.Job, error)
	Delete(ctx context.Context, id string) (entities.Job, error)
	Publish(ctx context.Context, id string, at time.Time) (entities.PublicJobListing, error)
	Listings(ctx context.Context) ([]entities.PublicJobListing, error)
	GetListing(ctx context.Context, id string) (entities.PublicJobListing, error)
}
