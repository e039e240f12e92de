package repository

import (
	"context"
	"time"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/projections"
	"klusmarkt/internal/infrastructure/storage"
	"klusmarkt/internal/usecase/interfaces"
)

// JobRepository owns "jobs" and "publicJobListings".
//
// A job's listing is written in the same commit as the job: every job update
// re-projects an existing listing and deleting a job deletes its listing.
type JobRepository struct {
	store    *storage.Adapter
	jobs     collection[entities.Job]
	listings collection[entities.PublicJobListing]
}

var _ interfaces.IJobRepository = (*JobRepository)(nil)

func NewJobRepository(store *storage.Adapter) *JobRepository {
	return &JobRepository{
		store:    store,
		jobs:     collection[entities.Job]{key: storage.KeyJobs},
		listings: collection[entities.PublicJobListing]{key: storage.KeyPublicJobListings},
	}
}

func (r *JobRepository) List(ctx context.Context) ([]entities.Job, error) {
	return r.jobs.all(ctx, r.store)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	return r.jobs.find(ctx, r.store, id)
}

func (r *JobRepository) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		return r.jobs.insert(ctx, tx, job)
	})
	if err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

func (r *JobRepository) Update(ctx context.Context, id string, fn func(*entities.Job) error) (entities.Job, error) {
	var updated entities.Job
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		job, found, err := r.jobs.modify(ctx, tx, id, fn)
		if err != nil || !found {
			return err
		}
		updated = job
		return r.refreshListing(ctx, tx, job)
	})
	if err != nil {
		return entities.Job{}, err
	}
	return updated, nil
}

func (r *JobRepository) refreshListing(ctx context.Context, tx *storage.Txn, job entities.Job) error {
	existing, err := r.listings.find(ctx, tx, job.ID)
	if err != nil || existing.ID == "" {
		return err
	}
	return r.listings.upsert(ctx, tx, projections.ListingFromJob(job, existing.PublishedAt))
}

func (r *JobRepository) Delete(ctx context.Context, id string) (entities.Job, error) {
	var removed entities.Job
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		job, err := r.jobs.delete(ctx, tx, id)
		if err != nil || job.ID == "" {
			return err
		}
		removed = job
		_, err = r.listings.delete(ctx, tx, id)
		return err
	})
	if err != nil {
		return entities.Job{}, err
	}
	return removed, nil
}

// Publish creates or refreshes the listing of job id. The first publication
// time is kept across refreshes. Returns the zero listing when the job is absent.
func (r *JobRepository) Publish(ctx context.Context, id string, at time.Time) (entities.PublicJobListing, error) {
	var listing entities.PublicJobListing
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		job, err := r.jobs.find(ctx, tx, id)
		if err != nil || job.ID == "" {
			return err
		}
		existing, err := r.listings.find(ctx, tx, id)
		if err != nil {
			return err
		}
		publishedAt := at
		if existing.ID != "" {
			publishedAt = existing.PublishedAt
		}
		listing = projections.ListingFromJob(job, publishedAt)
		return r.listings.upsert(ctx, tx, listing)
	})
	if err != nil {
		return entities.PublicJobListing{}, err
	}
	return listing, nil
}

func (r *JobRepository) Listings(ctx context.Context) ([]entities.PublicJobListing, error) {
	return r.listings.all(ctx, r.store)
}

func (r *JobRepository) GetListing(ctx context.Context, id string) (entities.PublicJobListing, error) {
	return r.listings.find(ctx, r.store, id)
}
