package usecase

import (
	"context"
	"strings"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
	"klusmarkt/internal/domain/projections"
	"klusmarkt/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// JobDraft is the customer input of "post job".
type JobDraft struct {
	Title       string
	Category    entities.JobCategory
	Description string
	Location    entities.Location
	Budget      entities.Budget
	Timing      entities.Timing
	Images      []string
	OwnerID     string
}

// JobPatch carries the editable fields; nil means unchanged.
type JobPatch struct {
	Title       *string
	Category    *entities.JobCategory
	Description *string
	Location    *entities.Location
	Budget      *entities.Budget
	Timing      *entities.Timing
	Images      *[]string
}

type IJobUseCase interface {
	List(ctx context.Context) ([]entities.Job, error)
	FindByID(ctx context.Context, id string) (entities.Job, error)
	Create(ctx context.Context, draft JobDraft) (entities.Job, error)
	Update(ctx context.Context, id string, patch JobPatch) (entities.Job, error)
	Remove(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) (entities.PublicJobListing, error)
	Fill(ctx context.Context, id string) (entities.Job, error)
	Cancel(ctx context.Context, id string) (entities.Job, error)
	Feed(ctx context.Context, viewer *entities.Location) ([]entities.PublicJobListing, error)
}

type JobUseCase struct {
	repo    interfaces.IJobRepository
	events  interfaces.IEventPublisher
	log     *zap.Logger
	ownerID string
}

var _ IJobUseCase = (*JobUseCase)(nil)

// NewJobUseCase builds the job rules. ownerID is stamped on drafts that do not
// name an owner.
func NewJobUseCase(repo interfaces.IJobRepository, events interfaces.IEventPublisher, log *zap.Logger, ownerID string) *JobUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobUseCase{repo: repo, events: events, log: log, ownerID: ownerID}
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	return u.repo.List(ctx)
}

func (u *JobUseCase) FindByID(ctx context.Context, id string) (entities.Job, error) {
	id, err := requireID("id", id)
	if err != nil {
		return entities.Job{}, err
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) Create(ctx context.Context, draft JobDraft) (entities.Job, error) {
	ts := now()
	job := entities.Job{
		ID:          newID(),
		Title:       strings.TrimSpace(draft.Title),
		Category:    draft.Category,
		Description: strings.TrimSpace(draft.Description),
		Location:    draft.Location,
		Budget:      draft.Budget,
		Timing:      draft.Timing,
		Status:      entities.JobStatusActive,
		Images:      draft.Images,
		OwnerID:     strings.TrimSpace(draft.OwnerID),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if job.OwnerID == "" {
		job.OwnerID = u.ownerID
	}
	if job.Images == nil {
		job.Images = []string{}
	}
	if job.Budget.Currency == "" {
		job.Budget.Currency = money.DefaultCurrency
	}
	if err := validateJob(job); err != nil {
		return entities.Job{}, err
	}

	created, err := u.repo.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}
	u.log.Info("job created", zap.String("job_id", created.ID), zap.String("category", string(created.Category)))
	emit(u.events, bus.EntityJobs, bus.OpCreated, created.ID, created)
	return created, nil
}

func (u *JobUseCase) Update(ctx context.Context, id string, patch JobPatch) (entities.Job, error) {
	return u.mutate(ctx, id, func(job *entities.Job) error {
		if job.Status != entities.JobStatusActive {
			return transitionError("job", job.ID, job.Status, "edited")
		}
		applyJobPatch(job, patch)
		return validateJob(*job)
	})
}

func (u *JobUseCase) Fill(ctx context.Context, id string) (entities.Job, error) {
	return u.transition(ctx, id, entities.JobStatusFilled)
}

func (u *JobUseCase) Cancel(ctx context.Context, id string) (entities.Job, error) {
	return u.transition(ctx, id, entities.JobStatusCancelled)
}

func (u *JobUseCase) transition(ctx context.Context, id string, next entities.JobStatus) (entities.Job, error) {
	return u.mutate(ctx, id, func(job *entities.Job) error {
		if !job.CanTransition(next) {
			return transitionError("job", job.ID, job.Status, next)
		}
		job.Status = next
		return nil
	})
}

func (u *JobUseCase) mutate(ctx context.Context, id string, fn func(*entities.Job) error) (entities.Job, error) {
	id, err := requireID("id", id)
	if err != nil {
		return entities.Job{}, err
	}
	updated, err := u.repo.Update(ctx, id, func(job *entities.Job) error {
		if err := fn(job); err != nil {
			return err
		}
		job.UpdatedAt = now()
		return nil
	})
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	u.log.Info("job updated", zap.String("job_id", updated.ID), zap.String("status", string(updated.Status)))
	emit(u.events, bus.EntityJobs, bus.OpUpdated, updated.ID, updated)
	return updated, nil
}

// Remove deletes the job and its public listing in one commit.
func (u *JobUseCase) Remove(ctx context.Context, id string) error {
	id, err := requireID("id", id)
	if err != nil {
		return err
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed.ID == "" {
		return ErrJobNotFound
	}
	u.log.Info("job removed", zap.String("job_id", id))
	emit(u.events, bus.EntityJobs, bus.OpDeleted, id, nil)
	emit(u.events, bus.EntityListings, bus.OpDeleted, id, nil)
	return nil
}

// Publish makes the job visible in the craftsman feed, or refreshes its listing.
func (u *JobUseCase) Publish(ctx context.Context, id string) (entities.PublicJobListing, error) {
	id, err := requireID("id", id)
	if err != nil {
		return entities.PublicJobListing{}, err
	}
	job, err := u.FindByID(ctx, id)
	if err != nil {
		return entities.PublicJobListing{}, err
	}
	if job.Status != entities.JobStatusActive {
		return entities.PublicJobListing{}, transitionError("job", job.ID, job.Status, "published")
	}
	listing, err := u.repo.Publish(ctx, id, now())
	if err != nil {
		return entities.PublicJobListing{}, err
	}
	if listing.ID == "" {
		return entities.PublicJobListing{}, ErrJobNotFound
	}
	emit(u.events, bus.EntityListings, bus.OpUpdated, listing.ID, listing)
	return listing, nil
}

// Feed lists active listings newest first, with distance from viewer when known.
func (u *JobUseCase) Feed(ctx context.Context, viewer *entities.Location) ([]entities.PublicJobListing, error) {
	listings, err := u.repo.Listings(ctx)
	if err != nil {
		return nil, err
	}
	return projections.Feed(listings, viewer, now()), nil
}

func applyJobPatch(job *entities.Job, p JobPatch) {
	if p.Title != nil {
		job.Title = strings.TrimSpace(*p.Title)
	}
	if p.Category != nil {
		job.Category = *p.Category
	}
	if p.Description != nil {
		job.Description = strings.TrimSpace(*p.Description)
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
	if p.Budget != nil {
		if p.Budget.Min != nil {
			job.Budget.Min = p.Budget.Min
		}
		if p.Budget.Max != nil {
			job.Budget.Max = p.Budget.Max
		}
		if p.Budget.Currency != "" {
			job.Budget.Currency = p.Budget.Currency
		}
	}
	if p.Timing != nil {
		job.Timing = *p.Timing
	}
	if p.Images != nil {
		job.Images = append([]string{}, (*p.Images)...)
	}
}

func validateJob(j entities.Job) error {
	if j.Title == "" {
		return invalid("title", "required")
	}
	if !j.Category.Valid() {
		return invalid("category", "unknown category "+string(j.Category))
	}
	b := j.Budget
	if b.Min != nil && *b.Min < 0 {
		return invalid("budget.min", "must not be negative")
	}
	if b.Max != nil && *b.Max < 0 {
		return invalid("budget.max", "must not be negative")
	}
	if b.Min != nil && b.Max != nil && *b.Min > *b.Max {
		return invalid("budget", "min must not exceed max")
	}
	if j.Timing.StartDate != "" {
		if _, err := projections.ParseDate(j.Timing.StartDate); err != nil {
			return invalid("timing.startDate", "expected YYYY-MM-DD")
		}
	}
	return nil
}
