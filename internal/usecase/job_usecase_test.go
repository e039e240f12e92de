package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/domain/entities"
	mock_interfaces "klusmarkt/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_FindByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil, "owner")
		_, err := uc.FindByID(context.Background(), "   ")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil, "owner")

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, errors.New("db"))

		_, err := uc.FindByID(context.Background(), "job-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil, "owner")

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.FindByID(context.Background(), " job-1 ")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_CreatePublishesEvent(t *testing.T) {
	freezeClock(t, fixedNow)
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	events := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewJobUseCase(repo, events, nil, "owner-1")

	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
		func(_ context.Context, j entities.Job) (entities.Job, error) {
			if j.ID == "" || j.Status != entities.JobStatusActive || j.OwnerID != "owner-1" {
				t.Fatalf("unexpected job: %+v", j)
			}
			if !j.CreatedAt.Equal(fixedNow) || !j.UpdatedAt.Equal(fixedNow) {
				t.Fatalf("expected timestamps")
			}
			return j, nil
		},
	)
	events.EXPECT().Publish(gomock.Any()).Do(func(e bus.Event) {
		if e.Topic != "jobs.created" || e.ID == "" {
			t.Fatalf("unexpected event: %+v", e)
		}
	})

	if _, err := uc.Create(context.Background(), bathroomDraft()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJobUseCase_UpdateRunsInsideRepository(t *testing.T) {
	freezeClock(t, fixedNow)

	t.Run("not found publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewJobUseCase(repo, events, nil, "owner")

		repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, nil)

		_, err := uc.Fill(context.Background(), "job-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("rule violation aborts the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil, "owner")

		stored := entities.Job{ID: "job-1", Title: "Roof", Category: entities.JobCategoryRoofing, Status: entities.JobStatusCancelled}
		repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fn func(*entities.Job) error) (entities.Job, error) {
				j := stored
				if err := fn(&j); err != nil {
					return entities.Job{}, err
				}
				t.Fatalf("fn should have failed")
				return j, nil
			},
		)

		_, err := uc.Fill(context.Background(), "job-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("success stamps updatedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewJobUseCase(repo, events, nil, "owner")

		stored := entities.Job{ID: "job-1", Title: "Roof", Category: entities.JobCategoryRoofing, Status: entities.JobStatusActive, UpdatedAt: fixedNow.Add(-time.Hour)}
		repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fn func(*entities.Job) error) (entities.Job, error) {
				j := stored
				if err := fn(&j); err != nil {
					return entities.Job{}, err
				}
				return j, nil
			},
		)
		events.EXPECT().Publish(gomock.Any())

		j, err := uc.Cancel(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Status != entities.JobStatusCancelled || !j.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected job: %+v", j)
		}
	})
}

func TestJobUseCase_PublishRequiresActiveJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(repo, nil, nil, "owner")

	repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusFilled}, nil)

	_, err := uc.Publish(context.Background(), "job-1")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
