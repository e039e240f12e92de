package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"klusmarkt/internal/adapter/http/handlers/mocks"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newJobRouter(h *JobHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/jobs", h.ListJobs)
	r.POST("/v1/jobs", h.CreateJob)
	r.GET("/v1/jobs/:id", h.GetJob)
	r.PATCH("/v1/jobs/:id", h.UpdateJob)
	r.DELETE("/v1/jobs/:id", h.DeleteJob)
	r.POST("/v1/jobs/:id/publish", h.PublishJob)
	r.POST("/v1/jobs/:id/fill", h.FillJob)
	r.POST("/v1/jobs/:id/cancel", h.CancelJob)
	r.GET("/v1/feed", h.Feed)
	return r
}

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		w := performRequest(r, http.MethodPost, "/v1/jobs", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		w := performRequest(r, http.MethodPost, "/v1/jobs", `{"category":"plumbing"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, &usecase.ValidationError{Field: "budget", Reason: "min exceeds max"})

		w := performRequest(r, http.MethodPost, "/v1/jobs", `{"title":"Leak","category":"plumbing","budget":{"min":500,"max":100}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeError(t, w); code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %s", code)
		}
	})

	t.Run("success normalises category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, d usecase.JobDraft) (entities.Job, error) {
			if d.Category != entities.JobCategoryPlumbing || d.Title != "Leak" {
				t.Fatalf("unexpected draft: %+v", d)
			}
			return entities.Job{ID: "job-1", Title: d.Title, Category: d.Category, Status: entities.JobStatusActive}, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/jobs", `{"title":"Leak","category":" Plumbing "}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got entities.Job
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID != "job-1" || got.Status != entities.JobStatusActive {
			t.Fatalf("unexpected job: %+v", got)
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().FindByID(gomock.Any(), "missing").Return(entities.Job{}, usecase.ErrJobNotFound)

		w := performRequest(r, http.MethodGet, "/v1/jobs/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := decodeError(t, w); code != "JOB_NOT_FOUND" {
			t.Fatalf("expected JOB_NOT_FOUND, got %s", code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().FindByID(gomock.Any(), "job-1").Return(entities.Job{}, errors.New("disk full"))

		w := performRequest(r, http.MethodGet, "/v1/jobs/job-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestJobHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("fill conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Fill(gomock.Any(), "job-1").Return(entities.Job{}, errors.Join(usecase.ErrInvalidTransition, errors.New("job job-1 is cancelled")))

		w := performRequest(r, http.MethodPost, "/v1/jobs/job-1/fill", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusCancelled}, nil)

		w := performRequest(r, http.MethodPost, "/v1/jobs/job-1/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Remove(gomock.Any(), "job-1").Return(nil)

		w := performRequest(r, http.MethodDelete, "/v1/jobs/job-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("update passes only given fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(func(_ any, _ string, p usecase.JobPatch) (entities.Job, error) {
			if p.Title == nil || *p.Title != "New title" {
				t.Fatalf("expected title patch, got %+v", p)
			}
			if p.Category != nil || p.Budget != nil {
				t.Fatalf("unexpected fields in patch: %+v", p)
			}
			return entities.Job{ID: "job-1", Title: *p.Title}, nil
		})

		w := performRequest(r, http.MethodPatch, "/v1/jobs/job-1", `{"title":"New title"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_Feed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without viewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Feed(gomock.Any(), (*entities.Location)(nil)).Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/v1/feed", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"items":[],"count":0}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("with viewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Feed(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, v *entities.Location) ([]entities.PublicJobListing, error) {
			if v == nil || v.Latitude != 52.37 || v.Longitude != 4.89 {
				t.Fatalf("unexpected viewer: %+v", v)
			}
			return []entities.PublicJobListing{{ID: "job-1", JobID: "job-1"}}, nil
		})

		w := performRequest(r, http.MethodGet, "/v1/feed?lat=52.37&lng=4.89", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("publish inactive job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newJobRouter(NewJobHandler(uc))

		uc.EXPECT().Publish(gomock.Any(), "job-1").Return(entities.PublicJobListing{}, usecase.ErrInvalidTransition)

		w := performRequest(r, http.MethodPost, "/v1/jobs/job-1/publish", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
