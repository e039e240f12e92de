package handlers

import (
	"net/http"
	"testing"

	"klusmarkt/internal/adapter/http/handlers/mocks"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
	"klusmarkt/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/quotes", h.ListQuotes)
	r.POST("/v1/quotes", h.CreateQuote)
	r.GET("/v1/quotes/:id", h.GetQuote)
	r.PATCH("/v1/quotes/:id", h.UpdateQuote)
	r.DELETE("/v1/quotes/:id", h.DeleteQuote)
	r.POST("/v1/quotes/:id/accept", h.AcceptQuote)
	r.POST("/v1/quotes/:id/reject", h.RejectQuote)
	r.POST("/v1/quotes/:id/payment", h.RecordPayment)
	r.POST("/v1/quotes/:id/installments/:number/paid", h.MarkInstallmentPaid)
	return r
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().ListByJob(gomock.Any(), "job-1").Return([]entities.Quote{{ID: "q-1", JobID: "job-1"}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/quotes?jobId=job-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		w := performRequest(r, http.MethodPost, "/v1/quotes", `{"proposedAmount":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount parsed to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, d usecase.QuoteDraft) (entities.Quote, error) {
			if d.ProposedAmount != money.Amount(297550) {
				t.Fatalf("expected 297550 cents, got %d", d.ProposedAmount)
			}
			if d.CommissionRate != nil {
				t.Fatalf("expected default rate, got %v", *d.CommissionRate)
			}
			return entities.Quote{ID: "q-1", JobID: d.JobID, ProposedAmount: d.ProposedAmount, Status: entities.QuoteStatusPending}, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/quotes", `{"jobId":"job-1","craftsman":{"id":"c-1","name":"Piet"},"proposedAmount":2975.50}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept requires customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		w := performRequest(r, http.MethodPost, "/v1/quotes/q-1/accept", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accept already rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Accept(gomock.Any(), "q-1", usecase.AcceptanceInput{CustomerName: "Jan"}).Return(entities.Quote{}, usecase.ErrInvalidTransition)

		w := performRequest(r, http.MethodPost, "/v1/quotes/q-1/accept", `{"customerName":"Jan"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete accepted quote conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Remove(gomock.Any(), "q-1").Return(usecase.ErrInvalidTransition)

		w := performRequest(r, http.MethodDelete, "/v1/quotes/q-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject unknown quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Reject(gomock.Any(), "nope").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := performRequest(r, http.MethodPost, "/v1/quotes/nope/reject", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("record payment defaults to one installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().RecordPayment(gomock.Any(), "q-1", "ideal", 1).Return(entities.Quote{ID: "q-1"}, nil)

		w := performRequest(r, http.MethodPost, "/v1/quotes/q-1/payment", `{"method":"ideal"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mark installment paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().MarkInstallmentPaid(gomock.Any(), "q-1", 2).Return(entities.Quote{ID: "q-1"}, nil)

		w := performRequest(r, http.MethodPost, "/v1/quotes/q-1/installments/2/paid", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("installment number must be numeric", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		w := performRequest(r, http.MethodPost, "/v1/quotes/q-1/installments/two/paid", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
