package handlers

import (
	"net/http"
	"testing"

	"klusmarkt/internal/adapter/http/handlers/mocks"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/projections"
	"klusmarkt/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChatHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ChatHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/chats/:chatId/messages", h.Messages)
		r.POST("/v1/chats/:chatId/messages", h.Send)
		r.POST("/v1/chats/:chatId/read", h.MarkRead)
		return r
	}

	t.Run("send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(NewChatHandler(uc))

		uc.EXPECT().Send(gomock.Any(), "job-1_c-1", "cust-1", "Hallo").Return(entities.ChatMessage{ID: "m-1"}, nil)

		w := performRequest(r, http.MethodPost, "/v1/chats/job-1_c-1/messages", `{"senderId":"cust-1","content":"Hallo"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("reserved sender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(NewChatHandler(uc))

		uc.EXPECT().Send(gomock.Any(), "job-1_c-1", "system", "hi").Return(entities.ChatMessage{}, &usecase.ValidationError{Field: "senderId", Reason: "reserved"})

		w := performRequest(r, http.MethodPost, "/v1/chats/job-1_c-1/messages", `{"senderId":"system","content":"hi"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mark read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(NewChatHandler(uc))

		uc.EXPECT().MarkRead(gomock.Any(), "job-1_c-1", "c-1").Return(3, nil)

		w := performRequest(r, http.MethodPost, "/v1/chats/job-1_c-1/read", `{"readerId":"c-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"chatId":"job-1_c-1","updated":3}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAvailabilityHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AvailabilityHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/availability", h.GetAvailability)
		r.PUT("/v1/availability", h.SaveAvailability)
		r.GET("/v1/availability/slots", h.Slots)
		return r
	}

	t.Run("get defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		r := newRouter(NewAvailabilityHandler(uc))

		uc.EXPECT().Get(gomock.Any()).Return(entities.DefaultAvailability(), nil)

		w := performRequest(r, http.MethodGet, "/v1/availability", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("save invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		r := newRouter(NewAvailabilityHandler(uc))

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.AvailabilitySettings{}, &usecase.ValidationError{Field: "slotMinutes", Reason: "out of range"})

		w := performRequest(r, http.MethodPut, "/v1/availability", `{"workingDays":[1],"workingHours":{"start":"08:00","end":"17:00"},"slotMinutes":5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		r := newRouter(NewAvailabilityHandler(uc))

		uc.EXPECT().Slots(gomock.Any(), "2026-10-20").Return([]projections.Slot{{Start: "08:00", End: "09:00"}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/availability/slots?date=2026-10-20", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"items":[{"start":"08:00","end":"09:00"}],"count":1}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
