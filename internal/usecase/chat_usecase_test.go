package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/domain/entities"
	mock_interfaces "klusmarkt/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatUseCase_Send(t *testing.T) {
	freezeClock(t, fixedNow)

	t.Run("reserved sender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIChatRepository(ctrl)
		uc := NewChatUseCase(repo, nil)

		_, err := uc.Send(context.Background(), "job-1_craft-1", entities.SystemSenderID, "hoi")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIChatRepository(ctrl)
		uc := NewChatUseCase(repo, nil)

		_, err := uc.Send(context.Background(), "job-1_craft-1", "craft-1", strings.Repeat("é", maxMessageRunes+1))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("append error publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIChatRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewChatUseCase(repo, events)

		repo.EXPECT().Append(gomock.Any(), "job-1_craft-1", gomock.Any()).Return(errors.New("disk full"))

		if _, err := uc.Send(context.Background(), "job-1_craft-1", "craft-1", "hoi"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIChatRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewChatUseCase(repo, events)

		repo.EXPECT().Append(gomock.Any(), "job-1_craft-1", gomock.AssignableToTypeOf(entities.ChatMessage{})).DoAndReturn(
			func(_ context.Context, _ string, msg entities.ChatMessage) error {
				if msg.SenderID != "craft-1" || msg.Content != "hoi" || !msg.Timestamp.Equal(fixedNow) {
					t.Fatalf("unexpected message %+v", msg)
				}
				return nil
			},
		)
		events.EXPECT().Publish(gomock.AssignableToTypeOf(bus.Event{})).Do(func(e bus.Event) {
			if e.Topic != bus.TopicFor(bus.EntityChat, bus.OpCreated) || e.ID != "job-1_craft-1" {
				t.Fatalf("unexpected event %+v", e)
			}
		})

		msg, err := uc.Send(context.Background(), " job-1_craft-1 ", "craft-1", "  hoi ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.ID == "" {
			t.Fatalf("expected id")
		}
	})
}

func TestChatUseCase_MarkReadPublishesOnlyOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIChatRepository(ctrl)
	events := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewChatUseCase(repo, events)

	repo.EXPECT().MarkRead(gomock.Any(), "c1", "cust-1").Return(0, nil)
	if n, err := uc.MarkRead(context.Background(), "c1", "cust-1"); err != nil || n != 0 {
		t.Fatalf("got %d, %v", n, err)
	}

	repo.EXPECT().MarkRead(gomock.Any(), "c1", "cust-1").Return(2, nil)
	events.EXPECT().Publish(gomock.Any())
	if n, err := uc.MarkRead(context.Background(), "c1", "cust-1"); err != nil || n != 2 {
		t.Fatalf("got %d, %v", n, err)
	}
}
