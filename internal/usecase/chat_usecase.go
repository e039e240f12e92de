package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase/interfaces"
)

const maxMessageRunes = 4000

type IChatUseCase interface {
	Messages(ctx context.Context, chatID string) ([]entities.ChatMessage, error)
	Send(ctx context.Context, chatID, senderID, content string) (entities.ChatMessage, error)
	SendSystem(ctx context.Context, chatID, content string) (entities.ChatMessage, error)
	MarkRead(ctx context.Context, chatID, readerID string) (int, error)
}

type ChatUseCase struct {
	repo   interfaces.IChatRepository
	events interfaces.IEventPublisher
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(repo interfaces.IChatRepository, events interfaces.IEventPublisher) *ChatUseCase {
	return &ChatUseCase{repo: repo, events: events}
}

// ChatID is the thread id shared by a job's customer and one craftsman.
func ChatID(jobID, craftsmanID string) string {
	return strings.TrimSpace(jobID) + "_" + strings.TrimSpace(craftsmanID)
}

func (u *ChatUseCase) Messages(ctx context.Context, chatID string) ([]entities.ChatMessage, error) {
	chatID, err := requireID("chatId", chatID)
	if err != nil {
		return nil, err
	}
	return u.repo.Messages(ctx, chatID)
}

func (u *ChatUseCase) Send(ctx context.Context, chatID, senderID, content string) (entities.ChatMessage, error) {
	senderID, err := requireID("senderId", senderID)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	if senderID == entities.SystemSenderID {
		return entities.ChatMessage{}, invalid("senderId", "reserved")
	}
	return u.append(ctx, chatID, senderID, content)
}

func (u *ChatUseCase) SendSystem(ctx context.Context, chatID, content string) (entities.ChatMessage, error) {
	return u.append(ctx, chatID, entities.SystemSenderID, content)
}

func (u *ChatUseCase) append(ctx context.Context, chatID, senderID, content string) (entities.ChatMessage, error) {
	chatID, err := requireID("chatId", chatID)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return entities.ChatMessage{}, invalid("content", "required")
	}
	if utf8.RuneCountInString(content) > maxMessageRunes {
		return entities.ChatMessage{}, invalid("content", "too long")
	}
	m := entities.ChatMessage{
		ID:        newID(),
		SenderID:  senderID,
		Content:   content,
		Timestamp: now(),
	}
	if err := u.repo.Append(ctx, chatID, m); err != nil {
		return entities.ChatMessage{}, err
	}
	emit(u.events, bus.EntityChat, bus.OpCreated, chatID, m)
	return m, nil
}

// MarkRead marks the messages readerID received as read.
func (u *ChatUseCase) MarkRead(ctx context.Context, chatID, readerID string) (int, error) {
	chatID, err := requireID("chatId", chatID)
	if err != nil {
		return 0, err
	}
	readerID, err = requireID("readerId", readerID)
	if err != nil {
		return 0, err
	}
	n, err := u.repo.MarkRead(ctx, chatID, readerID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		emit(u.events, bus.EntityChat, bus.OpUpdated, chatID, nil)
	}
	return n, nil
}
