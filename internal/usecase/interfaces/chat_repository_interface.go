package interfaces

import (
	"context"

	"klusmarkt/internal/domain/entities"
)

type IChatRepository interface {
	Messages(ctx context.Context, chatID string) ([]entities.ChatMessage, error)
	Append(ctx context.Context, chatID string, msg entities.ChatMessage) error
	MarkRead(ctx context.Context, chatID, readerID string) (int, error)
}
