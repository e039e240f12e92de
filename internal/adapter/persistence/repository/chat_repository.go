package repository

import (
	"context"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/infrastructure/storage"
	"klusmarkt/internal/usecase/interfaces"
)

// ChatRepository owns the "chat_{chatId}" threads. Threads are append-only.
type ChatRepository struct {
	store *storage.Adapter
}

var _ interfaces.IChatRepository = (*ChatRepository)(nil)

func NewChatRepository(store *storage.Adapter) *ChatRepository {
	return &ChatRepository{store: store}
}

func (r *ChatRepository) thread(chatID string) collection[entities.ChatMessage] {
	return collection[entities.ChatMessage]{key: storage.ChatKey(chatID)}
}

func (r *ChatRepository) Messages(ctx context.Context, chatID string) ([]entities.ChatMessage, error) {
	return r.thread(chatID).all(ctx, r.store)
}

func (r *ChatRepository) Append(ctx context.Context, chatID string, m entities.ChatMessage) error {
	return r.store.Update(ctx, func(tx *storage.Txn) error {
		return r.thread(chatID).insert(ctx, tx, m)
	})
}

// MarkRead flags every unread message not sent by readerID and reports how
// many changed. Nothing is written when nothing changed.
func (r *ChatRepository) MarkRead(ctx context.Context, chatID, readerID string) (int, error) {
	var changed int
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		thread := r.thread(chatID)
		msgs, err := thread.all(ctx, tx)
		if err != nil {
			return err
		}
		for i := range msgs {
			if !msgs[i].Read && msgs[i].SenderID != readerID {
				msgs[i].Read = true
				changed++
			}
		}
		if changed == 0 {
			return nil
		}
		return tx.Set(thread.key, msgs)
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}
