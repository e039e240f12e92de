package repository

import (
	"context"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/infrastructure/storage"
	"klusmarkt/internal/usecase/interfaces"
)

// AgendaRepository owns "agendaItems".
type AgendaRepository struct {
	store *storage.Adapter
	items collection[entities.AgendaItem]
}

var _ interfaces.IAgendaRepository = (*AgendaRepository)(nil)

func NewAgendaRepository(store *storage.Adapter) *AgendaRepository {
	return &AgendaRepository{store: store, items: collection[entities.AgendaItem]{key: storage.KeyAgendaItems}}
}

func (r *AgendaRepository) List(ctx context.Context) ([]entities.AgendaItem, error) {
	return r.items.all(ctx, r.store)
}

func (r *AgendaRepository) GetByID(ctx context.Context, id string) (entities.AgendaItem, error) {
	return r.items.find(ctx, r.store, id)
}

func (r *AgendaRepository) Create(ctx context.Context, item entities.AgendaItem) (entities.AgendaItem, error) {
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		return r.items.insert(ctx, tx, item)
	})
	if err != nil {
		return entities.AgendaItem{}, err
	}
	return item, nil
}

func (r *AgendaRepository) Update(ctx context.Context, id string, fn func(*entities.AgendaItem) error) (entities.AgendaItem, error) {
	var updated entities.AgendaItem
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		item, _, err := r.items.modify(ctx, tx, id, fn)
		updated = item
		return err
	})
	if err != nil {
		return entities.AgendaItem{}, err
	}
	return updated, nil
}

func (r *AgendaRepository) Delete(ctx context.Context, id string) (entities.AgendaItem, error) {
	var removed entities.AgendaItem
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		item, err := r.items.delete(ctx, tx, id)
		removed = item
		return err
	})
	if err != nil {
		return entities.AgendaItem{}, err
	}
	return removed, nil
}
