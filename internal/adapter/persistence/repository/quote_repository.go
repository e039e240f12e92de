package repository

import (
	"context"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/infrastructure/storage"
	"klusmarkt/internal/usecase/interfaces"
)

// QuoteRepository owns "invoices".
type QuoteRepository struct {
	store  *storage.Adapter
	quotes collection[entities.Quote]
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(store *storage.Adapter) *QuoteRepository {
	return &QuoteRepository{store: store, quotes: collection[entities.Quote]{key: storage.KeyInvoices}}
}

func (r *QuoteRepository) List(ctx context.Context) ([]entities.Quote, error) {
	return r.quotes.all(ctx, r.store)
}

func (r *QuoteRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error) {
	all, err := r.quotes.all(ctx, r.store)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if q.JobID == jobID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return r.quotes.find(ctx, r.store, id)
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		return r.quotes.insert(ctx, tx, q)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepository) Update(ctx context.Context, id string, fn func(*entities.Quote) error) (entities.Quote, error) {
	var updated entities.Quote
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		q, _, err := r.quotes.modify(ctx, tx, id, fn)
		updated = q
		return err
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return updated, nil
}

// Delete removes id when guard accepts the stored quote. guard may be nil.
func (r *QuoteRepository) Delete(ctx context.Context, id string, guard func(entities.Quote) error) (entities.Quote, error) {
	var removed entities.Quote
	err := r.store.Update(ctx, func(tx *storage.Txn) error {
		q, err := r.quotes.deleteIf(ctx, tx, id, guard)
		removed = q
		return err
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return removed, nil
}
