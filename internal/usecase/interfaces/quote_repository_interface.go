package interfaces

import (
	"context"

	"klusmarkt/internal/domain/entities"
)

// IQuoteRepository persists quotes (invoices). Absent ids yield the zero Quote.
type IQuoteRepository interface {
	List(ctx context.Context) ([]entities.Quote, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, id string, fn func(*entities.Quote) error) (entities.Quote, error)
	Delete(ctx context.Context, id string, guard func(entities.Quote) error) (entities.Quote, error)
}
