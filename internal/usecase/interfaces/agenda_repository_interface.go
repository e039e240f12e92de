package interfaces

import (
	"context"

	"klusmarkt/internal/domain/entities"
)

type IAgendaRepository interface {
	List(ctx context.Context) ([]entities.AgendaItem, error)
	GetByID(ctx context.Context, id string) (entities.AgendaItem, error)
	Create(ctx context.Context, item entities.AgendaItem) (entities.AgendaItem, error)
	Update(ctx context.Context, id string, fn func(*entities.AgendaItem) error) (entities.AgendaItem, error)
	Delete(ctx context.Context, id string) (entities.AgendaItem, error)
}

type IAvailabilityRepository interface {
	Get(ctx context.Context) (entities.AvailabilitySettings, bool, error)
	Save(ctx context.Context, s entities.AvailabilitySettings) error
}
