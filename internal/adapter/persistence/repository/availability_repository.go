package repository

import (
	"context"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/infrastructure/storage"
	"klusmarkt/internal/usecase/interfaces"
)

type AvailabilityRepository struct {
	store *storage.Adapter
}

var _ interfaces.IAvailabilityRepository = (*AvailabilityRepository)(nil)

func NewAvailabilityRepository(store *storage.Adapter) *AvailabilityRepository {
	return &AvailabilityRepository{store: store}
}

// Get returns found=false when the craftsman never saved settings.
func (r *AvailabilityRepository) Get(ctx context.Context) (entities.AvailabilitySettings, bool, error) {
	return storage.Load[entities.AvailabilitySettings](ctx, r.store, storage.KeyAvailabilitySettings)
}

func (r *AvailabilityRepository) Save(ctx context.Context, s entities.AvailabilitySettings) error {
	return r.store.Set(ctx, storage.KeyAvailabilitySettings, s)
}
