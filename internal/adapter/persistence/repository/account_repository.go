package repository

import (
	"context"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/infrastructure/storage"
	"klusmarkt/internal/usecase/interfaces"
)

// AccountRepository owns the "userProfile" and "subscriptionData" singletons.
type AccountRepository struct {
	store *storage.Adapter
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(store *storage.Adapter) *AccountRepository {
	return &AccountRepository{store: store}
}

// Profile returns the zero profile when none is stored.
func (r *AccountRepository) Profile(ctx context.Context) (entities.UserProfile, error) {
	p, _, err := storage.Load[entities.UserProfile](ctx, r.store, storage.KeyUserProfile)
	return p, err
}

func (r *AccountRepository) SaveProfile(ctx context.Context, p entities.UserProfile) error {
	return r.store.Set(ctx, storage.KeyUserProfile, p)
}

func (r *AccountRepository) Subscription(ctx context.Context) (entities.SubscriptionState, bool, error) {
	return storage.Load[entities.SubscriptionState](ctx, r.store, storage.KeySubscriptionData)
}

func (r *AccountRepository) SaveSubscription(ctx context.Context, s entities.SubscriptionState) error {
	return r.store.Set(ctx, storage.KeySubscriptionData, s)
}

// SaveAccount writes profile and subscription in one commit.
func (r *AccountRepository) SaveAccount(ctx context.Context, p entities.UserProfile, s entities.SubscriptionState) error {
	return r.store.Update(ctx, func(tx *storage.Txn) error {
		if err := tx.Set(storage.KeyUserProfile, p); err != nil {
			return err
		}
		return tx.Set(storage.KeySubscriptionData, s)
	})
}
