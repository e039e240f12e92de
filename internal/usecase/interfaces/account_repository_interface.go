package interfaces

import (
	"context"

	"klusmarkt/internal/domain/entities"
)

// IAccountRepository persists the local profile and subscription singletons.
type IAccountRepository interface {
	Profile(ctx context.Context) (entities.UserProfile, error)
	SaveProfile(ctx context.Context, p entities.UserProfile) error
	Subscription(ctx context.Context) (entities.SubscriptionState, bool, error)
	SaveSubscription(ctx context.Context, s entities.SubscriptionState) error
	SaveAccount(ctx context.Context, p entities.UserProfile, s entities.SubscriptionState) error
}
