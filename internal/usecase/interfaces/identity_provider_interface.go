package interfaces

import (
	"context"

	"klusmarkt/internal/domain/entities"
)

// IIdentityProvider abstracts the hosted auth service (Supabase GoTrue).
//
// Failures are returned as *usecase.ExternalServiceError carrying a tag the
// caller can branch on.
type IIdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (entities.AuthUser, error)
	SignInWithPassword(ctx context.Context, email, password string) (entities.Session, error)
}

// IProfileStore is the remote profile table/collection written at sign-up.
type IProfileStore interface {
	Insert(ctx context.Context, row entities.ProfileRow) error
}
