// Package profiles stores the remote profile document in Firestore, the
// alternative to the Supabase profiles table.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"
	"klusmarkt/internal/usecase/interfaces"
)

const Collection = "profiles"

// NewClient creates a Firestore client. With an empty credsFile the
// application default credentials are used.
func NewClient(ctx context.Context, projectID, credsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credsFile) != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}
	return client, nil
}

// Ping performs a lightweight check by attempting to iterate collections.
func Ping(ctx context.Context, client *firestore.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := client.Collections(ctx)
	_, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}
	return err
}

type documentCreator interface {
	Create(ctx context.Context, id string, data any) error
}

type collectionCreator struct {
	col *firestore.CollectionRef
}

func (c collectionCreator) Create(ctx context.Context, id string, data any) error {
	_, err := c.col.Doc(id).Create(ctx, data)
	return err
}

type FirestoreStore struct {
	docs documentCreator
}

var _ interfaces.IProfileStore = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{docs: collectionCreator{col: client.Collection(Collection)}}
}

// Insert creates the profile document keyed by the auth user id. An existing
// document is an error.
func (s *FirestoreStore) Insert(ctx context.Context, row entities.ProfileRow) error {
	if strings.TrimSpace(row.ID) == "" {
		return errors.New("profile row id is required")
	}
	if err := s.docs.Create(ctx, row.ID, row); err != nil {
		return &usecase.ExternalServiceError{Service: "firestore", Tag: usecase.TagUnknown, Message: "insert profile", Err: err}
	}
	return nil
}
