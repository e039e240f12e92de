package profiles

import (
	"context"
	"errors"
	"testing"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	docs map[string]any
	err  error
}

func (f *fakeCreator) Create(_ context.Context, id string, data any) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.docs[id]; ok {
		return errors.New("rpc error: code = AlreadyExists")
	}
	f.docs[id] = data
	return nil
}

func TestFirestoreStore_Insert(t *testing.T) {
	row := entities.ProfileRow{ID: "u-1", Email: "a@b.nl", Role: entities.UserRoleCustomer, Plan: entities.PlanFree}

	t.Run("creates document keyed by id", func(t *testing.T) {
		fc := &fakeCreator{docs: map[string]any{}}
		s := &FirestoreStore{docs: fc}
		require.NoError(t, s.Insert(context.Background(), row))
		assert.Equal(t, row, fc.docs["u-1"])
	})

	t.Run("duplicate is external error", func(t *testing.T) {
		fc := &fakeCreator{docs: map[string]any{"u-1": row}}
		s := &FirestoreStore{docs: fc}
		err := s.Insert(context.Background(), row)
		assert.ErrorIs(t, err, usecase.ErrExternalService)
	})

	t.Run("missing id", func(t *testing.T) {
		s := &FirestoreStore{docs: &fakeCreator{docs: map[string]any{}}}
		assert.Error(t, s.Insert(context.Background(), entities.ProfileRow{}))
	})
}
