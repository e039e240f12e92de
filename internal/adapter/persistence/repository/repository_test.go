package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newAdapter(t *testing.T) (*storage.Adapter, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	a := storage.NewAdapter(mem, zaptest.NewLogger(t))
	t.Cleanup(func() { _ = a.Close() })
	return a, mem
}

func TestJobRepository_ListingFollowsJob(t *testing.T) {
	ctx := context.Background()
	a, _ := newAdapter(t)
	repo := NewJobRepository(a)

	first := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, entities.Job{ID: "job-1", Title: "Leak", Category: entities.JobCategoryPlumbing, Status: entities.JobStatusActive})
	require.NoError(t, err)

	_, err = repo.Create(ctx, entities.Job{ID: "job-1"})
	require.ErrorIs(t, err, ErrDuplicateID)

	listing, err := repo.Publish(ctx, "job-1", first)
	require.NoError(t, err)
	assert.Equal(t, "job-1", listing.JobID)

	_, err = repo.Update(ctx, "job-1", func(j *entities.Job) error {
		j.Title = "Leaking tap"
		return nil
	})
	require.NoError(t, err)

	listing, err = repo.GetListing(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Leaking tap", listing.Title)
	assert.True(t, listing.PublishedAt.Equal(first))

	again, err := repo.Publish(ctx, "job-1", first.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, again.PublishedAt.Equal(first), "republish keeps first publication time")

	removed, err := repo.Delete(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", removed.ID)

	listings, err := repo.Listings(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestJobRepository_UpdateErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	a, _ := newAdapter(t)
	repo := NewJobRepository(a)

	_, err := repo.Create(ctx, entities.Job{ID: "job-1", Title: "Leak", Status: entities.JobStatusActive})
	require.NoError(t, err)

	boom := errors.New("rule violated")
	_, err = repo.Update(ctx, "job-1", func(j *entities.Job) error {
		j.Title = "changed"
		return boom
	})
	require.ErrorIs(t, err, boom)

	job, err := repo.GetByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Leak", job.Title)

	missing, err := repo.Update(ctx, "nope", func(*entities.Job) error {
		t.Fatalf("fn must not run for a missing job")
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCollection_CorruptPayloadReadsEmpty(t *testing.T) {
	ctx := context.Background()
	a, mem := newAdapter(t)
	require.NoError(t, mem.Set(ctx, storage.KeyJobs, []byte("{not json")))

	jobs, err := NewJobRepository(a).List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestChatRepository_MarkRead(t *testing.T) {
	ctx := context.Background()
	a, _ := newAdapter(t)
	repo := NewChatRepository(a)
	chat := "job-1_c-1"

	for i, sender := range []string{"cust-1", "c-1", "cust-1"} {
		require.NoError(t, repo.Append(ctx, chat, entities.ChatMessage{ID: string(rune('a' + i)), SenderID: sender, Content: "hi"}))
	}

	n, err := repo.MarkRead(ctx, chat, "c-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.MarkRead(ctx, chat, "c-1")
	require.NoError(t, err)
	assert.Zero(t, n)

	msgs, err := repo.Messages(ctx, chat)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.False(t, msgs[1].Read, "own message stays unread")
}

func TestAccountRepository_SaveAccount(t *testing.T) {
	ctx := context.Background()
	a, _ := newAdapter(t)
	repo := NewAccountRepository(a)

	_, found, err := repo.Subscription(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveAccount(ctx, entities.UserProfile{ID: "u-1", Email: "a@b.nl"}, entities.FreeSubscription(at)))

	p, err := repo.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.ID)

	sub, found, err := repo.Subscription(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entities.PlanFree, sub.Plan)
}
