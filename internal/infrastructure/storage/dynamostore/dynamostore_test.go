package dynamostore

import (
	"context"
	"errors"
	"testing"

	"klusmarkt/internal/infrastructure/storage"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in a map keyed by the "key" attribute.
type fakeDynamo struct {
	items        map[string]map[string]types.AttributeValue
	transactions int
	failTransact bool
}

func newFake() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(m map[string]types.AttributeValue) string {
	return m["key"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	if f.failTransact {
		return nil, errors.New("TransactionCanceledException")
	}
	f.transactions++
	for _, it := range in.TransactItems {
		if it.Put != nil {
			f.items[keyOf(it.Put.Item)] = it.Put.Item
		}
		if it.Delete != nil {
			delete(f.items, keyOf(it.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func TestStore_SingleAndMultiKey(t *testing.T) {
	ctx := context.Background()
	fake := newFake()
	s := New(fake, "kv", "owner-1:")

	require.NoError(t, s.Set(ctx, storage.KeyJobs, []byte(`[]`)))
	assert.Equal(t, 0, fake.transactions)

	var it kvItem
	require.NoError(t, attributevalue.UnmarshalMap(fake.items["owner-1:jobs"], &it))
	assert.Equal(t, `[]`, it.Value)
	assert.NotEmpty(t, it.UpdatedAt)

	require.NoError(t, s.Apply(ctx, []storage.Mutation{
		{Key: storage.KeyJobs, Delete: true},
		{Key: storage.KeyPublicJobListings, Value: []byte(`[{"id":"1"}]`)},
	}))
	assert.Equal(t, 1, fake.transactions)

	_, ok, err := s.Get(ctx, storage.KeyJobs)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := s.Get(ctx, storage.KeyPublicJobListings)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, string(v))
}

func TestStore_TransactionFailureSurfaces(t *testing.T) {
	fake := newFake()
	fake.failTransact = true
	s := New(fake, "kv", "")

	err := s.Apply(context.Background(), []storage.Mutation{
		{Key: "a", Value: []byte(`1`)},
		{Key: "b", Value: []byte(`2`)},
	})
	require.Error(t, err)
	assert.Empty(t, fake.items)
}

func TestStore_TooManyMutations(t *testing.T) {
	s := New(newFake(), "kv", "")
	muts := make([]storage.Mutation, maxTransactItems+1)
	assert.Error(t, s.Apply(context.Background(), muts))
}
