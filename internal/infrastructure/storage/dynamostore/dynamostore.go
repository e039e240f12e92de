// Package dynamostore persists the namespace in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// Multi-key commits use TransactWriteItems and are atomic (up to 100 keys).
package dynamostore

import (
	"context"
	"fmt"
	"time"

	"klusmarkt/internal/infrastructure/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const maxTransactItems = 100

// API is the subset of *dynamodb.Client used by Store.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type Store struct {
	ddb       API
	tableName string
	prefix    string
}

var _ storage.Store = (*Store)(nil)

// New wraps ddb. prefix namespaces keys per owner.
func New(ddb API, tableName, prefix string) *Store {
	return &Store{ddb: ddb, tableName: tableName, prefix: prefix}
}

func (s *Store) pk(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: s.prefix + key},
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.pk(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}
	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return []byte(it.Value), true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.Apply(ctx, []storage.Mutation{{Key: key, Value: value}})
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.Apply(ctx, []storage.Mutation{{Key: key, Delete: true}})
}

func (s *Store) Apply(ctx context.Context, mutations []storage.Mutation) error {
	switch {
	case len(mutations) == 0:
		return nil
	case len(mutations) > maxTransactItems:
		return fmt.Errorf("dynamostore: %d mutations exceed the %d item transaction limit", len(mutations), maxTransactItems)
	case len(mutations) == 1:
		return s.applyOne(ctx, mutations[0])
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	items := make([]types.TransactWriteItem, 0, len(mutations))
	for _, m := range mutations {
		if m.Delete {
			items = append(items, types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(s.tableName),
				Key:       s.pk(m.Key),
			}})
			continue
		}
		av, err := attributevalue.MarshalMap(kvItem{Key: s.prefix + m.Key, Value: string(m.Value), UpdatedAt: now})
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(s.tableName),
			Item:      av,
		}})
	}
	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

func (s *Store) applyOne(ctx context.Context, m storage.Mutation) error {
	if m.Delete {
		_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key:       s.pk(m.Key),
		})
		return err
	}
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       s.prefix + m.Key,
		Value:     string(m.Value),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

// Close is a no-op; the client has no connection to release.
func (s *Store) Close() error {
	return nil
}
