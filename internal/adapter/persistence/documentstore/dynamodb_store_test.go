package documentstore

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"aurora_motors/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo serves scans in pages of pageSize and ignores filter
// expressions, so DynamoStore must re-check every condition itself.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string][]map[string]types.AttributeValue
	pageSize int
	scanErr  error
	scans    int
}

func newFakeDynamo(tables ...string) *fakeDynamo {
	f := &fakeDynamo{tables: map[string][]map[string]types.AttributeValue{}, pageSize: 2}
	for _, t := range tables {
		f.tables[t] = nil
	}
	return f
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, ok := f.tables[aws.ToString(in.TableName)]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table not found")}
	}
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	for _, it := range items {
		if it["id"].(*types.AttributeValueMemberS).Value == id {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	f.tables[aws.ToString(in.TableName)] = append(items, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	items, ok := f.tables[aws.ToString(in.TableName)]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table not found")}
	}

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN).Value)
	}
	end := start + f.pageSize
	if end > len(items) {
		end = len(items)
	}
	out := &dynamodb.ScanOutput{Count: int32(end - start)}
	if in.Select != types.SelectCount {
		out.Items = items[start:end]
	}
	if end < len(items) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return out, nil
}

func (f *fakeDynamo) ListTables(_ context.Context, _ *dynamodb.ListTablesInput, _ ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.ListTablesOutput{}
	for name := range f.tables {
		out.TableNames = append(out.TableNames, name)
	}
	return out, nil
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tables[aws.ToString(in.TableName)]; !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[aws.ToString(in.TableName)] = nil
	return &dynamodb.CreateTableOutput{}, nil
}

func TestDynamoStore_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo("aurora_carmodel")
	s := NewDynamoStore(ddb, "aurora", "http://localhost:8001")

	models := []map[string]any{
		{"slug": "aurora-flux", "body_type": "Sedan", "published": true, "price_range": map[string]any{"min": 39999.0}},
		{"slug": "aurora-trail", "body_type": "SUV", "published": true},
		{"slug": "aurora-concept", "body_type": "SUV", "published": false},
		{"slug": "aurora-ridge", "body_type": "SUV", "published": true},
	}
	for _, m := range models {
		id, err := s.Insert(ctx, "carmodel", m)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	}

	docs, err := s.Find(ctx, "carmodel", Where(Eq("published", true), Eq("body_type", "SUV")), 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "aurora-trail", docs[0]["slug"])
	assert.Equal(t, "aurora-ridge", docs[1]["slug"])
	assert.NotEmpty(t, docs[0].ID())

	docs, err = s.Find(ctx, "carmodel", Where(Eq("slug", "aurora-flux")), 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 39999.0, docs[0]["price_range"].(map[string]any)["min"])
}

func TestDynamoStore_FindStopsAtLimit(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo("aurora_promotion")
	s := NewDynamoStore(ddb, "aurora", "")
	for i := 0; i < 6; i++ {
		_, err := s.Insert(ctx, "promotion", map[string]any{"title": "p" + strconv.Itoa(i), "active": true})
		require.NoError(t, err)
	}

	docs, err := s.Find(ctx, "promotion", Filter{}, 3)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.Equal(t, 2, ddb.scans, "third page never requested")

	n, err := s.Count(ctx, "promotion")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestDynamoStore_MissingTableReadsEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewDynamoStore(newFakeDynamo(), "aurora", "")

	docs, err := s.Find(ctx, "dealer", Filter{}, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)

	n, err := s.Count(ctx, "dealer")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.Insert(ctx, "lead", map[string]any{"name": "Ada"})
	assert.ErrorIs(t, err, interfaces.ErrStorageUnavailable)
}

func TestDynamoStore_BackendErrorIsUnavailable(t *testing.T) {
	ddb := newFakeDynamo("aurora_dealer")
	ddb.scanErr = errors.New("dial tcp: connection refused")
	s := NewDynamoStore(ddb, "aurora", "")

	_, err := s.Find(context.Background(), "dealer", Filter{}, 0)
	assert.ErrorIs(t, err, interfaces.ErrStorageUnavailable)
}

func TestDynamoStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	s := NewDynamoStore(newFakeDynamo("aurora_lead"), "aurora", "")
	_, err := s.Insert(ctx, "lead", map[string]any{"id": "lead-1"})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "lead", map[string]any{"id": "lead-1"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, interfaces.ErrStorageUnavailable)
}

func TestDynamoStore_CollectionsAndEnsure(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo("aurora_carmodel", "other_lead")
	s := NewDynamoStore(ddb, "aurora", "")

	require.NoError(t, s.EnsureCollections(ctx, "carmodel", "lead"))

	names, err := s.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"carmodel", "lead"}, names)

	info := s.Info()
	assert.Equal(t, DriverDynamoDB, info.Driver)
	assert.Equal(t, "aurora", info.Database)
	assert.True(t, info.Configured)
}

func TestDynamoStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewDynamoStore(newFakeDynamo("aurora_lead"), "aurora", "")
	require.NoError(t, s.Close(ctx))

	_, err := s.Insert(ctx, "lead", map[string]any{"name": "Ada"})
	assert.ErrorIs(t, err, interfaces.ErrStorageUnavailable)
}
