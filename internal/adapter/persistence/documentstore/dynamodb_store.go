package documentstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"aurora_motors/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const tableReadyTimeout = 30 * time.Second

// DynamoAPI is the subset of the DynamoDB client used by DynamoStore.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// DynamoStore maps each collection to a DynamoDB table.
//
// Table requirements:
//   - name: <database>_<collection>
//   - PK: id (string)
//
// Equality conditions are pushed down as a scan FilterExpression; the
// remaining conditions are evaluated on the decoded items.
type DynamoStore struct {
	ddb      DynamoAPI
	database string
	endpoint string
	closed   atomic.Bool
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI, database, endpoint string) *DynamoStore {
	return &DynamoStore{ddb: ddb, database: database, endpoint: endpoint}
}

func (s *DynamoStore) tableName(collection string) string {
	return s.database + "_" + collection
}

func (s *DynamoStore) Insert(ctx context.Context, collection string, v any) (string, error) {
	if s.closed.Load() {
		return "", unavailable("insert", collection, errStoreClosed)
	}
	doc, err := ToDocument(v)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}
	id := doc.ID()
	if id == "" {
		id = uuid.NewString()
		doc[IDField] = id
	}

	av, err := attributevalue.MarshalMap(map[string]any(doc))
	if err != nil {
		return "", fmt.Errorf("marshal %s document: %w", collection, err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName(collection)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": IDField,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return "", fmt.Errorf("insert %s: duplicate id %q", collection, id)
		}
		return "", unavailable("insert", collection, err)
	}
	return id, nil
}

func (s *DynamoStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	if s.closed.Load() {
		return nil, unavailable("find", collection, errStoreClosed)
	}
	expr, names, values, err := buildFilterExpression(filter)
	if err != nil {
		return nil, fmt.Errorf("build %s filter: %w", collection, err)
	}

	input := &dynamodb.ScanInput{TableName: aws.String(s.tableName(collection))}
	if expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	docs := make([]Document, 0)
	pages := dynamodb.NewScanPaginator(s.ddb, input)
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			if isTableMissing(err) {
				return docs, nil
			}
			return nil, unavailable("find", collection, err)
		}
		for _, raw := range out.Items {
			var m map[string]any
			if err := attributevalue.UnmarshalMap(raw, &m); err != nil {
				return nil, fmt.Errorf("unmarshal %s document: %w", collection, err)
			}
			doc := Document(m)
			if !filter.Match(doc) {
				continue
			}
			docs = append(docs, doc)
			if limit > 0 && len(docs) >= limit {
				return docs, nil
			}
		}
	}
	return docs, nil
}

func (s *DynamoStore) Count(ctx context.Context, collection string) (int, error) {
	if s.closed.Load() {
		return 0, unavailable("count", collection, errStoreClosed)
	}
	total := 0
	pages := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName(collection)),
		Select:    types.SelectCount,
	})
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			if isTableMissing(err) {
				return 0, nil
			}
			return 0, unavailable("count", collection, err)
		}
		total += int(out.Count)
	}
	return total, nil
}

// Collections lists the collections of this database, sorted by name.
func (s *DynamoStore) Collections(ctx context.Context) ([]string, error) {
	if s.closed.Load() {
		return nil, unavailable("list", "collections", errStoreClosed)
	}
	prefix := s.database + "_"
	names := make([]string, 0)
	pages := dynamodb.NewListTablesPaginator(s.ddb, &dynamodb.ListTablesInput{})
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return nil, unavailable("list", "collections", err)
		}
		for _, table := range out.TableNames {
			if strings.HasPrefix(table, prefix) {
				names = append(names, strings.TrimPrefix(table, prefix))
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// EnsureCollections creates the missing tables with on-demand billing and
// waits until they are active.
func (s *DynamoStore) EnsureCollections(ctx context.Context, collections ...string) error {
	for _, collection := range collections {
		table := s.tableName(collection)
		_, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		if err == nil {
			continue
		}
		if !isTableMissing(err) {
			return unavailable("describe", collection, err)
		}

		_, err = s.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(table),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(IDField), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(IDField), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return unavailable("create", collection, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(s.ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, tableReadyTimeout); err != nil {
			return unavailable("wait", collection, err)
		}
	}
	return nil
}

func (s *DynamoStore) Info() interfaces.StorageInfo {
	return interfaces.StorageInfo{
		Driver:     DriverDynamoDB,
		Database:   s.database,
		Endpoint:   s.endpoint,
		Configured: true,
	}
}

// Close stops the store from serving further calls. The SDK client holds
// no resources that need releasing.
func (s *DynamoStore) Close(_ context.Context) error {
	s.closed.Store(true)
	return nil
}

// buildFilterExpression translates the equality conditions of f into a scan
// filter expression joined by AND.
func buildFilterExpression(f Filter) (string, map[string]string, map[string]types.AttributeValue, error) {
	var parts []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	for i, c := range f.Conditions {
		if c.Op != OpEquals {
			continue
		}
		av, err := attributevalue.Marshal(c.Value)
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal value for %s: %w", c.Field, err)
		}
		n := "#f" + strconv.Itoa(i)
		v := ":v" + strconv.Itoa(i)
		names[n] = c.Field
		values[v] = av
		parts = append(parts, n+" = "+v)
	}
	if len(parts) == 0 {
		return "", nil, nil, nil
	}
	return strings.Join(parts, " AND "), names, values, nil
}

func isTableMissing(err error) bool {
	var rnf *types.ResourceNotFoundException
	return errors.As(err, &rnf)
}
