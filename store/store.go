package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ragerumal/serverless-microservice/dispatch"
	"github.com/ragerumal/serverless-microservice/internal/expr"
)

// Client is the subset of the DynamoDB API the store uses. It is satisfied
// by *dynamodb.Client and by test doubles.
type Client interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store resolves DynamoDB tables for the dispatcher.
type Store struct {
	client Client
	config Config
}

var _ dispatch.Store = (*Store)(nil)

// New creates a new Store instance.
func New(client Client, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// Resolve returns a handle to the named table, wrapping
// dispatch.ErrTableNotFound when DynamoDB reports the table missing.
func (s *Store) Resolve(ctx context.Context, name string) (dispatch.Table, error) {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		var nf *types.ResourceNotFoundException
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("%w: %s", dispatch.ErrTableNotFound, name)
		}
		return nil, err
	}

	return &table{
		client: s.client,
		config: s.config,
		name:   name,
	}, nil
}

// table is a per-request handle to a single DynamoDB table.
type table struct {
	client Client
	config Config
	name   string
}

// Put inserts or replaces a full record.
func (t *table) Put(ctx context.Context, item map[string]any) (map[string]any, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("marshal item: %w", err)
	}

	out, err := t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:              aws.String(t.name),
		Item:                   av,
		ReturnConsumedCapacity: types.ReturnConsumedCapacityTotal,
	})
	if err != nil {
		return nil, err
	}
	return ack(out.ConsumedCapacity), nil
}

// Get returns the record matching key, or nil when no record matches.
func (t *table) Get(ctx context.Context, key map[string]any) (map[string]any, error) {
	keyAV, err := attributevalue.MarshalMap(key)
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}

	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            keyAV,
		ConsistentRead: aws.Bool(t.config.ConsistentRead),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		// A miss is an empty result, not an error.
		return nil, nil
	}

	var record map[string]any
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	return record, nil
}

// Update applies changes to the record at key and returns the new item image.
func (t *table) Update(ctx context.Context, key, changes map[string]any) (map[string]any, error) {
	keyAV, err := attributevalue.MarshalMap(key)
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}

	updateExpr, names, values, err := expr.Set(changes)
	if err != nil {
		return nil, err
	}

	out, err := t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       keyAV,
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := attributevalue.UnmarshalMap(out.Attributes, &record); err != nil {
		return nil, fmt.Errorf("unmarshal attributes: %w", err)
	}
	return record, nil
}

// Delete removes the record at key. The acknowledgment carries the removed
// attributes when the record existed.
func (t *table) Delete(ctx context.Context, key map[string]any) (map[string]any, error) {
	keyAV, err := attributevalue.MarshalMap(key)
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}

	out, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(t.name),
		Key:          keyAV,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, err
	}

	result := map[string]any{"ok": true}
	if len(out.Attributes) > 0 {
		var removed map[string]any
		if err := attributevalue.UnmarshalMap(out.Attributes, &removed); err != nil {
			return nil, fmt.Errorf("unmarshal attributes: %w", err)
		}
		result["deleted"] = removed
	}
	return result, nil
}

// Scan returns every record in the table, paginating through all pages.
func (t *table) Scan(ctx context.Context) ([]map[string]any, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(t.name),
	}
	if t.config.ScanPageSize > 0 {
		input.Limit = aws.Int32(t.config.ScanPageSize)
	}

	items := []map[string]any{}
	paginator := dynamodb.NewScanPaginator(t.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var record map[string]any
			if err := attributevalue.UnmarshalMap(raw, &record); err != nil {
				return nil, fmt.Errorf("unmarshal item: %w", err)
			}
			items = append(items, record)
		}
	}

	return items, nil
}

// ack builds the put acknowledgment from consumed capacity metadata.
func ack(capacity *types.ConsumedCapacity) map[string]any {
	m := map[string]any{"ok": true}
	if capacity != nil && capacity.CapacityUnits != nil {
		m["consumedCapacityUnits"] = *capacity.CapacityUnits
	}
	return m
}
