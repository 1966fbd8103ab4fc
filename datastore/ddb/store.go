/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/hydrate"
	"github.com/suparena/hydrate/datastore"
	"github.com/suparena/hydrate/registry"
)

// DynamoRecordSource implements datastore.RecordSource[T] on top of AWS
// DynamoDB. Every item read from the table is unmarshaled into a raw
// map[string]any and mapped through the deserializer bound at construction
// time, so callers receive fully reconstructed instances.
type DynamoRecordSource[T any] struct {
	client      *sdk.Client
	tableName   string
	deserialize func(raw any) (*T, error)
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewDynamoRecordSource constructs a record source for type T whose reads
// map every item through a deserializer bound to reg.
func NewDynamoRecordSource[T any](client *sdk.Client, tableName string, reg *registry.Registry) *DynamoRecordSource[T] {
	return &DynamoRecordSource[T]{
		client:      client,
		tableName:   tableName,
		deserialize: hydrate.MakeTypedDeserializer[T](reg),
	}
}

// GetOne retrieves a single item by its key attributes and returns the
// reconstructed instance, or nil if no item matches.
func (d *DynamoRecordSource[T]) GetOne(ctx context.Context, key map[string]string) (*T, error) {
	keyMap := make(map[string]types.AttributeValue, len(key))
	for name, value := range key {
		keyMap[name] = &types.AttributeValueMemberS{Value: value}
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	return d.mapItem(out.Item)
}

// Query runs a paginated query and returns the reconstructed instances in
// result order.
func (d *DynamoRecordSource[T]) Query(ctx context.Context, params *datastore.QueryParams) ([]*T, error) {
	input, err := d.queryInput(params)
	if err != nil {
		return nil, err
	}

	var results []*T
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := d.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query failed: %w", err)
		}

		for _, item := range out.Items {
			instance, err := d.mapItem(item)
			if err != nil {
				return nil, err
			}
			results = append(results, instance)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	return results, nil
}

// queryInput translates transport-neutral params into a DynamoDB QueryInput.
func (d *DynamoRecordSource[T]) queryInput(params *datastore.QueryParams) (*sdk.QueryInput, error) {
	input := &sdk.QueryInput{
		TableName:              &d.tableName,
		KeyConditionExpression: &params.KeyConditionExpression,
		FilterExpression:       params.FilterExpression,
		IndexName:              params.IndexName,
		Limit:                  params.Limit,
		ScanIndexForward:       params.ScanIndexForward,
	}

	if len(params.ExpressionValues) > 0 {
		values := make(map[string]types.AttributeValue, len(params.ExpressionValues))
		for placeholder, value := range params.ExpressionValues {
			av, err := attributevalue.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal expression value %s: %w", placeholder, err)
			}
			values[placeholder] = av
		}
		input.ExpressionAttributeValues = values
	}

	return input, nil
}

// mapItem is the response-mapping step: raw DynamoDB item → raw record →
// reconstructed instance.
func (d *DynamoRecordSource[T]) mapItem(item map[string]types.AttributeValue) (*T, error) {
	rec, err := rawRecord(item)
	if err != nil {
		return nil, err
	}
	instance, err := d.deserialize(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct item: %w", err)
	}
	return instance, nil
}

// rawRecord unmarshals a DynamoDB item into the loosely-typed record shape
// the deserialization engine consumes.
func rawRecord(item map[string]types.AttributeValue) (map[string]any, error) {
	var rec map[string]any
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return rec, nil
}
