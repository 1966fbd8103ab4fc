/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/hydrate/datastore"
)

const streamBufferSize = 64

// Stream runs a paginated query in the background and emits one result per
// item, each mapped through the bound deserializer. Reconstruction failures
// are reported per item; query failures end the stream after being emitted.
func (d *DynamoRecordSource[T]) Stream(ctx context.Context, params *datastore.QueryParams) <-chan datastore.StreamResult[T] {
	resultCh := make(chan datastore.StreamResult[T], streamBufferSize)

	go d.streamWorker(ctx, params, resultCh)

	return resultCh
}

func (d *DynamoRecordSource[T]) streamWorker(ctx context.Context, params *datastore.QueryParams, resultCh chan<- datastore.StreamResult[T]) {
	defer close(resultCh)

	input, err := d.queryInput(params)
	if err != nil {
		resultCh <- datastore.StreamResult[T]{Error: err}
		return
	}

	var index int64
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := d.client.Query(ctx, input)
		if err != nil {
			resultCh <- datastore.StreamResult[T]{
				Index: index,
				Error: fmt.Errorf("query failed: %w", err),
			}
			return
		}

		for _, item := range out.Items {
			result := datastore.StreamResult[T]{Index: index}

			rec, err := rawRecord(item)
			if err != nil {
				result.Error = err
			} else {
				result.Raw = rec
				instance, err := d.deserialize(rec)
				if err != nil {
					result.Error = fmt.Errorf("failed to reconstruct item: %w", err)
				} else {
					result.Instance = instance
				}
			}

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
			index++
		}

		if len(out.LastEvaluatedKey) == 0 {
			return
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
}
