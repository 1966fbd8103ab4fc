/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// RecordSource is implemented by transport adapters that fetch raw records
// and map each one through a bound deserializer before handing it to the
// caller. The engine itself owns no transport; adapters own no conversion.
type RecordSource[T any] interface {
	// GetOne fetches a single record by its key attributes and returns the
	// reconstructed instance, or nil if no record matches.
	GetOne(ctx context.Context, key map[string]string) (*T, error)

	// Query fetches every record matching params and returns the
	// reconstructed instances in result order.
	Query(ctx context.Context, params *QueryParams) ([]*T, error)

	// Stream fetches records matching params page by page, emitting one
	// StreamResult per record. The channel closes when the result set is
	// exhausted, an unrecoverable error was emitted, or ctx is done.
	Stream(ctx context.Context, params *QueryParams) <-chan StreamResult[T]
}

// QueryParams defines parameters for a query against a record source.
type QueryParams struct {
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionValues contains plain Go values for expression placeholders;
	// the adapter converts them to its wire representation.
	ExpressionValues map[string]any
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	ScanIndexForward *bool
}

// StreamResult carries one streamed record: the reconstructed instance, the
// raw record it was built from, and its position in the result set. Error is
// set instead of Instance when the record could not be fetched or rebuilt.
type StreamResult[T any] struct {
	Instance *T
	Raw      map[string]any
	Index    int64
	Error    error
}
