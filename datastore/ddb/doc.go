/*
Package ddb provides a DynamoDB implementation of the RecordSource interface.

The DynamoRecordSource reads items from a table, unmarshals each into the
loosely-typed record shape the hydrate engine consumes, and maps it through
a deserializer bound to a metadata registry at construction time:

	client, err := ddb.NewClient(accessKey, secretKey, region)
	orders := ddb.NewDynamoRecordSource[Order](client, tableName, registry.Default)

	order, err := orders.GetOne(ctx, map[string]string{"PK": "ORDER#42", "SK": "ORDER#42"})

Queries paginate transparently and preserve result order:

	results, err := orders.Query(ctx, &datastore.QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionValues:       map[string]any{":pk": "ORDER"},
	})

Stream emits one result per item on a channel and honors context
cancellation:

	for res := range orders.Stream(ctx, params) {
	    if res.Error != nil {
	        // Raw is still populated when only reconstruction failed.
	        continue
	    }
	    handle(res.Instance)
	}

Reconstruction failures are deterministic metadata errors; the stream reports
them per item and keeps going, while query transport failures end the stream.
*/
package ddb
