/*
Package datastore defines the boundary between the hydrate engine and the
transports that feed it.

A RecordSource produces raw records (already-decoded map[string]any values)
and maps each one through a deserializer bound with hydrate.MakeDeserializer
before returning it. The engine stays free of network and storage concerns;
the adapters stay free of reconstruction logic.

See the ddb subpackage for the DynamoDB-backed implementation.
*/
package datastore
