// Package store implements the dispatch Store collaborator on DynamoDB.
//
// A [Store] wraps a DynamoDB client behind the [Client] interface so tests
// can substitute a double without touching global state. Resolve checks
// table existence with DescribeTable and returns a per-request handle; no
// connection state is carried across requests.
//
// Records cross the boundary as map[string]any and are converted with the
// attributevalue marshaller. Scans paginate through the full table before
// returning, so callers always see the complete sequence.
package store
