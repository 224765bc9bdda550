// Package dispatch routes tagged operation requests to a fixed set of
// handlers acting against a backing key-value table.
//
// A [Request] carries an operation name, an optional table name, and an
// operation-specific payload. [Dispatcher.Handle] validates the request
// shape, resolves the named operation, resolves the target table when the
// operation needs one, and runs the handler. Results pass through to the
// caller untransformed.
//
// # Operations
//
// Seven operations are recognized:
//
//   - create — put payload.item into the table
//   - read — get the record matching payload.key (a miss is an empty
//     result, not an error)
//   - update — apply payload.changes to the record at payload.key
//   - delete — remove the record at payload.key
//   - list — scan the full table
//   - echo — return the payload unchanged, no table access
//   - ping — return the literal "pong", no table access
//
// # Store collaborator
//
// The backing table is reached through the [Store] and [Table] interfaces,
// injected at construction time so tests can substitute a double without
// touching global state:
//
//	type Store interface {
//	    Resolve(ctx context.Context, name string) (Table, error)
//	}
//
// # Errors
//
// Every failure is an [*Error] carrying a taxonomy [Kind]:
//
//   - [KindMalformedRequest] - required field missing or empty
//   - [KindUnsupportedOperation] - operation name not recognized
//   - [KindTableNotFound] - table name does not resolve
//   - [KindStoreFailure] - the store raised an error; the cause is wrapped
//
// The dispatcher performs no retries and no local recovery; every failure
// surfaces to the caller as a typed error.
//
// # Concurrency
//
// A Dispatcher holds no mutable state after construction and is safe for
// concurrent use. Invocations are independent; conflict resolution between
// concurrent writes to the same key belongs to the store.
package dispatch
