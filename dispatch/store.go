package dispatch

import "context"

// Store resolves named tables. It is the dispatcher's only collaborator;
// implementations own all connection state, timeouts, and retries.
type Store interface {
	// Resolve returns a handle to the named table. A name that does not
	// resolve fails with an error wrapping [ErrTableNotFound].
	Resolve(ctx context.Context, name string) (Table, error)
}

// Table is a handle to a single key-value table, valid for one request.
// Implementations must support concurrent calls from independent requests.
type Table interface {
	// Put inserts or replaces a full record and returns the store's
	// acknowledgment metadata.
	Put(ctx context.Context, item map[string]any) (map[string]any, error)

	// Get returns the record matching key, or nil with a nil error when no
	// record matches. A miss is not a failure.
	Get(ctx context.Context, key map[string]any) (map[string]any, error)

	// Update applies changes to the record at key and returns the store's
	// acknowledgment.
	Update(ctx context.Context, key, changes map[string]any) (map[string]any, error)

	// Delete removes the record at key and returns the store's acknowledgment.
	Delete(ctx context.Context, key map[string]any) (map[string]any, error)

	// Scan returns every record currently in the table. Order is
	// store-defined.
	Scan(ctx context.Context) ([]map[string]any, error)
}
