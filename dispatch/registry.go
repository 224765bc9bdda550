package dispatch

import (
	"context"
	"sort"
)

// handlerFunc runs one operation. table is nil for operations that do not
// touch the store.
type handlerFunc func(ctx context.Context, req Request, table Table) (any, error)

// operation pairs a handler with its table requirement.
type operation struct {
	needsTable bool
	run        handlerFunc
}

// registry holds the fixed operation-name to handler mapping. It is built
// once at construction and never mutated afterwards, so lookups need no
// locking.
type registry struct {
	ops map[string]operation
}

func newRegistry() *registry {
	return &registry{ops: make(map[string]operation)}
}

func (r *registry) register(name string, needsTable bool, fn handlerFunc) {
	r.ops[name] = operation{needsTable: needsTable, run: fn}
}

func (r *registry) lookup(name string) (operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// names returns the registered operation names in sorted order.
func (r *registry) names() []string {
	out := make([]string, 0, len(r.ops))
	for name := range r.ops {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
