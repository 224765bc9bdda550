package dispatch

import (
	"context"
	"errors"
	"log/slog"
)

// Dispatcher routes requests to operation handlers against a Store.
type Dispatcher struct {
	store    Store
	logger   *slog.Logger
	registry *registry
}

// New creates a Dispatcher backed by store. A nil logger falls back to
// slog.Default().
func New(store Store, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		store:  store,
		logger: logger,
	}

	r := newRegistry()
	r.register("create", true, d.create)
	r.register("read", true, d.read)
	r.register("update", true, d.update)
	r.register("delete", true, d.delete)
	r.register("list", true, d.list)
	r.register("echo", false, d.echo)
	r.register("ping", false, d.ping)
	d.registry = r

	return d
}

// Operations returns the recognized operation names in sorted order.
func (d *Dispatcher) Operations() []string {
	return d.registry.names()
}

// Handle validates req, resolves its operation and table, runs the handler,
// and returns the handler's result untransformed. Every failure is an
// [*Error]; see the package documentation for the taxonomy.
func (d *Dispatcher) Handle(ctx context.Context, req Request) (any, error) {
	if req.Operation == "" {
		return nil, malformedf("operation is required")
	}

	op, ok := d.registry.lookup(req.Operation)
	if !ok {
		return nil, unsupported(req.Operation)
	}

	var table Table
	if op.needsTable {
		if req.TableName == "" {
			return nil, malformedf("%s: tableName is required", req.Operation)
		}
		t, err := d.store.Resolve(ctx, req.TableName)
		if err != nil {
			if errors.Is(err, ErrTableNotFound) {
				return nil, tableNotFound(req.TableName, err)
			}
			return nil, storeFailure(req.Operation, err)
		}
		table = t
	}

	d.logger.Debug("dispatching request",
		"operation", req.Operation,
		"table", req.TableName,
	)

	return op.run(ctx, req, table)
}

func (d *Dispatcher) create(ctx context.Context, req Request, table Table) (any, error) {
	item, err := req.envelope("item")
	if err != nil {
		return nil, err
	}
	ack, err := table.Put(ctx, item)
	if err != nil {
		return nil, storeFailure(req.Operation, err)
	}
	return ack, nil
}

func (d *Dispatcher) read(ctx context.Context, req Request, table Table) (any, error) {
	key, err := req.envelope("key")
	if err != nil {
		return nil, err
	}
	// A miss comes back as a nil record with no error and passes through
	// as an empty result.
	record, err := table.Get(ctx, key)
	if err != nil {
		return nil, storeFailure(req.Operation, err)
	}
	return record, nil
}

func (d *Dispatcher) update(ctx context.Context, req Request, table Table) (any, error) {
	key, err := req.envelope("key")
	if err != nil {
		return nil, err
	}
	changes, err := req.envelope("changes")
	if err != nil {
		return nil, err
	}
	ack, err := table.Update(ctx, key, changes)
	if err != nil {
		return nil, storeFailure(req.Operation, err)
	}
	return ack, nil
}

func (d *Dispatcher) delete(ctx context.Context, req Request, table Table) (any, error) {
	key, err := req.envelope("key")
	if err != nil {
		return nil, err
	}
	ack, err := table.Delete(ctx, key)
	if err != nil {
		return nil, storeFailure(req.Operation, err)
	}
	return ack, nil
}

func (d *Dispatcher) list(ctx context.Context, req Request, table Table) (any, error) {
	items, err := table.Scan(ctx)
	if err != nil {
		return nil, storeFailure(req.Operation, err)
	}
	return items, nil
}

func (d *Dispatcher) echo(ctx context.Context, req Request, _ Table) (any, error) {
	return req.Payload, nil
}

func (d *Dispatcher) ping(ctx context.Context, req Request, _ Table) (any, error) {
	return "pong", nil
}
