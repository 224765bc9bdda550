package dispatch

// Request is the single-entry-point input: a tagged operation with an
// optional table name and an operation-specific payload. The dispatcher
// only reads a Request; it never mutates one.
type Request struct {
	// Operation names the operation to run. Required.
	Operation string `json:"operation"`

	// TableName names the table store-backed operations act against.
	// Required for every operation except echo and ping.
	TableName string `json:"tableName,omitempty"`

	// Payload carries operation-specific data. Its envelope fields are
	// defined per operation: "item" for create, "key" for read and delete,
	// "key" plus "changes" for update. list and ping ignore it; echo
	// returns it unchanged.
	Payload map[string]any `json:"payload,omitempty"`
}

// envelope extracts a required mapping field from the payload. A missing,
// nil, or non-mapping value is a malformed request; the store is never
// reached in that case.
func (r Request) envelope(field string) (map[string]any, error) {
	v, ok := r.Payload[field]
	if !ok || v == nil {
		return nil, malformedf("%s: payload.%s is required", r.Operation, field)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, malformedf("%s: payload.%s must be an object", r.Operation, field)
	}
	return m, nil
}
