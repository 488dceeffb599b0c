package flutterwave

import "github.com/google/uuid"

// NewTraceID produces a request trace identifier for the X-Trace-Id header.
func NewTraceID() string {
	return uuid.NewString()
}

// NewIdempotencyKey produces a key for the X-Idempotency-Key header. Reuse
// the same key to make a retried mutation safe.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
