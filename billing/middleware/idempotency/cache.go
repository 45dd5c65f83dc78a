package idempotency

import (
	"encoding/json"
	"time"

	"encore.dev/storage/cache"
)

// requestKey identifies one idempotent attempt: the endpoint path plus the
// client-chosen key, so the same key may be reused across endpoints.
type requestKey struct {
	Resource string
	Key      string
}

// requestRecord is the per-key state the middleware keeps: where the
// attempt stands, the request body hash for conflict detection, and the
// serialized response for replay once completed.
type requestRecord struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash,omitempty"`
	Response        json.RawMessage `json:"response,omitempty"`
	StartedAt       time.Time       `json:"started_at"`
	CompletedAt     time.Time       `json:"completed_at,omitempty"`
}

var cluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// requestCache holds idempotency state for a day; a retry after expiry is
// treated as a new request.
var requestCache = cache.NewStructKeyspace[requestKey, requestRecord](cluster, cache.KeyspaceConfig{
	KeyPattern:    "idempotency/:Resource/:Key",
	DefaultExpiry: cache.ExpireIn(24 * time.Hour),
})
