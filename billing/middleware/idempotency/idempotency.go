// Package idempotency guards mutating endpoints against client retries.
// Bill creation deducts stock, so replaying a request must return the
// first response instead of deducting twice.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

var (
	IDEMPOTENCY_HEADER = "X-Idempotency-Key"
)

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)

	key := requestKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	record, cacheErr := requestCache.Get(req.Context(), key)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			if err := markAsProcessing(req.Context(), key); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				// Clear the processing marker so the client can retry.
				deleteRecord(req.Context(), key)
			} else {
				markAsCompleted(req.Context(), key, bodyHash, idempotencyKey, response)
			}

			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return handleExistingRecord(req, next, record, bodyHash, idempotencyKey)
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(IDEMPOTENCY_HEADER))
	}

	if len(idempotencyKey) == 0 {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	return idempotencyKey, nil
}

// generateBodyHash creates a hash of the request body for conflict detection
func generateBodyHash(req middleware.Request) string {
	var bodyHash string
	if payload := req.Data().Payload; payload != nil {
		if bodyBytes, err := json.Marshal(payload); err != nil {
			rlog.Error("failed to marshal request body", "error", err)
		} else {
			bodyHash = hashing(bodyBytes)
		}
	}
	return bodyHash
}

// handleExistingRecord handles cases where a cached record already exists
func handleExistingRecord(req middleware.Request, next middleware.Next, record requestRecord, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(record, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch record.Status {
	case statusProcessing:
		rlog.Info("concurrent request detected", "key", idempotencyKey)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case statusCompleted:
		return replayCompletedRecord(req, next, record, idempotencyKey)
	default:
		rlog.Warn("unknown idempotency record status, processing as new request", "key", idempotencyKey, "status", record.Status)
		return next(req)
	}
}

// validateBodyHash checks for conflicts in request body hash
func validateBodyHash(record requestRecord, bodyHash string) *errs.Error {
	if bodyHash != "" && record.RequestBodyHash != "" && bodyHash != record.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// replayCompletedRecord returns the cached response
func replayCompletedRecord(req middleware.Request, next middleware.Next, record requestRecord, idempotencyKey string) middleware.Response {
	if len(record.Response) > 0 {
		rlog.Info("returning cached response", "key", idempotencyKey)

		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(record.Response, responseValue); err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", idempotencyKey)
		}
	}

	// Cached response is unusable; treat as a new request.
	return next(req)
}

// markAsProcessing marks a request as currently being processed
func markAsProcessing(ctx context.Context, key requestKey) *errs.Error {
	if err := requestCache.Set(ctx, key, requestRecord{
		Status:    statusProcessing,
		StartedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

// deleteRecord removes the processing record to allow retry
func deleteRecord(ctx context.Context, key requestKey) {
	if _, deleteErr := requestCache.Delete(ctx, key); deleteErr != nil {
		rlog.Error("failed to clear failed request from cache", "error", deleteErr)
	}
}

// markAsCompleted caches the successful response
func markAsCompleted(ctx context.Context, key requestKey, bodyHash, idempotencyKey string, response middleware.Response) {
	record := requestRecord{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		CompletedAt:     time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		record.Response = payloadBytes
	}

	if setErr := requestCache.Set(ctx, key, record); setErr != nil {
		rlog.Error("failed to cache successful response", "error", setErr)
	}

	rlog.Debug("request completed and response cached", "key", idempotencyKey)
}

// hashing creates a stable hash of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
