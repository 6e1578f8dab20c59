// Package stages holds the single-purpose steps that authentication
// pipelines are assembled from. Every stage either returns its output or one
// error; it never inspects or rewrites an error produced by an earlier stage.
package stages

import (
	"context"
	"errors"
	e "gatekeeper/internal/core/domain/errors"
)

// Stage names reported by pipeline.Result.FailedAt.
const (
	Locate   = "locate"
	Verify   = "verify"
	Resolve  = "resolve"
	Gate     = "gate"
	Record   = "record"
	Hash     = "hash"
	Store    = "store"
	Generate = "generate"
	Validate = "validate"
)

// storageError marks err as a storage failure of op. Cancellation and errors
// that are already storage failures are returned as they are.
func storageError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var storageErr *e.StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return e.NewStorageError(op, err)
}
