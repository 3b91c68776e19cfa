package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the referenced entity id is absent from the
// upstream collection.
var ErrNotFound = errors.New("not found")

// ErrInvalid marks a rejected input (missing or malformed field).
var ErrInvalid = errors.New("invalid input")

// RemoteRequestError carries a non-2xx response from the booking service.
// The upstream detail is surfaced verbatim.
type RemoteRequestError struct {
	Status int
	Detail string
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("remote request failed: status=%d detail=%s", e.Status, e.Detail)
}

// DecodeError reports a malformed inline image (bad data URI or payload).
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "image decode failed: " + e.Reason
}

// UpstreamSyncError means the local image override was saved but the
// propagation to the upstream record failed. The override is retained;
// callers decide whether to reconcile later.
type UpstreamSyncError struct {
	EmployeeID string
	Err        error
}

func (e *UpstreamSyncError) Error() string {
	return fmt.Sprintf("upstream sync failed for employee %s: %v", e.EmployeeID, e.Err)
}

func (e *UpstreamSyncError) Unwrap() error { return e.Err }

// StorageWriteError wraps a failed persistent-store write. Non-fatal: the
// in-memory state stays authoritative for the session.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write failed for key %s: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }
