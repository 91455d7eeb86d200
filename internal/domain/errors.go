package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNoScanRoots indicates no readable scan root could be resolved
	ErrNoScanRoots = errors.New("no readable scan roots")

	// ErrPermissionDenied indicates storage access has not been granted
	ErrPermissionDenied = errors.New("storage permission not granted")

	// ErrStoreClosed indicates the durable store has been closed
	ErrStoreClosed = errors.New("document store is closed")
)
