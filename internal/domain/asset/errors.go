package asset

import "errors"

var (
	// Validation failures abort before any write.
	ErrMissingSlug  = errors.New("owner slug is required")
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
	ErrRejectedType = errors.New("file type is not allowed")

	// Storage failures.
	ErrPathEscape = errors.New("path escapes the upload root")
	ErrNotFound   = errors.New("file not found")

	// ErrLinkFailed means the bytes are durable on disk but the metadata
	// record could not be written. The asset is orphaned, not corrupt.
	ErrLinkFailed = errors.New("failed to record asset metadata")
)
