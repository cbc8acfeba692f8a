package brand

import "errors"

// Sentinel errors for brand operations.
var (
	// ErrBrandNotFound indicates the requested brand directory does not exist.
	ErrBrandNotFound = errors.New("brand not found")

	// ErrTemplateNotFound indicates a required brand template file is missing.
	ErrTemplateNotFound = errors.New("brand template not found")

	// ErrMissingKey indicates a template placeholder has no matching
	// metadata key.
	ErrMissingKey = errors.New("template key missing from metadata")

	// ErrInvalidBrandName indicates the brand name contains path separators
	// or traversal sequences.
	ErrInvalidBrandName = errors.New("invalid brand name")

	// ErrInvalidBrandsRoot indicates the configured brands root is not a
	// valid directory.
	ErrInvalidBrandsRoot = errors.New("invalid brands root")

	// ErrTemplateRead indicates an I/O error occurred while reading a
	// brand file.
	ErrTemplateRead = errors.New("failed to read brand file")
)
