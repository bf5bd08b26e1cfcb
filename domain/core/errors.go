package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load errors: the caller must supply a different input file to retry.
	ErrDecode          = errors.New("dataset could not be decoded")
	ErrEmptyDataset    = errors.New("dataset contains no data rows")
	ErrMalformedHeader = errors.New("dataset header is malformed")

	// Handle errors
	ErrHandleNotFound = errors.New("upload handle not found")
	ErrHandleExpired  = errors.New("upload handle expired")

	// Upload validation errors
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds size limit")
)

// Error constructors with context
func NewDecodeError(primary, fallback error) error {
	return fmt.Errorf("%w: primary encoding: %v; fallback encoding: %v", ErrDecode, primary, fallback)
}

func NewMalformedHeaderError(position int) error {
	return fmt.Errorf("%w: column %d has no name", ErrMalformedHeader, position)
}

func NewUnsupportedFileError(extension string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFile, extension)
}

func NewFileTooLargeError(size, limit int64) error {
	return fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, size, limit)
}

// Error checking helpers
func IsLoadError(err error) bool {
	return errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrMalformedHeader)
}

func IsUploadValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedFile) ||
		errors.Is(err, ErrFileTooLarge)
}
