package errors

import (
	"errors"
	"fmt"
)

// LedgerErrorCode represents standardized error codes for ledger operations
type LedgerErrorCode string

const (
	// ErrCodeStore covers any failure of the underlying key-value store:
	// open, read, write or flush. Fatal to the calling operation, not retried.
	ErrCodeStore LedgerErrorCode = "store_error"

	// ErrCodeDecode means stored bytes could not be decoded back into a
	// block or tip hash. Indicates on-disk corruption.
	ErrCodeDecode LedgerErrorCode = "decode_error"
)

// LedgerError is a standardized error carrying a code and an optional cause
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Cause   error
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As chains
func (e *LedgerError) Unwrap() error {
	return e.Cause
}

// NewStoreError wraps a storage failure
func NewStoreError(message string, cause error) error {
	return &LedgerError{Code: ErrCodeStore, Message: message, Cause: cause}
}

// NewDecodeError wraps a decoding failure
func NewDecodeError(message string, cause error) error {
	return &LedgerError{Code: ErrCodeDecode, Message: message, Cause: cause}
}

// IsStoreError reports whether err is (or wraps) a store error
func IsStoreError(err error) bool {
	return hasCode(err, ErrCodeStore)
}

// IsDecodeError reports whether err is (or wraps) a decode error
func IsDecodeError(err error) bool {
	return hasCode(err, ErrCodeDecode)
}

func hasCode(err error, code LedgerErrorCode) bool {
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}
