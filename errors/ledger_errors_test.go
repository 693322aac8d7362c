package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerErrorCodes(t *testing.T) {
	storeErr := NewStoreError("failed to flush tip", io.ErrClosedPipe)
	assert.True(t, IsStoreError(storeErr))
	assert.False(t, IsDecodeError(storeErr))
	assert.Contains(t, storeErr.Error(), "store_error")
	assert.Contains(t, storeErr.Error(), "failed to flush tip")

	decodeErr := NewDecodeError("tip key holds invalid hash text", nil)
	assert.True(t, IsDecodeError(decodeErr))
	assert.False(t, IsStoreError(decodeErr))
}

func TestLedgerErrorUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := NewStoreError("read block", cause)
	assert.ErrorIs(t, err, cause)

	// predicates survive another layer of wrapping
	wrapped := fmt.Errorf("open chain: %w", err)
	assert.True(t, IsStoreError(wrapped))
}

func TestPlainErrorsHaveNoCode(t *testing.T) {
	assert.False(t, IsStoreError(io.EOF))
	assert.False(t, IsDecodeError(nil))
}
