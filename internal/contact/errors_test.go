package contact

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "company"}
	assert.Equal(t, "company is required", err.Error())
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{ID: 42}
	assert.Equal(t, "contact 42 not found", err.Error())
}

func TestStorageErrorWrapsCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := &StorageError{Op: "insert", Err: cause}

	assert.Equal(t, "storage insert: database is locked", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantValidation bool
		wantNotFound   bool
		wantStorage    bool
	}{
		{"validation", &ValidationError{Field: "company"}, true, false, false},
		{"not found", &NotFoundError{ID: 1}, false, true, false},
		{"storage", &StorageError{Op: "get", Err: errors.New("x")}, false, false, true},
		{"plain error", errors.New("boom"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantValidation, IsValidation(tt.err))
			assert.Equal(t, tt.wantNotFound, IsNotFound(tt.err))
			assert.Equal(t, tt.wantStorage, IsStorage(tt.err))
		})
	}
}

func TestPredicatesUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("while saving: %w", &ValidationError{Field: "full_name"})
	assert.True(t, IsValidation(wrapped))

	var ve *ValidationError
	require.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, "full_name", ve.Field)
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	// A storage failure must never read as validation or not-found,
	// even when its cause mentions a row.
	err := &StorageError{Op: "update", Err: errors.New("contact 9 not found")}
	assert.True(t, IsStorage(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}
