package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/fergusquiz/internal/errors"
)

func TestIsCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("signup: %w", errors.NewPersistenceError("save roster", stderrors.New("disk full")))

	assert.True(t, errors.IsCode(err, errors.ErrCodePersistence))
	assert.False(t, errors.IsCode(err, errors.ErrCodeUsage))
	assert.False(t, errors.IsCode(stderrors.New("plain"), errors.ErrCodeUsage))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "usage",
			err:      errors.NewUsageError("Invalid input. quiz <subject> <difficulty>"),
			expected: "Invalid input. quiz <subject> <difficulty>",
		},
		{
			name:     "lookup",
			err:      errors.NewLookupError("Invalid quiz selection!"),
			expected: "Invalid quiz selection!",
		},
		{
			name:     "persistence",
			err:      errors.NewPersistenceError("save roster", stderrors.New("locked")),
			expected: "error: failed to save roster",
		},
		{
			name:     "empty bank",
			err:      errors.NewEmptyQuestionBankError("maths", "hard"),
			expected: "There are no hard questions for maths!",
		},
		{
			name:     "foreign error",
			err:      stderrors.New("boom"),
			expected: "error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.UserMessage(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("locked")
	err := errors.NewPersistenceError("load roster", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "PERSISTENCE_ERROR")
}
