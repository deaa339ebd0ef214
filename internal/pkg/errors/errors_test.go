package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WithDetails(t *testing.T) {
	err := ErrActionNotFound.WithDetails(map[string]interface{}{"action_name": "action_unknown"})

	assert.Equal(t, "action_unknown", err.Details["action_name"])
	assert.Empty(t, ErrActionNotFound.Details, "sentinel must stay untouched")
	assert.True(t, stderrors.Is(err, ErrActionNotFound))
	assert.False(t, stderrors.Is(err, ErrInvalidRequest))
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("execute: %w", ErrInvalidRequest)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "INVALID_REQUEST: Invalid request parameters", appErr.Error())

	_, ok = As(stderrors.New("plain"))
	assert.False(t, ok)
}
