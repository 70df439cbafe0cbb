package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode int
	}{
		{ErrUserNotFound, http.StatusNotFound},
		{ErrBoardNotFound, http.StatusNotFound},
		{ErrCollaboratorNotFound, http.StatusNotFound},
		{ErrEmailTaken, http.StatusConflict},
		{ErrCollaboratorExists, http.StatusConflict},
		{ErrUserNotExists, http.StatusBadRequest},
		{ErrWrongPassword, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		httpErr := MapErrorToHTTP(tt.err)
		assert.Equal(t, tt.expectedCode, httpErr.StatusCode, "error: %v", tt.err)
		assert.Equal(t, tt.err.Error(), httpErr.Message)
	}
}

func TestMapErrorToHTTP_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("check email: %w", ErrEmailTaken)
	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
}
