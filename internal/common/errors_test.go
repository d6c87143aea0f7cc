package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", ErrForbidden), http.StatusForbidden},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatusFromError(tt.err))
	}
}

func TestValidationErrorDetail(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "topic", Message: "invalid topic"},
		{Field: "title", Message: "title is required"},
	}}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusFromError(err))
	assert.Contains(t, err.Error(), "topic: invalid topic")
	assert.Contains(t, err.Error(), "title: title is required")
}
