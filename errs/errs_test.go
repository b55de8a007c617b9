package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("blog not found").StatusCode)
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("bad").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("boom").StatusCode)
	assert.Equal(t, http.StatusBadRequest, NewMissingRequiredFieldError("title").StatusCode)
	assert.Equal(t, http.StatusBadRequest, NewUnknownServiceError("coastguard").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewDispatchError("Police", errors.New("x")).StatusCode)
}

func TestApiErrUnwrap(t *testing.T) {
	err := NewMissingRequiredFieldError("title")
	assert.True(t, errors.Is(err, ErrMissingRequiredField))
	assert.True(t, IsMissingRequiredFieldError(err))

	var apiErr *ApiErr
	assert.True(t, errors.As(error(err), &apiErr))
}

func TestApiErrMessageIncludesDetails(t *testing.T) {
	err := NewInvalidFieldError("category", "must be one of the supported blog categories")
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "supported blog categories")
	assert.Equal(t, "category", err.Field)
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDispatchError("Ambulance", cause)
	assert.Contains(t, err.GetFullError(), "Ambulance")
	assert.Contains(t, err.GetFullError(), "connection refused")
}

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "blog_posts_pkey"`), http.StatusConflict},
		{"check constraint", errors.New(`new row violates check constraint "chk_blog_posts_category"`), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "blog post", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
		})
	}
}

func TestNewDatabaseErrorWrapsSentinels(t *testing.T) {
	dup := NewDatabaseError("create", "blog post", errors.New(`duplicate key value violates unique constraint "blog_posts_pkey"`))
	assert.True(t, errors.Is(dup, ErrAlreadyExists))
	assert.Contains(t, dup.Error(), "blog post")

	missing := NewDatabaseError("find", "appointment", errors.New("record not found"))
	assert.True(t, IsNotFound(missing))
	assert.Contains(t, missing.Error(), "appointment")
}
