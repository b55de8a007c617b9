package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Alert dispatch errors
var (
	ErrDispatchFailed = errors.New("alert dispatch failed")
	ErrUnknownService = errors.New("unknown emergency service")
)

// NewUnknownServiceError rejects a service key that is not in the
// recipient directory. Raised before any send is attempted.
func NewUnknownServiceError(key string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownService,
		Details:    fmt.Sprintf("Unknown emergency service: %s", key),
		Field:      "services",
	}
}

// NewDispatchError wraps a failed send. Any single failure fails the batch.
func NewDispatchError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDispatchFailed,
		Details:    fmt.Sprintf("Failed to alert %s", service),
		Cause:      cause,
	}
}

func IsDispatchError(err error) bool {
	return errors.Is(err, ErrDispatchFailed)
}

func IsUnknownServiceError(err error) bool {
	return errors.Is(err, ErrUnknownService)
}
