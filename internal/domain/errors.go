package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidPageRequest is returned when a page index is negative or a page size is not positive
var ErrInvalidPageRequest = errors.New("invalid page request")

// NotFoundError reports that no product exists for ID
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("프로덕트를 찾을 수 없습니다 ID : %d", e.ID)
}

// StatusCode is the HTTP status carried by the error
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// ValidationError carries the message of the first failed input constraint
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusCode is the HTTP status carried by the error
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}
