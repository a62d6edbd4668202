package util

import (
	"errors"
	"fmt"

	"github.com/Raam751/ClassPulse/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// NotFoundError marks a lookup miss by id or unique field. Controllers map
// it to 404.
type NotFoundError struct {
	Resource string
	Field    string
	Value    interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func NewNotFound(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: "id", Value: id}
}

func NewNotFoundBy(resource, field string, value interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// InvalidStateError is raised when the owning session's lifecycle state
// forbids an operation. Status is the state observed at decision time so the
// message can surface it. Controllers map it to 400.
type InvalidStateError struct {
	Message string
	Status  model.SessionStatus
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

func NewInvalidState(message string, status model.SessionStatus) *InvalidStateError {
	return &InvalidStateError{Message: message, Status: status}
}

// ConflictError signals a uniqueness violation: duplicate response, duplicate
// email. Controllers map it to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
