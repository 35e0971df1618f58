package service

import "fmt"

// Op identifies which backend operation failed.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

var opMessages = map[Op]string{
	OpList:   "Failed to fetch tasks. Please check if the backend is running.",
	OpCreate: "Failed to create task. Please try again.",
	OpUpdate: "Failed to update task. Please try again.",
	OpDelete: "Failed to delete task. Please try again.",
}

// OpError is a backend failure collapsed into a fixed user-facing message.
// The underlying cause is kept for logging and errors.Is/As.
type OpError struct {
	Op  Op
	Err error
}

// NewOpError wraps err as a failure of op.
func NewOpError(op Op, err error) *OpError {
	return &OpError{Op: op, Err: err}
}

func (e *OpError) Error() string {
	if msg, ok := opMessages[e.Op]; ok {
		return msg
	}
	return fmt.Sprintf("Failed to %s task. Please try again.", e.Op)
}

func (e *OpError) Unwrap() error { return e.Err }
