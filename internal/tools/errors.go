package tools

import (
	"errors"
	"fmt"
)

const (
	CodeToolNotFound   = -32601
	CodeInvalidParams  = -32602
	CodeExecutionError = -32603
)

type ToolError struct {
	Code    int
	Message string
	Err     error
}

func (e *ToolError) Error() string {
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func NewToolNotFoundError(name string) *ToolError {
	return &ToolError{
		Code:    CodeToolNotFound,
		Message: fmt.Sprintf("Tool not found: %s", name),
	}
}

func NewInvalidParamsError(name string, err error) *ToolError {
	return &ToolError{
		Code:    CodeInvalidParams,
		Message: fmt.Sprintf("Invalid params for tool %s: %v", name, err),
		Err:     err,
	}
}

func NewToolExecutionError(name string, err error) *ToolError {
	return &ToolError{
		Code:    CodeExecutionError,
		Message: fmt.Sprintf("Error executing tool %s: %v", name, err),
		Err:     err,
	}
}

// AsToolError returns err as a *ToolError, wrapping plain errors as execution
// failures of the named tool.
func AsToolError(name string, err error) *ToolError {
	var te *ToolError
	if errors.As(err, &te) {
		return te
	}
	return NewToolExecutionError(name, err)
}
