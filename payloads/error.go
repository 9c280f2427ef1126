package payloads

import (
	"fmt"
)

// ExecutionError reports a failed directive line.
type ExecutionError struct {
	Depth int
	Line  int
	Name  string
	Err   error
}

func (e *ExecutionError) Error() string {
	prefix := "execution: "
	if e.Depth > 0 {
		prefix += fmt.Sprintf("stage %d: ", e.Depth)
	}
	if e.Name == "" {
		return fmt.Sprintf("%sline %d: %v", prefix, e.Line, e.Err)
	}
	return fmt.Sprintf("%sline %d: %s: %v", prefix, e.Line, e.Name, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
