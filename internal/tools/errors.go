package tools

import "fmt"

// ArgumentError is a caller contract violation: a required argument is
// missing or an argument has the wrong shape.
type ArgumentError struct {
	Tool     string
	Argument string
	Reason   string
}

func (e *ArgumentError) Error() string {
	if e.Argument == "" {
		return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("invalid argument %q for %s: %s", e.Argument, e.Tool, e.Reason)
}

// MissingArgument reports an absent or empty required argument.
func MissingArgument(tool, argument string) *ArgumentError {
	return &ArgumentError{Tool: tool, Argument: argument, Reason: "is required"}
}
