package cli

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrFindings signals that analysis completed but found critical errors
// or security issues. main translates any error into exit code 1; this
// one must not be printed as a failure, the report already said it all.
var ErrFindings = errors.New("analysis found critical errors or security issues")

// CLIError is a structured error that has already been emitted to the
// user in the requested format; main must not print it again.
type CLIError struct {
	Code    string
	Message string
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// outputError normalizes error emission across commands, respecting
// json vs text formats so agents always get machine-readable failures.
func outputError(globals *Globals, code, message string) error {
	if globals != nil && globals.Format == "json" {
		payload := map[string]interface{}{
			"type":          "error",
			"schemaVersion": 1,
			"code":          code,
			"message":       message,
		}
		json.NewEncoder(globals.Stdout).Encode(payload)
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return &CLIError{Code: code, Message: message}
}
