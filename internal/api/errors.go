package api

import (
	"fmt"
	"strings"
)

// MissingParameterError is returned when a path template still has
// placeholders after resolution. It is raised before any request is sent.
type MissingParameterError struct {
	Template string
	Missing  []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing path parameter(s) %s for %s",
		strings.Join(e.Missing, ", "), e.Template)
}

// HTTPError covers non-2xx responses, transport failures and undecodable
// bodies. StatusCode is 0 when no response was received.
type HTTPError struct {
	Operation  Operation
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *HTTPError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
	}
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// OperationError reports an unknown operation or a method mismatch
type OperationError struct {
	Operation Operation
	Message   string
}

func (e *OperationError) Error() string {
	return e.Message
}
