package prof

import (
	"fmt"
	"strings"
)

// HTTPError reports a transport-level failure: the request never completed
// or the response body could not be read.
type HTTPError struct {
	Err error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http request failed: %v", e.Err)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// SerializationError reports malformed JSON in a context where valid JSON
// was mandatory, either while encoding a request or decoding a response.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// ServiceError reports a failure announced by the service itself, or a
// response whose shape the client could not recognize.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("prof service error: %s", e.Message)
}

// AuthError reports that an authenticated operation was attempted without
// a configured signer.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// NotFoundError reports an HTTP 404 for a profile, or a missing image.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Message)
}

// ValidationError reports an HTTP 400 carrying a structured list of
// field-level messages from the service.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: [%s]", strings.Join(e.Errors, ", "))
}
