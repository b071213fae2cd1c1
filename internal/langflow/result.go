package langflow

import (
	"fmt"
)

// Result is the outcome of one remote call: a decoded body on success or a
// Failure. Exactly one of the two is set.
type Result struct {
	body    any
	failure *Failure
}

// Success wraps a decoded response body.
func Success(body any) Result {
	return Result{body: body}
}

// Fail wraps a failure.
func Fail(f *Failure) Result {
	return Result{failure: f}
}

// Failed reports whether the call failed.
func (r Result) Failed() bool {
	return r.failure != nil
}

// Failure returns the failure, or nil for a successful result.
func (r Result) Failure() *Failure {
	return r.failure
}

// Body returns the decoded body. It is nil for failures.
func (r Result) Body() any {
	return r.body
}

// Object returns the body as a JSON object when it is one.
func (r Result) Object() (map[string]any, bool) {
	m, ok := r.body.(map[string]any)
	return m, ok
}

// Failure describes a call that did not produce a usable response.
// StatusCode is 0 when no HTTP response was received.
type Failure struct {
	Message    string
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// HasStatus reports whether the remote answered with an HTTP status.
func (f *Failure) HasStatus() bool {
	return f.StatusCode != 0
}

// TransportError is a network level failure: DNS, connect, timeout, cancellation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteAPIError is a non-2xx answer from Langflow with its raw body.
type RemoteAPIError struct {
	StatusCode int
	Body       string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

func transportFailure(err error) Result {
	te := &TransportError{Err: err}
	return Fail(&Failure{Message: te.Error(), Err: te})
}

func remoteFailure(status int, body string) Result {
	re := &RemoteAPIError{StatusCode: status, Body: body}
	return Fail(&Failure{Message: re.Error(), StatusCode: status, Err: re})
}
