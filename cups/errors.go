package cups

import (
	"errors"
	"fmt"

	"github.com/printkit/ipp"
)

// TransportError wraps a connection-level failure: DNS, TCP connect,
// TLS, or a mid-stream I/O error
type TransportError struct{ Cause error }

func (e *TransportError) Error() string { return fmt.Sprintf("ipp transport: %s", e.Cause) }
func (e *TransportError) Unwrap() error { return e.Cause }

// HTTPError reports a non-200 HTTP response that survived the
// auth-retry logic
type HTTPError struct{ Code int }

func (e *HTTPError) Error() string { return fmt.Sprintf("ipp: http status %d", e.Code) }

// AuthRequiredError is returned when the server still challenges after
// a credentialed retry, or challenges with no credentials configured
type AuthRequiredError struct{}

func (e *AuthRequiredError) Error() string { return "ipp: authentication required" }

// ProtocolError wraps a codec-level failure from the ipp package
type ProtocolError struct{ Cause *ipp.ProtocolError }

func (e *ProtocolError) Error() string { return fmt.Sprintf("ipp protocol: %s", e.Cause) }
func (e *ProtocolError) Unwrap() error { return e.Cause }

// IPPStatusError reports a response whose status-code indicated
// failure (>= 0x0100)
type IPPStatusError struct {
	Status  ipp.Status
	Message string
}

func (e *IPPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ipp status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("ipp status %s", e.Status)
}

// InvalidArgumentError reports a caller-supplied value rejected before
// the request was sent
type InvalidArgumentError struct{ Detail string }

func (e *InvalidArgumentError) Error() string { return "ipp: invalid argument: " + e.Detail }

// TimeoutError reports a deadline exceeded during the HTTP exchange
type TimeoutError struct{ Cause error }

func (e *TimeoutError) Error() string { return fmt.Sprintf("ipp: timeout: %s", e.Cause) }
func (e *TimeoutError) Unwrap() error { return e.Cause }

// classifyStatus turns a decoded response's status code into an error,
// or nil on success (status < 0x0100).
func classifyStatus(msg *ipp.Message) error {
	status := ipp.Status(msg.Code)
	if status < 0x0100 {
		return nil
	}

	message := ""
	for _, attr := range msg.Operation {
		if attr.Name == "status-message" && len(attr.Values) > 0 {
			message = attr.Values[0].V.String()
		}
	}

	return &IPPStatusError{Status: status, Message: message}
}

// classifyTransportErr maps a transport.Exchange error into the
// taxonomy exposed by this package
func classifyTransportErr(err error) error {
	if err == nil {
		return nil
	}

	var pe *ipp.ProtocolError
	if errors.As(err, &pe) {
		return &ProtocolError{Cause: pe}
	}

	if isHTTPError(err) {
		return &HTTPError{Code: httpErrorCode(err)}
	}

	if isAuthRequired(err) {
		return &AuthRequiredError{}
	}

	if isTimeout(err) {
		return &TimeoutError{Cause: err}
	}

	return &TransportError{Cause: err}
}
