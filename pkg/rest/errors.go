package rest

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes an exchange-reported error for programmatic handling.
type ErrorKind int

// Error kind constants. The zero value is KindUnknown.
const (
	// KindUnknown indicates an unclassified exchange error.
	KindUnknown ErrorKind = iota
	// KindAuth indicates invalid or missing API credentials.
	KindAuth
	// KindInvalidSymbol indicates the trading pair does not exist on the exchange.
	KindInvalidSymbol
	// KindBadRequest indicates invalid request parameters.
	KindBadRequest
	// KindInvalidOrder indicates the order violates exchange rules
	// (price, quantity or precision limits).
	KindInvalidOrder
	// KindInsufficientFunds indicates the account lacks the required balance.
	KindInsufficientFunds
	// KindRateLimit indicates the exchange rejected the request for rate limiting.
	KindRateLimit
	// KindServer indicates a server-side exchange error.
	KindServer
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	return [...]string{
		"UNKNOWN",
		"AUTH",
		"INVALID_SYMBOL",
		"BAD_REQUEST",
		"INVALID_ORDER",
		"INSUFFICIENT_FUNDS",
		"RATE_LIMIT",
		"SERVER",
	}[k]
}

// Sentinel errors for client state.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// TransportError reports a failure to complete the HTTP exchange:
// the host could not be reached, the connection broke, or the request
// timed out. The exchange never produced a response.
type TransportError struct {
	// Op is the HTTP method of the failed request.
	Op string
	// URL is the request URL.
	URL string
	// Timeout reports whether the failure was a deadline or timeout.
	Timeout bool
	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s %s: timeout: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExchangeError reports an error response from an exchange: a non-2xx
// status or an error payload inside a 2xx envelope. Code and Message
// carry the exchange's own error code and text verbatim.
type ExchangeError struct {
	// Exchange identifies which exchange returned the error.
	Exchange string
	// Kind categorizes the error.
	Kind ErrorKind
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Code is the exchange-specific error code, verbatim.
	Code string
	// Message is the exchange-reported error message, verbatim.
	Message string
}

// Error implements the error interface.
func (e *ExchangeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (%d/%s): %s",
			e.Exchange, e.Kind, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (%d): %s",
		e.Exchange, e.Kind, e.StatusCode, e.Message)
}

// NewExchangeError creates an ExchangeError without an exchange error code.
func NewExchangeError(exchange string, kind ErrorKind, statusCode int, message string) *ExchangeError {
	return &ExchangeError{
		Exchange:   exchange,
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewExchangeErrorWithCode creates an ExchangeError carrying the exchange's
// error code verbatim.
func NewExchangeErrorWithCode(exchange string, kind ErrorKind, statusCode int, code, message string) *ExchangeError {
	return &ExchangeError{
		Exchange:   exchange,
		Kind:       kind,
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// IsTransportError returns true if the error is a transport failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsTimeout returns true if the error is a transport timeout.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Timeout
}

func kindIs(err error, kind ErrorKind) bool {
	var ee *ExchangeError
	return errors.As(err, &ee) && ee.Kind == kind
}

// IsAuthError returns true if the exchange rejected the request credentials.
func IsAuthError(err error) bool {
	return kindIs(err, KindAuth)
}

// IsInvalidSymbol returns true if the requested trading pair does not exist.
func IsInvalidSymbol(err error) bool {
	return kindIs(err, KindInvalidSymbol)
}

// IsInvalidOrder returns true if the order violated exchange rules.
func IsInvalidOrder(err error) bool {
	return kindIs(err, KindInvalidOrder)
}

// IsInsufficientFunds returns true if the account balance was too low.
func IsInsufficientFunds(err error) bool {
	return kindIs(err, KindInsufficientFunds)
}

// IsRateLimited returns true if the exchange reported a rate limit violation.
func IsRateLimited(err error) bool {
	return kindIs(err, KindRateLimit)
}
