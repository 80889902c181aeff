package rest

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Response is the raw result of one exchange HTTP request.
type Response struct {
	// StatusCode is the HTTP status code returned by the exchange.
	StatusCode int

	// Headers contains the response headers, first value per key.
	Headers map[string]string

	// Body contains the raw response body bytes.
	Body []byte
}

// IsSuccess returns true if the status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}
