// Package rest contains the request, response, credential and error model
// shared by all exchange clients.
package rest

import (
	"maps"
	"net/url"
)

// Params holds query or form parameters for an exchange request.
// Exchange REST APIs accept every parameter as a string.
type Params map[string]string

// Encode returns the parameters as a URL-encoded string with keys sorted.
// The encoded form is what request signers operate on.
func (p Params) Encode() string {
	values := make(url.Values, len(p))
	for k, v := range p {
		values.Set(k, v)
	}
	return values.Encode()
}

// Clone returns a shallow copy of the parameters.
func (p Params) Clone() Params {
	dst := make(Params, len(p))
	maps.Copy(dst, p)
	return dst
}

// Request describes a single exchange HTTP request before transmission.
// Body carries raw JSON bytes; Form carries URL-encoded form fields.
// At most one of Body and Form is set.
type Request struct {
	Method  string
	Path    string
	Query   Params
	Form    Params
	Body    []byte
	Headers map[string]string
}

// NewRequest creates a request for the given method and path.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Query:   make(Params),
		Headers: make(map[string]string),
	}
}

// SetQuery sets a single query parameter and returns the request for chaining.
func (r *Request) SetQuery(key, value string) *Request {
	if r.Query == nil {
		r.Query = make(Params)
	}
	r.Query[key] = value
	return r
}

// SetQueryParams merges the given parameters into the query.
func (r *Request) SetQueryParams(params Params) *Request {
	if r.Query == nil {
		r.Query = make(Params)
	}
	maps.Copy(r.Query, params)
	return r
}

// SetForm sets the URL-encoded form body.
func (r *Request) SetForm(form Params) *Request {
	r.Form = form
	return r
}

// SetBody sets the raw JSON body.
func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

// SetHeader sets a single header and returns the request for chaining.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}
