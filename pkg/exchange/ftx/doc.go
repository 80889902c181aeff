// Package ftx provides a typed client for the FTX REST API.
//
// FTX wraps every payload in a success/result envelope; a failed request
// carries the error message in the error field.
package ftx
