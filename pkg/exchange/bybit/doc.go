// Package bybit provides a typed client for the Bybit spot REST API (v1).
//
// Bybit wraps every payload in a ret_code/ret_msg envelope; a non-zero
// ret_code is an exchange error even when the HTTP status is 200.
package bybit
