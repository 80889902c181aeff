package binance

import (
	"strconv"

	"github.com/astsu-dev/exapi/pkg/rest"
)

const exchangeName = "binance"

// apiError is the error payload Binance returns on non-2xx responses.
type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// errorKind maps a Binance error code to the shared error taxonomy.
func errorKind(code int) rest.ErrorKind {
	switch code {
	case -1003, -1015:
		return rest.KindRateLimit
	case -1002, -1022, -2014, -2015:
		return rest.KindAuth
	case -1121:
		return rest.KindInvalidSymbol
	case -1111, -2011, -2013:
		return rest.KindInvalidOrder
	case -2010:
		return rest.KindInsufficientFunds
	case -1100, -1101, -1102, -1103, -1104, -1105, -1106, -1130, -1131:
		return rest.KindBadRequest
	default:
		return rest.KindUnknown
	}
}

// parseError converts an error response into a *rest.ExchangeError,
// carrying the exchange's code and message verbatim when present.
func parseError(resp *rest.Response) error {
	var apiErr apiError
	if err := resp.Unmarshal(&apiErr); err == nil && apiErr.Code != 0 {
		return rest.NewExchangeErrorWithCode(
			exchangeName,
			errorKind(apiErr.Code),
			resp.StatusCode,
			strconv.Itoa(apiErr.Code),
			apiErr.Msg,
		)
	}

	kind := rest.KindUnknown
	if resp.StatusCode >= 500 {
		kind = rest.KindServer
	}
	return rest.NewExchangeError(exchangeName, kind, resp.StatusCode, string(resp.Body))
}
