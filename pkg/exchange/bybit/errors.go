package bybit

import (
	"strconv"
	"strings"

	"github.com/astsu-dev/exapi/pkg/rest"
)

const exchangeName = "bybit"

// errorKind maps a Bybit ret_code to the shared error taxonomy.
// The -1130 invalid-parameter code is refined to an invalid symbol when
// the message names the symbol parameter; the exchange reuses one code
// for both conditions.
func errorKind(code int, msg string) rest.ErrorKind {
	switch code {
	case -1002, -1022, -2014, -2015:
		return rest.KindAuth
	case -1121, -100010, -100011:
		return rest.KindInvalidSymbol
	case -1130:
		if strings.Contains(msg, "'symbol' is not valid") {
			return rest.KindInvalidSymbol
		}
		return rest.KindBadRequest
	case -1131:
		return rest.KindInsufficientFunds
	case -1132, -1133, -1134, -1135, -1136, -1137:
		return rest.KindInvalidOrder
	default:
		return rest.KindUnknown
	}
}

// newError builds a *rest.ExchangeError from an envelope's ret_code and
// ret_msg, carried verbatim.
func newError(statusCode, retCode int, retMsg string) error {
	return rest.NewExchangeErrorWithCode(
		exchangeName,
		errorKind(retCode, retMsg),
		statusCode,
		strconv.Itoa(retCode),
		retMsg,
	)
}
