package rest

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Timestamp returns the current time as a Unix millisecond timestamp.
// Exchange signatures are computed over this value.
func Timestamp() int64 {
	return time.Now().UnixMilli()
}

// ClientOrderID generates a random client order identifier suitable for
// Binance newClientOrderId and Bybit orderLinkId fields.
func ClientOrderID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
