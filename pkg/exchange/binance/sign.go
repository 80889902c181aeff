package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/astsu-dev/exapi/pkg/rest"
)

// signRequest signs a request with HMAC-SHA256. All parameters must
// already be in the query string; the signature covers the encoded query
// including the timestamp, and the API key travels in the X-MBX-APIKEY
// header.
func signRequest(req *rest.Request, creds rest.Credentials, timestamp int64) {
	req.SetQuery("timestamp", strconv.FormatInt(timestamp, 10))
	req.SetQuery("signature", signature(creds.APISecret, req.Query.Encode()))
	req.SetHeader("X-MBX-APIKEY", creds.APIKey)
}

// signature returns the hex HMAC-SHA256 of payload under the secret key.
func signature(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
