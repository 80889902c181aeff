package bybit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/astsu-dev/exapi/pkg/rest"
)

// signRequest signs a request with HMAC-SHA256. Bybit signs the sorted,
// URL-encoded parameter set extended with api_key and timestamp; for GET
// requests the signed set travels in the query string, for POST in the
// form body.
func signRequest(req *rest.Request, creds rest.Credentials, timestamp int64) {
	if req.Method == http.MethodGet {
		req.Query = signParams(req.Query, creds, timestamp)
		return
	}
	req.Form = signParams(req.Form, creds, timestamp)
}

// signParams returns a copy of params extended with api_key, timestamp
// and the sign field.
func signParams(params rest.Params, creds rest.Credentials, timestamp int64) rest.Params {
	signed := params.Clone()
	signed["api_key"] = creds.APIKey
	signed["timestamp"] = strconv.FormatInt(timestamp, 10)
	signed["sign"] = signature(creds.APISecret, signed.Encode())
	return signed
}

// signature returns the hex HMAC-SHA256 of payload under the secret key.
func signature(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
