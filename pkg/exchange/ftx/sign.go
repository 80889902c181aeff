package ftx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/astsu-dev/exapi/pkg/rest"
)

// Credentials holds the FTX API key pair and an optional subaccount name.
type Credentials struct {
	APIKey     string
	APISecret  string
	Subaccount string
}

// signRequest signs a request with HMAC-SHA256. FTX signs the
// concatenation of the millisecond timestamp, the HTTP method, the
// request path and the raw JSON body; the signature travels in headers.
func signRequest(req *rest.Request, creds Credentials, timestamp int64) {
	ts := strconv.FormatInt(timestamp, 10)
	req.SetHeader("FTX-KEY", creds.APIKey)
	req.SetHeader("FTX-SIGN", signature(creds.APISecret, timestamp, req.Method, req.Path, req.Body))
	req.SetHeader("FTX-TS", ts)
	if creds.Subaccount != "" {
		req.SetHeader("FTX-SUBACCOUNT", creds.Subaccount)
	}
}

// signature returns the hex HMAC-SHA256 over "{ts}{METHOD}{path}{body}".
func signature(secret string, timestamp int64, method, path string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d%s%s", timestamp, method, path)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
