package ftx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astsu-dev/exapi/pkg/rest"
)

func TestSignature(t *testing.T) {
	got := signature("API_SECRET", 10, http.MethodPost, "/orders", []byte("{}"))
	assert.Equal(t, "02e0fbe922c0c48ac2ff60d4c8022d0e109b4bf5a4c1065c2fd8e5b3062146e1", got)
}

func TestSignRequest(t *testing.T) {
	creds := Credentials{APIKey: "API_KEY", APISecret: "API_SECRET"}

	req := rest.NewRequest(http.MethodPost, "/orders")
	req.SetBody([]byte("{}"))

	signRequest(req, creds, 10)

	assert.Equal(t, "API_KEY", req.Headers["FTX-KEY"])
	assert.Equal(t, "10", req.Headers["FTX-TS"])
	assert.Equal(t, "02e0fbe922c0c48ac2ff60d4c8022d0e109b4bf5a4c1065c2fd8e5b3062146e1", req.Headers["FTX-SIGN"])
	assert.NotContains(t, req.Headers, "FTX-SUBACCOUNT")
}

func TestSignRequest_Subaccount(t *testing.T) {
	creds := Credentials{APIKey: "API_KEY", APISecret: "API_SECRET", Subaccount: "sub1"}

	req := rest.NewRequest(http.MethodGet, "/api/positions")
	signRequest(req, creds, 10)

	assert.Equal(t, "sub1", req.Headers["FTX-SUBACCOUNT"])
}
