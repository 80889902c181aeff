package bybit

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astsu-dev/exapi/pkg/rest"
)

func TestSignParams(t *testing.T) {
	creds := rest.Credentials{APIKey: "1tr", APISecret: "API_SECRET"}

	tests := []struct {
		name   string
		params rest.Params
		want   string
	}{
		{
			name:   "no_params",
			params: rest.Params{},
			want:   "5259dde2c1f382c7f0a98cc6ac8ffdb1b2ea15a5adbff68d3c8f639fa290af89",
		},
		{
			name:   "with_symbol",
			params: rest.Params{"symbol": "BTCUSDT"},
			want:   "e2d77eb73ceb5d43600520c542e3fa46fd215c0349addd7b496364220841892e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed := signParams(tt.params, creds, 1234)

			assert.Equal(t, "1tr", signed["api_key"])
			assert.Equal(t, "1234", signed["timestamp"])
			assert.Equal(t, tt.want, signed["sign"])

			// the input set stays untouched
			assert.NotContains(t, tt.params, "sign")
		})
	}
}

func TestSignRequest(t *testing.T) {
	creds := rest.Credentials{APIKey: "1tr", APISecret: "API_SECRET"}

	t.Run("get_signs_query", func(t *testing.T) {
		req := rest.NewRequest(http.MethodGet, "/spot/v1/account")

		signRequest(req, creds, 1234)

		assert.Equal(t, "5259dde2c1f382c7f0a98cc6ac8ffdb1b2ea15a5adbff68d3c8f639fa290af89", req.Query["sign"])
		assert.Nil(t, req.Form)
	})

	t.Run("post_signs_form", func(t *testing.T) {
		req := rest.NewRequest(http.MethodPost, "/spot/v1/order")
		req.SetForm(rest.Params{"symbol": "BTCUSDT"})

		signRequest(req, creds, 1234)

		assert.Equal(t, "e2d77eb73ceb5d43600520c542e3fa46fd215c0349addd7b496364220841892e", req.Form["sign"])
		assert.NotContains(t, req.Query, "sign")
	})
}
