package ftx

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astsu-dev/exapi/pkg/rest"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(WithBaseURL(server.URL))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

const marketBody = `{
	"name": "BTC/USD",
	"baseCurrency": "BTC",
	"quoteCurrency": "USD",
	"quoteVolume24h": 28914.76,
	"change1h": 0.012,
	"change24h": 0.0299,
	"changeBod": 0.0156,
	"highLeverageFeeExempt": false,
	"minProvideSize": 0.001,
	"type": "spot",
	"underlying": null,
	"enabled": true,
	"ask": 3949.25,
	"bid": 3949,
	"last": 3949.00,
	"postOnly": false,
	"price": 3949.25,
	"priceIncrement": 0.25,
	"sizeIncrement": 0.0001,
	"restricted": false,
	"volumeUsd24h": 28914.76
}`

func TestClient_GetMarkets(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/markets", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "result": [` + marketBody + `]}`))
	}))

	markets, err := client.GetMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, "BTC/USD", markets[0].Name)
	assert.Equal(t, MarketSpot, markets[0].Type)
	assert.Equal(t, 3949.25, markets[0].Ask)
}

func TestClient_GetMarket(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the slash in the market name stays escaped in the path
		assert.Equal(t, "/api/markets/BTC%2FUSD", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"success": true, "result": ` + marketBody + `}`))
	}))

	market, err := client.GetMarket(context.Background(), "BTC/USD")
	require.NoError(t, err)
	assert.Equal(t, "BTC/USD", market.Name)
	assert.Equal(t, "BTC", market.BaseCurrency)
	assert.Equal(t, 0.25, market.PriceIncrement)
}

func TestClient_GetMarket_EmptyName(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("request must not reach the network")
	}))

	_, err := client.GetMarket(context.Background(), "")
	assert.Error(t, err)
}

func TestClient_GetOrderbook(t *testing.T) {
	tests := []struct {
		name      string
		depth     int
		wantDepth string
	}{
		{"default_depth", 0, ""},
		{"explicit_depth", 5, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/markets/BTC%2FUSD/orderbook", r.URL.EscapedPath())
				assert.Equal(t, tt.wantDepth, r.URL.Query().Get("depth"))
				_, _ = w.Write([]byte(`{
					"success": true,
					"result": {
						"bids": [[3949.0, 10.854], [3948.75, 0.954]],
						"asks": [[3949.25, 5.153]]
					}
				}`))
			}))

			book, err := client.GetOrderbook(context.Background(), "BTC/USD", tt.depth)
			require.NoError(t, err)
			require.Len(t, book.Bids, 2)
			require.Len(t, book.Asks, 1)
			assert.Equal(t, 3949.0, book.Bids[0].Price())
			assert.Equal(t, 10.854, book.Bids[0].Size())
			assert.Equal(t, 3949.25, book.Asks[0].Price())
		})
	}
}

// verifyHeaders recomputes the request signature the way the exchange
// does: HMAC-SHA256 over "{ts}{METHOD}{path}" plus the body.
func verifyHeaders(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "API_KEY", r.Header.Get("FTX-KEY"))
	ts := r.Header.Get("FTX-TS")
	assert.NotEmpty(t, ts)

	mac := hmac.New(sha256.New, []byte("API_SECRET"))
	mac.Write([]byte(ts + r.Method + r.URL.Path))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get("FTX-SIGN"))
}

const balancesBody = `{
	"success": true,
	"result": [{
		"coin": "USDTBEAR",
		"free": 2320.2,
		"spotBorrow": 0.0,
		"total": 2340.2,
		"usdValue": 2340.2,
		"availableWithoutBorrow": 2320.2
	}]
}`

func TestClient_GetBalances(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wallet/balances", r.URL.Path)
		verifyHeaders(t, r)
		assert.Empty(t, r.Header.Get("FTX-SUBACCOUNT"))
		_, _ = w.Write([]byte(balancesBody))
	}))

	creds := Credentials{APIKey: "API_KEY", APISecret: "API_SECRET"}
	balances, err := client.GetBalances(context.Background(), creds)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "USDTBEAR", balances[0].Coin)
	assert.Equal(t, 2320.2, balances[0].Free)
	assert.Equal(t, 2340.2, balances[0].Total)
}

func TestAccountClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verifyHeaders(t, r)
		assert.Equal(t, "sub1", r.Header.Get("FTX-SUBACCOUNT"))
		_, _ = w.Write([]byte(balancesBody))
	}))
	defer server.Close()

	client, err := NewAccountClient("API_KEY", "API_SECRET", "sub1", WithBaseURL(server.URL))
	require.NoError(t, err)
	defer client.Close()

	balances, err := client.GetBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "USDTBEAR", balances[0].Coin)
}

func TestClient_NoSuchMarket(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "error": "No such market: INVALID/MARKET"}`))
	}))

	_, err := client.GetMarket(context.Background(), "INVALID/MARKET")
	require.Error(t, err)
	assert.True(t, rest.IsInvalidSymbol(err))

	var exErr *rest.ExchangeError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "ftx", exErr.Exchange)
	assert.Equal(t, "No such market: INVALID/MARKET", exErr.Message)
	assert.Empty(t, exErr.Code)
}
