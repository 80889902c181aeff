package ftx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/astsu-dev/exapi/internal/transport"
	"github.com/astsu-dev/exapi/pkg/rest"
)

// ProductionURL is the default FTX API endpoint.
const ProductionURL = "https://ftx.com"

const exchangeName = "ftx"

// Client is the credential-less FTX REST client. Private endpoints take
// Credentials per call, so one client can serve multiple accounts and
// subaccounts over a single transport session.
type Client struct {
	transport *transport.Client
	logger    zerolog.Logger
}

// Option is a functional option for configuring the client.
type Option func(*Options)

// Options holds configuration options for the client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// WithTimeout sets the transport timeout for every request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithLogger sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates an FTX client with the given options.
func New(opts ...Option) (*Client, error) {
	options := &Options{
		BaseURL: ProductionURL,
		Logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	tr, err := transport.NewClient(&transport.Config{
		BaseURL: options.BaseURL,
		Timeout: options.Timeout,
	}, options.Logger)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	return &Client{
		transport: tr,
		logger:    options.Logger,
	}, nil
}

// Close releases the transport session.
func (c *Client) Close() error {
	return c.transport.Close()
}

// GetMarkets returns the list of all markets.
func (c *Client) GetMarkets(ctx context.Context) ([]Market, error) {
	req := rest.NewRequest(http.MethodGet, "/api/markets")

	var markets []Market
	if err := c.do(ctx, req, &markets); err != nil {
		return nil, err
	}
	return markets, nil
}

// GetMarket returns a single market by name, e.g. "BTC/USD".
func (c *Client) GetMarket(ctx context.Context, name string) (*Market, error) {
	if name == "" {
		return nil, fmt.Errorf("market name is required")
	}

	req := rest.NewRequest(http.MethodGet, marketPath(name))

	var market Market
	if err := c.do(ctx, req, &market); err != nil {
		return nil, err
	}
	return &market, nil
}

// GetOrderbook returns the order book snapshot for a market. A depth of
// zero leaves the level count to the exchange default; the maximum FTX
// serves is 100.
func (c *Client) GetOrderbook(ctx context.Context, market string, depth int) (*Orderbook, error) {
	if market == "" {
		return nil, fmt.Errorf("market name is required")
	}

	req := rest.NewRequest(http.MethodGet, marketPath(market)+"/orderbook")
	if depth > 0 {
		req.SetQuery("depth", strconv.Itoa(depth))
	}

	var book Orderbook
	if err := c.do(ctx, req, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBalances returns the wallet balances for the account identified by
// the credentials.
func (c *Client) GetBalances(ctx context.Context, creds Credentials) ([]Balance, error) {
	req := rest.NewRequest(http.MethodGet, "/api/wallet/balances")
	signRequest(req, creds, rest.Timestamp())

	var balances []Balance
	if err := c.do(ctx, req, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// envelope is the wrapper FTX puts around every payload.
type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, req *rest.Request, result any) error {
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return err
	}

	var env envelope
	if err := resp.Unmarshal(&env); err != nil {
		kind := rest.KindUnknown
		if resp.StatusCode >= 500 {
			kind = rest.KindServer
		}
		return rest.NewExchangeError(exchangeName, kind, resp.StatusCode,
			fmt.Sprintf("malformed response: %v", err))
	}

	if !env.Success {
		return newError(resp.StatusCode, env.Error)
	}

	if err := sonic.Unmarshal(env.Result, result); err != nil {
		return rest.NewExchangeError(exchangeName, rest.KindUnknown, resp.StatusCode,
			fmt.Sprintf("malformed result: %v", err))
	}
	return nil
}

// newError builds a *rest.ExchangeError from an FTX error message,
// carried verbatim. Unknown-market errors are classified by prefix; FTX
// reports no numeric codes.
func newError(statusCode int, message string) error {
	kind := rest.KindUnknown
	if strings.HasPrefix(strings.ToLower(message), "no such market") {
		kind = rest.KindInvalidSymbol
	}
	return rest.NewExchangeError(exchangeName, kind, statusCode, message)
}

// marketPath builds the /api/markets/{name} path with the market name
// escaped, since names contain a slash.
func marketPath(name string) string {
	return "/api/markets/" + url.PathEscape(name)
}
