package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/astsu-dev/exapi/internal/transport"
	"github.com/astsu-dev/exapi/pkg/rest"
)

// ProductionURL is the default Bybit API endpoint.
const ProductionURL = "https://api.bybit.com"

// Client is the credential-less Bybit REST client. Private endpoints take
// rest.Credentials per call, so one client can serve multiple accounts
// over a single transport session.
type Client struct {
	transport *transport.Client
	logger    zerolog.Logger
	validate  *validator.Validate
}

// Option is a functional option for configuring the client.
type Option func(*Options)

// Options holds configuration options for the client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// WithBaseURL overrides the API base URL, e.g. for a testnet.
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

// New creates a Bybit client with the given options.
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
		validate:  validator.New(),
	}, nil
}

// Close releases the transport session.
func (c *Client) Close() error {
	return c.transport.Close()
}

// GetSymbols returns the list of tradable symbols.
func (c *Client) GetSymbols(ctx context.Context) ([]SymbolInfo, error) {
	req := rest.NewRequest(http.MethodGet, "/spot/v1/symbols")

	var symbols []SymbolInfo
	if err := c.do(ctx, req, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

// GetTicker returns the book ticker for one symbol: the best bid and ask
// with their quantities.
func (c *Client) GetTicker(ctx context.Context, symbol string) (*BookTicker, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	req := rest.NewRequest(http.MethodGet, "/spot/quote/v1/ticker/book_ticker")
	req.SetQuery("symbol", symbol)

	var ticker BookTicker
	if err := c.do(ctx, req, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// GetTickers returns the book tickers for all symbols.
func (c *Client) GetTickers(ctx context.Context) ([]BookTicker, error) {
	req := rest.NewRequest(http.MethodGet, "/spot/quote/v1/ticker/book_ticker")

	var tickers []BookTicker
	if err := c.do(ctx, req, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

// GetBalances returns the wallet balances for the account identified by
// the credentials.
func (c *Client) GetBalances(ctx context.Context, creds rest.Credentials) (*WalletBalances, error) {
	req := rest.NewRequest(http.MethodGet, "/spot/v1/account")
	signRequest(req, creds, rest.Timestamp())

	var balances WalletBalances
	if err := c.do(ctx, req, &balances); err != nil {
		return nil, err
	}
	return &balances, nil
}

// OrderRequest holds the parameters for placing an order.
// Symbol, Side, Type and Quantity are required; validation runs before
// any network call.
type OrderRequest struct {
	Symbol string    `validate:"required"`
	Side   Side      `validate:"required,oneof=Buy Sell"`
	Type   OrderType `validate:"required"`

	// Quantity is in the base asset, except MARKET Buy orders where
	// Bybit expects the quote asset amount.
	Quantity *apd.Decimal `validate:"required"`
	// Price is required for LIMIT and LIMIT_MAKER orders; the exchange
	// enforces that rule.
	Price       *apd.Decimal
	TimeInForce TimeInForce
	OrderLinkID string
}

// NewOrder places an order on behalf of the account identified by the
// credentials. A rejection surfaces as a *rest.ExchangeError with the
// exchange's ret_code and ret_msg.
func (c *Client) NewOrder(ctx context.Context, creds rest.Credentials, order *OrderRequest) (*Order, error) {
	if err := c.validate.Struct(order); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	form := rest.Params{
		"symbol": order.Symbol,
		"side":   string(order.Side),
		"type":   string(order.Type),
		"qty":    order.Quantity.Text('f'),
	}
	if order.Price != nil {
		form["price"] = order.Price.Text('f')
	}
	if order.TimeInForce != "" {
		form["timeInForce"] = string(order.TimeInForce)
	}
	if order.OrderLinkID != "" {
		form["orderLinkId"] = order.OrderLinkID
	}

	req := rest.NewRequest(http.MethodPost, "/spot/v1/order")
	req.SetForm(form)
	signRequest(req, creds, rest.Timestamp())

	var placed Order
	if err := c.do(ctx, req, &placed); err != nil {
		return nil, err
	}
	return &placed, nil
}

// envelope is the wrapper Bybit puts around every payload.
type envelope struct {
	RetCode int             `json:"ret_code"`
	RetMsg  string          `json:"ret_msg"`
	ExtCode string          `json:"ext_code"`
	ExtInfo string          `json:"ext_info"`
	Result  json.RawMessage `json:"result"`
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

	if env.RetCode != 0 {
		return newError(resp.StatusCode, env.RetCode, env.RetMsg)
	}
	if !resp.IsSuccess() {
		return rest.NewExchangeError(exchangeName, rest.KindServer, resp.StatusCode, env.RetMsg)
	}

	if err := sonic.Unmarshal(env.Result, result); err != nil {
		return rest.NewExchangeError(exchangeName, rest.KindUnknown, resp.StatusCode,
			fmt.Sprintf("malformed result: %v", err))
	}
	return nil
}
