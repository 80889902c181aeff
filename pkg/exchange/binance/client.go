package binance

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/astsu-dev/exapi/internal/transport"
	"github.com/astsu-dev/exapi/pkg/rest"
)

// ProductionURL is the default Binance spot API endpoint.
const ProductionURL = "https://api.binance.com"

// Client is the credential-less Binance REST client. Public endpoints need
// no keys; private endpoints take rest.Credentials per call, so one client
// can serve any number of accounts over a single transport session.
type Client struct {
	transport  *transport.Client
	logger     zerolog.Logger
	validate   *validator.Validate
	recvWindow time.Duration
}

// Option is a functional option for configuring the client.
type Option func(*Options)

// Options holds configuration options for the client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Logger     zerolog.Logger
	RecvWindow time.Duration
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

// WithRecvWindow sets the recvWindow sent with signed requests.
// Binance rejects values above one minute.
func WithRecvWindow(d time.Duration) Option {
	return func(o *Options) {
		o.RecvWindow = d
	}
}

// New creates a Binance client with the given options.
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
		transport:  tr,
		logger:     options.Logger,
		validate:   validator.New(),
		recvWindow: options.RecvWindow,
	}, nil
}

// Close releases the transport session.
func (c *Client) Close() error {
	return c.transport.Close()
}

// GetTicker returns the order book ticker for one symbol: the best bid
// and ask with their quantities.
func (c *Client) GetTicker(ctx context.Context, symbol string) (*BookTicker, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	req := rest.NewRequest(http.MethodGet, "/api/v3/ticker/bookTicker")
	req.SetQuery("symbol", symbol)

	var ticker BookTicker
	if err := c.do(ctx, req, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// GetTickers returns the order book tickers for all symbols.
func (c *Client) GetTickers(ctx context.Context) ([]BookTicker, error) {
	req := rest.NewRequest(http.MethodGet, "/api/v3/ticker/bookTicker")

	var tickers []BookTicker
	if err := c.do(ctx, req, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

// GetExchangeInfo returns static exchange metadata. With no arguments it
// covers every symbol; with one or more symbols the response is filtered
// to those pairs.
func (c *Client) GetExchangeInfo(ctx context.Context, symbols ...string) (*ExchangeInfo, error) {
	req := rest.NewRequest(http.MethodGet, "/api/v3/exchangeInfo")

	switch len(symbols) {
	case 0:
	case 1:
		req.SetQuery("symbol", symbols[0])
	default:
		req.SetQuery("symbols", symbolsParam(symbols))
	}

	var info ExchangeInfo
	if err := c.do(ctx, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetAccountInfo returns balances, commissions and permissions for the
// account identified by the credentials.
func (c *Client) GetAccountInfo(ctx context.Context, creds rest.Credentials) (*AccountInfo, error) {
	req := rest.NewRequest(http.MethodGet, "/api/v3/account")
	c.sign(req, creds)

	var info AccountInfo
	if err := c.do(ctx, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// OrderRequest holds the parameters for placing an order.
// Symbol, Side, Type and a quantity are required; validation runs before
// any network call.
type OrderRequest struct {
	Symbol string    `validate:"required"`
	Side   Side      `validate:"required,oneof=BUY SELL"`
	Type   OrderType `validate:"required"`

	// Quantity is the order size in the base asset. For MARKET orders
	// QuoteOrderQty may be given instead.
	Quantity      *apd.Decimal `validate:"required_without=QuoteOrderQty"`
	QuoteOrderQty *apd.Decimal
	Price         *apd.Decimal
	StopPrice     *apd.Decimal
	IcebergQty    *apd.Decimal
	TimeInForce   TimeInForce
	ClientOrderID string
	ResponseType  ResponseType
}

// NewOrder places an order on behalf of the account identified by the
// credentials. The exchange's own validation governs acceptance; a
// rejection surfaces as a *rest.ExchangeError with the exchange's code
// and message.
func (c *Client) NewOrder(ctx context.Context, creds rest.Credentials, order *OrderRequest) (*OrderResponse, error) {
	if err := c.validate.Struct(order); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	req := rest.NewRequest(http.MethodPost, "/api/v3/order")
	req.SetQuery("symbol", order.Symbol)
	req.SetQuery("side", string(order.Side))
	req.SetQuery("type", string(order.Type))

	if order.Quantity != nil {
		req.SetQuery("quantity", order.Quantity.Text('f'))
	}
	if order.QuoteOrderQty != nil {
		req.SetQuery("quoteOrderQty", order.QuoteOrderQty.Text('f'))
	}
	if order.Price != nil {
		req.SetQuery("price", order.Price.Text('f'))
	}
	if order.StopPrice != nil {
		req.SetQuery("stopPrice", order.StopPrice.Text('f'))
	}
	if order.IcebergQty != nil {
		req.SetQuery("icebergQty", order.IcebergQty.Text('f'))
	}
	if order.TimeInForce != "" {
		req.SetQuery("timeInForce", string(order.TimeInForce))
	}
	if order.ClientOrderID != "" {
		req.SetQuery("newClientOrderId", order.ClientOrderID)
	}
	if order.ResponseType != "" {
		req.SetQuery("newOrderRespType", string(order.ResponseType))
	}

	c.sign(req, creds)

	var resp OrderResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) sign(req *rest.Request, creds rest.Credentials) {
	if c.recvWindow > 0 {
		req.SetQuery("recvWindow", strconv.FormatInt(c.recvWindow.Milliseconds(), 10))
	}
	signRequest(req, creds, rest.Timestamp())
}

func (c *Client) do(ctx context.Context, req *rest.Request, result any) error {
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return parseError(resp)
	}

	if err := resp.Unmarshal(result); err != nil {
		return rest.NewExchangeError(exchangeName, rest.KindUnknown, resp.StatusCode,
			fmt.Sprintf("malformed response: %v", err))
	}
	return nil
}

// symbolsParam renders a symbol list the way the exchangeInfo endpoint
// expects it: a JSON array without spaces, e.g. ["BTCUSDT","ETHUSDT"].
func symbolsParam(symbols []string) string {
	quoted := make([]string, len(symbols))
	for i, s := range symbols {
		quoted[i] = `"` + s + `"`
	}
	return "[" + strings.Join(quoted, ",") + "]"
}
