package binance

import (
	"context"

	"github.com/astsu-dev/exapi/pkg/rest"
)

// AccountClient binds one set of credentials to a Client, so private
// calls need no per-call keys. It is the single-account convenience
// wrapper around Client.
type AccountClient struct {
	client *Client
	creds  rest.Credentials
}

// NewAccountClient creates a Binance client bound to one API key pair.
func NewAccountClient(apiKey, apiSecret string, opts ...Option) (*AccountClient, error) {
	client, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &AccountClient{
		client: client,
		creds:  rest.Credentials{APIKey: apiKey, APISecret: apiSecret},
	}, nil
}

// Close releases the underlying transport session.
func (c *AccountClient) Close() error {
	return c.client.Close()
}

// GetTicker returns the order book ticker for one symbol.
func (c *AccountClient) GetTicker(ctx context.Context, symbol string) (*BookTicker, error) {
	return c.client.GetTicker(ctx, symbol)
}

// GetTickers returns the order book tickers for all symbols.
func (c *AccountClient) GetTickers(ctx context.Context) ([]BookTicker, error) {
	return c.client.GetTickers(ctx)
}

// GetExchangeInfo returns static exchange metadata, optionally filtered
// to the given symbols.
func (c *AccountClient) GetExchangeInfo(ctx context.Context, symbols ...string) (*ExchangeInfo, error) {
	return c.client.GetExchangeInfo(ctx, symbols...)
}

// GetAccountInfo returns the bound account's balances and permissions.
func (c *AccountClient) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	return c.client.GetAccountInfo(ctx, c.creds)
}

// NewOrder places an order for the bound account.
func (c *AccountClient) NewOrder(ctx context.Context, order *OrderRequest) (*OrderResponse, error) {
	return c.client.NewOrder(ctx, c.creds, order)
}
