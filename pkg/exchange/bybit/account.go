package bybit

import (
	"context"

	"github.com/astsu-dev/exapi/pkg/rest"
)

// AccountClient binds one set of credentials to a Client, so private
// calls need no per-call keys.
type AccountClient struct {
	client *Client
	creds  rest.Credentials
}

// NewAccountClient creates a Bybit client bound to one API key pair.
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

// GetSymbols returns the list of tradable symbols.
func (c *AccountClient) GetSymbols(ctx context.Context) ([]SymbolInfo, error) {
	return c.client.GetSymbols(ctx)
}

// GetTicker returns the book ticker for one symbol.
func (c *AccountClient) GetTicker(ctx context.Context, symbol string) (*BookTicker, error) {
	return c.client.GetTicker(ctx, symbol)
}

// GetTickers returns the book tickers for all symbols.
func (c *AccountClient) GetTickers(ctx context.Context) ([]BookTicker, error) {
	return c.client.GetTickers(ctx)
}

// GetBalances returns the bound account's wallet balances.
func (c *AccountClient) GetBalances(ctx context.Context) (*WalletBalances, error) {
	return c.client.GetBalances(ctx, c.creds)
}

// NewOrder places an order for the bound account.
func (c *AccountClient) NewOrder(ctx context.Context, order *OrderRequest) (*Order, error) {
	return c.client.NewOrder(ctx, c.creds, order)
}
