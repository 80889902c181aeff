package ftx

import "context"

// AccountClient binds one set of credentials to a Client, so private
// calls need no per-call keys.
type AccountClient struct {
	client *Client
	creds  Credentials
}

// NewAccountClient creates an FTX client bound to one API key pair.
// Subaccount may be empty for the main account.
func NewAccountClient(apiKey, apiSecret, subaccount string, opts ...Option) (*AccountClient, error) {
	client, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &AccountClient{
		client: client,
		creds:  Credentials{APIKey: apiKey, APISecret: apiSecret, Subaccount: subaccount},
	}, nil
}

// Close releases the underlying transport session.
func (c *AccountClient) Close() error {
	return c.client.Close()
}

// GetMarkets returns the list of all markets.
func (c *AccountClient) GetMarkets(ctx context.Context) ([]Market, error) {
	return c.client.GetMarkets(ctx)
}

// GetMarket returns a single market by name.
func (c *AccountClient) GetMarket(ctx context.Context, name string) (*Market, error) {
	return c.client.GetMarket(ctx, name)
}

// GetOrderbook returns the order book snapshot for a market.
func (c *AccountClient) GetOrderbook(ctx context.Context, market string, depth int) (*Orderbook, error) {
	return c.client.GetOrderbook(ctx, market, depth)
}

// GetBalances returns the bound account's wallet balances.
func (c *AccountClient) GetBalances(ctx context.Context) ([]Balance, error) {
	return c.client.GetBalances(ctx, c.creds)
}
