package bybit

// Side is the direction of an order. Bybit uses capitalized values.
type Side string

// Order sides.
const (
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

// OrderType defines how an order executes.
type OrderType string

// Order types accepted by the spot API.
const (
	TypeLimit      OrderType = "LIMIT"
	TypeMarket     OrderType = "MARKET"
	TypeLimitMaker OrderType = "LIMIT_MAKER"
)

// TimeInForce defines how long an order remains active.
type TimeInForce string

// Time in force values.
const (
	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

// OrderStatus is the lifecycle state of an order as reported by Bybit.
type OrderStatus string

// Order statuses.
const (
	StatusNew             OrderStatus = "NEW"
	StatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	StatusFilled          OrderStatus = "FILLED"
	StatusCanceled        OrderStatus = "CANCELED"
	StatusPendingCancel   OrderStatus = "PENDING_CANCEL"
	StatusPendingNew      OrderStatus = "PENDING_NEW"
	StatusRejected        OrderStatus = "REJECTED"
)

// SymbolInfo is the static metadata for one trading pair.
// Precisions and trade limits are the exchange's decimal strings, verbatim.
type SymbolInfo struct {
	Name              string `json:"name"`
	Alias             string `json:"alias"`
	BaseCurrency      string `json:"baseCurrency"`
	QuoteCurrency     string `json:"quoteCurrency"`
	BasePrecision     string `json:"basePrecision"`
	QuotePrecision    string `json:"quotePrecision"`
	MinTradeQuantity  string `json:"minTradeQuantity"`
	MinTradeAmount    string `json:"minTradeAmount"`
	MinPricePrecision string `json:"minPricePrecision"`
	MaxTradeQuantity  string `json:"maxTradeQuantity"`
	MaxTradeAmount    string `json:"maxTradeAmount"`
	Category          int    `json:"category"`
}

// BookTicker is the best bid and ask for one symbol.
type BookTicker struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	BidQty   string `json:"bidQty"`
	AskPrice string `json:"askPrice"`
	AskQty   string `json:"askQty"`
	Time     int64  `json:"time"`
}

// CoinBalance is the wallet balance of one coin.
type CoinBalance struct {
	Coin     string `json:"coin"`
	CoinID   string `json:"coinId"`
	CoinName string `json:"coinName"`
	Total    string `json:"total"`
	Free     string `json:"free"`
	Locked   string `json:"locked"`
}

// WalletBalances is the authenticated wallet snapshot.
type WalletBalances struct {
	Balances []CoinBalance `json:"balances"`
}

// Order is the result of placing an order.
type Order struct {
	AccountID    string      `json:"accountId"`
	Symbol       string      `json:"symbol"`
	SymbolName   string      `json:"symbolName"`
	OrderLinkID  string      `json:"orderLinkId"`
	OrderID      string      `json:"orderId"`
	TransactTime string      `json:"transactTime"`
	Price        string      `json:"price"`
	OrigQty      string      `json:"origQty"`
	ExecutedQty  string      `json:"executedQty"`
	Status       OrderStatus `json:"status"`
	TimeInForce  TimeInForce `json:"timeInForce"`
	Type         OrderType   `json:"type"`
	Side         Side        `json:"side"`
}
