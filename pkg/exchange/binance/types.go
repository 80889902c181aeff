package binance

// Side is the direction of an order.
type Side string

// Order sides.
const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType defines how an order executes.
type OrderType string

// Order types accepted by the spot API.
const (
	TypeLimit           OrderType = "LIMIT"
	TypeMarket          OrderType = "MARKET"
	TypeStopLoss        OrderType = "STOP_LOSS"
	TypeStopLossLimit   OrderType = "STOP_LOSS_LIMIT"
	TypeTakeProfit      OrderType = "TAKE_PROFIT"
	TypeTakeProfitLimit OrderType = "TAKE_PROFIT_LIMIT"
	TypeLimitMaker      OrderType = "LIMIT_MAKER"
)

// TimeInForce defines how long an order remains active.
type TimeInForce string

// Time in force values.
const (
	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

// OrderStatus is the lifecycle state of an order as reported by Binance.
type OrderStatus string

// Order statuses.
const (
	StatusNew             OrderStatus = "NEW"
	StatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	StatusFilled          OrderStatus = "FILLED"
	StatusCanceled        OrderStatus = "CANCELED"
	StatusPendingCancel   OrderStatus = "PENDING_CANCEL"
	StatusRejected        OrderStatus = "REJECTED"
	StatusExpired         OrderStatus = "EXPIRED"
)

// ResponseType selects how much detail Binance returns for a placed order.
type ResponseType string

// Order response types.
const (
	RespAck    ResponseType = "ACK"
	RespResult ResponseType = "RESULT"
	RespFull   ResponseType = "FULL"
)

// BookTicker is the best bid and ask for one symbol.
// Prices and quantities are the exchange's decimal strings, verbatim.
type BookTicker struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	BidQty   string `json:"bidQty"`
	AskPrice string `json:"askPrice"`
	AskQty   string `json:"askQty"`
}

// RateLimit describes one exchange-wide request limit.
type RateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int    `json:"intervalNum"`
	Limit         int    `json:"limit"`
}

// SymbolFilter constrains orders on a symbol. FilterType selects which of
// the optional fields apply; the rest are empty.
type SymbolFilter struct {
	FilterType string `json:"filterType"`

	MinPrice string `json:"minPrice,omitempty"`
	MaxPrice string `json:"maxPrice,omitempty"`
	TickSize string `json:"tickSize,omitempty"`

	MinQty   string `json:"minQty,omitempty"`
	MaxQty   string `json:"maxQty,omitempty"`
	StepSize string `json:"stepSize,omitempty"`

	MinNotional   string `json:"minNotional,omitempty"`
	ApplyToMarket bool   `json:"applyToMarket,omitempty"`

	MultiplierUp   string `json:"multiplierUp,omitempty"`
	MultiplierDown string `json:"multiplierDown,omitempty"`
	AvgPriceMins   int    `json:"avgPriceMins,omitempty"`

	Limit            int    `json:"limit,omitempty"`
	MaxNumOrders     int    `json:"maxNumOrders,omitempty"`
	MaxNumAlgoOrders int    `json:"maxNumAlgoOrders,omitempty"`
	MaxPosition      string `json:"maxPosition,omitempty"`
}

// SymbolInfo is the static exchange metadata for one trading pair.
type SymbolInfo struct {
	Symbol                     string         `json:"symbol"`
	Status                     string         `json:"status"`
	BaseAsset                  string         `json:"baseAsset"`
	BaseAssetPrecision         int            `json:"baseAssetPrecision"`
	QuoteAsset                 string         `json:"quoteAsset"`
	QuotePrecision             int            `json:"quotePrecision"`
	QuoteAssetPrecision        int            `json:"quoteAssetPrecision"`
	OrderTypes                 []OrderType    `json:"orderTypes"`
	IcebergAllowed             bool           `json:"icebergAllowed"`
	OcoAllowed                 bool           `json:"ocoAllowed"`
	QuoteOrderQtyMarketAllowed bool           `json:"quoteOrderQtyMarketAllowed"`
	IsSpotTradingAllowed       bool           `json:"isSpotTradingAllowed"`
	IsMarginTradingAllowed     bool           `json:"isMarginTradingAllowed"`
	Filters                    []SymbolFilter `json:"filters"`
	Permissions                []string       `json:"permissions"`
}

// ExchangeInfo is the static metadata snapshot for the exchange.
type ExchangeInfo struct {
	Timezone   string       `json:"timezone"`
	ServerTime int64        `json:"serverTime"`
	RateLimits []RateLimit  `json:"rateLimits"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// Balance is the free and locked amount of one asset.
type Balance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

// AccountInfo is the authenticated account snapshot: commissions,
// permissions and per-asset balances.
type AccountInfo struct {
	MakerCommission  int64     `json:"makerCommission"`
	TakerCommission  int64     `json:"takerCommission"`
	BuyerCommission  int64     `json:"buyerCommission"`
	SellerCommission int64     `json:"sellerCommission"`
	CanTrade         bool      `json:"canTrade"`
	CanWithdraw      bool      `json:"canWithdraw"`
	CanDeposit       bool      `json:"canDeposit"`
	UpdateTime       int64     `json:"updateTime"`
	AccountType      string    `json:"accountType"`
	Balances         []Balance `json:"balances"`
	Permissions      []string  `json:"permissions"`
}

// Fill is one trade resulting from a placed order. Present only when the
// order was placed with the FULL response type.
type Fill struct {
	Price           string `json:"price"`
	Qty             string `json:"qty"`
	Commission      string `json:"commission"`
	CommissionAsset string `json:"commissionAsset"`
	TradeID         int64  `json:"tradeId"`
}

// OrderResponse is the result of placing an order. It is the FULL-shape
// superset: for ACK only the identifying fields are set, for RESULT the
// execution summary is added, for FULL the fills as well.
type OrderResponse struct {
	Symbol              string      `json:"symbol"`
	OrderID             int64       `json:"orderId"`
	OrderListID         int64       `json:"orderListId"`
	ClientOrderID       string      `json:"clientOrderId"`
	TransactTime        int64       `json:"transactTime"`
	Price               string      `json:"price,omitempty"`
	OrigQty             string      `json:"origQty,omitempty"`
	ExecutedQty         string      `json:"executedQty,omitempty"`
	CummulativeQuoteQty string      `json:"cummulativeQuoteQty,omitempty"`
	Status              OrderStatus `json:"status,omitempty"`
	TimeInForce         TimeInForce `json:"timeInForce,omitempty"`
	Type                OrderType   `json:"type,omitempty"`
	Side                Side        `json:"side,omitempty"`
	Fills               []Fill      `json:"fills,omitempty"`
}
