package ftx

// MarketType distinguishes spot markets from futures.
type MarketType string

// Market types.
const (
	MarketSpot   MarketType = "spot"
	MarketFuture MarketType = "future"
)

// Market is the read-only snapshot of one market. Base and quote
// currencies are null for futures, underlying is null for spot.
type Market struct {
	Name                  string     `json:"name"`
	BaseCurrency          string     `json:"baseCurrency"`
	QuoteCurrency         string     `json:"quoteCurrency"`
	QuoteVolume24H        float64    `json:"quoteVolume24h"`
	Change1H              float64    `json:"change1h"`
	Change24H             float64    `json:"change24h"`
	ChangeBod             float64    `json:"changeBod"`
	HighLeverageFeeExempt bool       `json:"highLeverageFeeExempt"`
	MinProvideSize        float64    `json:"minProvideSize"`
	Type                  MarketType `json:"type"`
	Underlying            string     `json:"underlying"`
	Enabled               bool       `json:"enabled"`
	Ask                   float64    `json:"ask"`
	Bid                   float64    `json:"bid"`
	Last                  float64    `json:"last"`
	PostOnly              bool       `json:"postOnly"`
	Price                 float64    `json:"price"`
	PriceIncrement        float64    `json:"priceIncrement"`
	SizeIncrement         float64    `json:"sizeIncrement"`
	Restricted            bool       `json:"restricted"`
	VolumeUsd24H          float64    `json:"volumeUsd24h"`
	LargeOrderThreshold   float64    `json:"largeOrderThreshold"`
}

// OrderbookLevel is one [price, size] pair.
type OrderbookLevel [2]float64

// Price returns the level's price.
func (l OrderbookLevel) Price() float64 { return l[0] }

// Size returns the quantity available at the level's price.
func (l OrderbookLevel) Size() float64 { return l[1] }

// Orderbook is a depth snapshot: bids sorted by price descending,
// asks ascending.
type Orderbook struct {
	Bids []OrderbookLevel `json:"bids"`
	Asks []OrderbookLevel `json:"asks"`
}

// Balance is the wallet balance of one coin.
type Balance struct {
	Coin                   string  `json:"coin"`
	Free                   float64 `json:"free"`
	SpotBorrow             float64 `json:"spotBorrow"`
	Total                  float64 `json:"total"`
	UsdValue               float64 `json:"usdValue"`
	AvailableWithoutBorrow float64 `json:"availableWithoutBorrow"`
}
