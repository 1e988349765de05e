package okcoinex

const (
	GO_BIRTHDAY = "2006-01-02 15:04:05"
)

type TradeSide int64

const (
	BUY TradeSide = 1 + iota
	SELL
	BUY_MARKET
	SELL_MARKET
)

func (ts TradeSide) String() string {
	switch ts {
	case 1:
		return "buy"
	case 2:
		return "sell"
	case 3:
		return "buy_market"
	case 4:
		return "sell_market"
	default:
		return "unknown"
	}
}

type TradeStatus int64

func (ts TradeStatus) String() string {
	return tradeStatusSymbol[ts]
}

var tradeStatusSymbol = [...]string{"unfinish", "part_finish", "finish", "cancel", "reject", "canceling", "fail"}

const (
	ORDER_UNFINISH TradeStatus = iota
	ORDER_PART_FINISH
	ORDER_FINISH
	ORDER_CANCEL
	ORDER_REJECT
	ORDER_CANCEL_ING
	ORDER_FAIL
)

const (
	GET  = "GET"
	POST = "POST"

	CONTENT_TYPE     = "Content-Type"
	ACCEPT           = "Accept"
	FORM_URLENCODED  = "application/x-www-form-urlencoded"
	APPLICATION_JSON = "application/json"
)

// exchanges const
const (
	OKCOIN = "okcoin"
)
