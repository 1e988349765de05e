package okcoin

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	. "okcoinex"
)

type Spot struct {
	*OKCoin
}

var _INTERNAL_TRADE_SIDE_CONVERTER = map[string]TradeSide{
	"buy":         BUY,
	"sell":        SELL,
	"buy_market":  BUY_MARKET,
	"sell_market": SELL_MARKET,
}

// order status on the wire: -1 cancelled, 0 unfilled, 1 partially filled,
// 2 fully filled, 4 cancel request in process
var _INTERNAL_TRADE_STATUS_CONVERTER = map[int]TradeStatus{
	-1: ORDER_CANCEL,
	0:  ORDER_UNFINISH,
	1:  ORDER_PART_FINISH,
	2:  ORDER_FINISH,
	4:  ORDER_CANCEL_ING,
}

func (spot *Spot) GetTicker() (*Ticker, []byte, error) {
	var response struct {
		Date   string `json:"date"`
		Ticker struct {
			Buy  interface{} `json:"buy"`
			High interface{} `json:"high"`
			Last interface{} `json:"last"`
			Low  interface{} `json:"low"`
			Sell interface{} `json:"sell"`
			Vol  interface{} `json:"vol"`
		} `json:"ticker"`
	}

	resp, err := spot.DoRequest(TICKER_URI, &response)
	if err != nil {
		return nil, resp, err
	}

	timestamp := ToInt64(response.Date)
	ticker := &Ticker{
		Last:      ToFloat64(response.Ticker.Last),
		Buy:       ToFloat64(response.Ticker.Buy),
		Sell:      ToFloat64(response.Ticker.Sell),
		High:      ToFloat64(response.Ticker.High),
		Low:       ToFloat64(response.Ticker.Low),
		Vol:       ToFloat64(response.Ticker.Vol),
		Timestamp: timestamp * 1000,
		Date:      time.Unix(timestamp, 0).In(spot.config.Location).Format(GO_BIRTHDAY),
	}
	return ticker, resp, nil
}

func (spot *Spot) GetDepth() (*Depth, []byte, error) {
	var response struct {
		Asks [][]float64 `json:"asks"`
		Bids [][]float64 `json:"bids"`
	}

	resp, err := spot.DoRequest(DEPTH_URI, &response)
	if err != nil {
		return nil, resp, err
	}

	depth := &Depth{UTime: time.Now().In(spot.config.Location)}
	for _, ask := range response.Asks {
		if len(ask) < 2 {
			continue
		}
		depth.AskList = append(depth.AskList, DepthRecord{Price: ask[0], Amount: ask[1]})
	}
	for _, bid := range response.Bids {
		if len(bid) < 2 {
			continue
		}
		depth.BidList = append(depth.BidList, DepthRecord{Price: bid[0], Amount: bid[1]})
	}
	sort.Sort(sort.Reverse(depth.AskList))
	sort.Sort(sort.Reverse(depth.BidList))
	return depth, resp, nil
}

func (spot *Spot) GetTrades() ([]Trade, []byte, error) {
	var response []struct {
		Amount interface{} `json:"amount"`
		Price  interface{} `json:"price"`
		Tid    int64       `json:"tid"`
		Type   string      `json:"type"`
		Date   int64       `json:"date"`
		DateMs int64       `json:"date_ms"`
	}

	resp, err := spot.DoRequest(TRADES_URI, &response)
	if err != nil {
		return nil, resp, err
	}

	trades := make([]Trade, 0, len(response))
	for _, item := range response {
		timestamp := item.DateMs
		if timestamp == 0 {
			timestamp = item.Date * 1000
		}
		trades = append(trades, Trade{
			Tid:       item.Tid,
			Type:      _INTERNAL_TRADE_SIDE_CONVERTER[item.Type],
			Amount:    ToFloat64(item.Amount),
			Price:     ToFloat64(item.Price),
			Timestamp: timestamp,
		})
	}
	return trades, resp, nil
}

func (spot *Spot) GetAccount() (*Account, []byte, error) {
	var response struct {
		Result bool `json:"result"`
		Info   struct {
			Funds struct {
				Free    map[string]interface{} `json:"free"`
				Freezed map[string]interface{} `json:"freezed"`
				Asset   struct {
					Net   interface{} `json:"net"`
					Total interface{} `json:"total"`
				} `json:"asset"`
			} `json:"funds"`
		} `json:"info"`
	}

	resp, err := spot.DoSignedRequest(USERINFO_URI, url.Values{}, &response)
	if err != nil {
		return nil, resp, err
	}

	account := &Account{
		Exchange:    spot.GetExchangeName(),
		Asset:       ToFloat64(response.Info.Funds.Asset.Total),
		NetAsset:    ToFloat64(response.Info.Funds.Asset.Net),
		SubAccounts: make(map[string]SubAccount),
	}
	for currency, amount := range response.Info.Funds.Free {
		sub := account.SubAccounts[currency]
		sub.Currency = currency
		sub.Amount = ToFloat64(amount)
		account.SubAccounts[currency] = sub
	}
	for currency, amount := range response.Info.Funds.Freezed {
		sub := account.SubAccounts[currency]
		sub.Currency = currency
		sub.FrozenAmount = ToFloat64(amount)
		account.SubAccounts[currency] = sub
	}
	return account, resp, nil
}

// Trade places an order. amount and price are optional on the wire: a
// market buy carries only the price (spend) and a market sell only the
// amount, so non-positive values are left out of the request.
func (spot *Spot) Trade(symbol string, side TradeSide, amount, price float64) (*Order, []byte, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("type", side.String())
	if amount > 0 {
		params.Set("amount", decimal.NewFromFloat(amount).String())
	}
	if price > 0 {
		params.Set("price", decimal.NewFromFloat(price).String())
	}

	var response struct {
		Result  bool        `json:"result"`
		OrderId interface{} `json:"order_id"`
	}

	resp, err := spot.DoSignedRequest(TRADE_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}

	now := time.Now()
	order := &Order{
		Price:          price,
		Amount:         amount,
		OrderId:        strconv.FormatInt(ToInt64(response.OrderId), 10),
		OrderTimestamp: now.UnixNano() / int64(time.Millisecond),
		OrderDate:      now.In(spot.config.Location).Format(GO_BIRTHDAY),
		Status:         ORDER_UNFINISH,
		Symbol:         symbol,
		Side:           side,
	}
	return order, resp, nil
}

func (spot *Spot) LimitBuy(symbol string, amount, price float64) (*Order, []byte, error) {
	return spot.Trade(symbol, BUY, amount, price)
}

func (spot *Spot) LimitSell(symbol string, amount, price float64) (*Order, []byte, error) {
	return spot.Trade(symbol, SELL, amount, price)
}

// MarketBuy spends the given quote amount, the exchange works out the size.
func (spot *Spot) MarketBuy(symbol string, price float64) (*Order, []byte, error) {
	return spot.Trade(symbol, BUY_MARKET, 0, price)
}

func (spot *Spot) MarketSell(symbol string, amount float64) (*Order, []byte, error) {
	return spot.Trade(symbol, SELL_MARKET, amount, 0)
}

func (spot *Spot) CancelOrder(orderId, symbol string) (bool, []byte, error) {
	params := url.Values{}
	params.Set("order_id", orderId)
	params.Set("symbol", symbol)

	var response struct {
		Result  bool        `json:"result"`
		OrderId interface{} `json:"order_id"`
	}

	resp, err := spot.DoSignedRequest(CANCEL_ORDER_URI, params, &response)
	if err != nil {
		return false, resp, err
	}
	return response.Result, resp, nil
}

type orderResponse struct {
	Amount     interface{} `json:"amount"`
	AvgPrice   interface{} `json:"avg_price"`
	CreateDate int64       `json:"create_date"`
	DealAmount interface{} `json:"deal_amount"`
	OrderId    int64       `json:"order_id"`
	Price      interface{} `json:"price"`
	Status     int         `json:"status"`
	Symbol     string      `json:"symbol"`
	Type       string      `json:"type"`
}

func (spot *Spot) adaptOrder(response orderResponse) Order {
	return Order{
		Price:          ToFloat64(response.Price),
		Amount:         ToFloat64(response.Amount),
		AvgPrice:       ToFloat64(response.AvgPrice),
		DealAmount:     ToFloat64(response.DealAmount),
		OrderId:        strconv.FormatInt(response.OrderId, 10),
		OrderTimestamp: response.CreateDate,
		OrderDate: time.Unix(
			response.CreateDate/1000, 0,
		).In(spot.config.Location).Format(GO_BIRTHDAY),
		Status: _INTERNAL_TRADE_STATUS_CONVERTER[response.Status],
		Symbol: response.Symbol,
		Side:   _INTERNAL_TRADE_SIDE_CONVERTER[response.Type],
	}
}

func (spot *Spot) GetOrderInfo(orderId, symbol string) (*Order, []byte, error) {
	params := url.Values{}
	params.Set("order_id", orderId)
	params.Set("symbol", symbol)

	var response struct {
		Result bool            `json:"result"`
		Orders []orderResponse `json:"orders"`
	}

	resp, err := spot.DoSignedRequest(ORDER_INFO_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}
	if len(response.Orders) == 0 {
		return nil, resp, NewApiError(10009, errorMessages[10009])
	}

	order := spot.adaptOrder(response.Orders[0])
	return &order, resp, nil
}

// GetOrdersInfo fetches up to 50 orders in one call. The ids are joined
// with commas on the wire, so passing "1,2,3" as a single id is the same
// as passing "1", "2", "3".
func (spot *Spot) GetOrdersInfo(symbol string, orderIds ...string) ([]Order, []byte, error) {
	params := url.Values{}
	params.Set("order_id", strings.Join(orderIds, ","))
	params.Set("symbol", symbol)

	var response struct {
		Result bool            `json:"result"`
		Orders []orderResponse `json:"orders"`
	}

	resp, err := spot.DoSignedRequest(ORDERS_INFO_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}

	orders := make([]Order, 0, len(response.Orders))
	for _, item := range response.Orders {
		orders = append(orders, spot.adaptOrder(item))
	}
	return orders, resp, nil
}

// GetOrderHistory pages through past orders. status on the wire: 0 for
// unfinished orders, 1 for finished ones.
func (spot *Spot) GetOrderHistory(symbol string, status, currentPage, pageLength int) ([]Order, []byte, error) {
	params := url.Values{}
	params.Set("current_page", strconv.Itoa(currentPage))
	params.Set("symbol", symbol)
	params.Set("status", strconv.Itoa(status))
	params.Set("page_length", strconv.Itoa(pageLength))

	var response struct {
		Result      bool            `json:"result"`
		Total       int             `json:"total"`
		CurrentPage int             `json:"current_page"`
		PageLength  int             `json:"page_length"`
		Orders      []orderResponse `json:"orders"`
	}

	resp, err := spot.DoSignedRequest(ORDER_HISTORY_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}

	orders := make([]Order, 0, len(response.Orders))
	for _, item := range response.Orders {
		orders = append(orders, spot.adaptOrder(item))
	}
	return orders, resp, nil
}
