package okcoin

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	. "okcoinex"
)

func TestSpot_MarketAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, GET, r.Method)
		switch r.URL.Path {
		case "/v1/ticker.do":
			_, _ = w.Write([]byte(`{"date":"1410431279","ticker":{"buy":"33.15","high":"34.15","last":"33.15","low":"32.05","sell":"33.16","vol":"10940.57"}}`))
		case "/v1/depth.do":
			_, _ = w.Write([]byte(`{"asks":[[792,5],[789.68,0.018],[788.99,0.042]],"bids":[[787.1,0.35],[787,12.071],[786.5,0.014]]}`))
		case "/v1/trades.do":
			_, _ = w.Write([]byte(`[{"date":1417449600,"date_ms":1417449600000,"amount":0.1,"price":363.55,"tid":50787,"type":"sell"},{"date":1417449601,"date_ms":1417449601000,"amount":0.5,"price":363.56,"tid":50788,"type":"buy"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	ok := newTestClient(server.URL)

	ticker, _, err := ok.Spot.GetTicker()
	assert.Nil(t, err)
	assert.Equal(t, 33.15, ticker.Last)
	assert.Equal(t, 33.15, ticker.Buy)
	assert.Equal(t, 33.16, ticker.Sell)
	assert.Equal(t, 34.15, ticker.High)
	assert.Equal(t, 32.05, ticker.Low)
	assert.Equal(t, 10940.57, ticker.Vol)
	assert.Equal(t, int64(1410431279000), ticker.Timestamp)

	depth, _, err := ok.Spot.GetDepth()
	assert.Nil(t, err)
	assert.Equal(t, 3, depth.AskList.Len())
	assert.Equal(t, 3, depth.BidList.Len())
	// both books descending by price
	assert.Equal(t, 792.0, depth.AskList[0].Price)
	assert.Equal(t, 788.99, depth.AskList[2].Price)
	assert.Equal(t, 787.1, depth.BidList[0].Price)
	assert.Equal(t, 786.5, depth.BidList[2].Price)

	trades, _, err := ok.Spot.GetTrades()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(trades))
	assert.Equal(t, int64(50787), trades[0].Tid)
	assert.Equal(t, SELL, trades[0].Type)
	assert.Equal(t, BUY, trades[1].Type)
	assert.Equal(t, 363.55, trades[0].Price)
	assert.Equal(t, int64(1417449600000), trades[0].Timestamp)
}

func TestSpot_GetAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":true,"info":{"funds":{"free":{"btc":"1.5","cny":"1000","ltc":"0"},"freezed":{"btc":"0.5","cny":"0","ltc":"0"},"asset":{"net":"9000","total":"9500"}}}}`))
	}))
	defer server.Close()

	ok := newTestClient(server.URL)
	account, _, err := ok.Spot.GetAccount()
	assert.Nil(t, err)
	assert.Equal(t, OKCOIN, account.Exchange)
	assert.Equal(t, 9500.0, account.Asset)
	assert.Equal(t, 9000.0, account.NetAsset)
	assert.Equal(t, 1.5, account.SubAccounts["btc"].Amount)
	assert.Equal(t, 0.5, account.SubAccounts["btc"].FrozenAmount)
	assert.Equal(t, 1000.0, account.SubAccounts["cny"].Amount)
}

func TestSpot_TradeParamShapes(t *testing.T) {
	var forms []url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, r.ParseForm())
		forms = append(forms, r.PostForm)
		_, _ = w.Write([]byte(`{"result":true,"order_id":123}`))
	}))
	defer server.Close()

	ok := newTestClient(server.URL)

	order, _, err := ok.Spot.LimitBuy("btc_cny", 1.05, 3950.5)
	assert.Nil(t, err)
	assert.Equal(t, "123", order.OrderId)
	assert.Equal(t, BUY, order.Side)

	// market buy only spends, market sell only sizes
	_, _, err = ok.Spot.MarketBuy("btc_cny", 100)
	assert.Nil(t, err)
	_, _, err = ok.Spot.MarketSell("btc_cny", 0.2)
	assert.Nil(t, err)

	assert.Equal(t, 3, len(forms))

	limit := forms[0]
	assert.Equal(t, "buy", limit.Get("type"))
	assert.Equal(t, "1.05", limit.Get("amount"))
	assert.Equal(t, "3950.5", limit.Get("price"))

	marketBuy := forms[1]
	assert.Equal(t, "buy_market", marketBuy.Get("type"))
	assert.Equal(t, "100", marketBuy.Get("price"))
	assert.False(t, marketBuy.Has("amount"))

	marketSell := forms[2]
	assert.Equal(t, "sell_market", marketSell.Get("type"))
	assert.Equal(t, "0.2", marketSell.Get("amount"))
	assert.False(t, marketSell.Has("price"))
}

func TestSpot_CancelOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, r.ParseForm())
		assert.Equal(t, "10000591", r.PostForm.Get("order_id"))
		assert.Equal(t, "btc_cny", r.PostForm.Get("symbol"))
		_, _ = w.Write([]byte(`{"result":true,"order_id":"10000591"}`))
	}))
	defer server.Close()

	ok := newTestClient(server.URL)
	cancelled, _, err := ok.Spot.CancelOrder("10000591", "btc_cny")
	assert.Nil(t, err)
	assert.True(t, cancelled)
}

func TestSpot_GetOrderInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":true,"orders":[{"amount":0.1,"avg_price":0,"create_date":1418008467000,"deal_amount":0,"order_id":10000591,"orders_id":10000591,"price":500,"status":0,"symbol":"btc_cny","type":"sell"}]}`))
	}))
	defer server.Close()

	ok := newTestClient(server.URL)
	order, _, err := ok.Spot.GetOrderInfo("10000591", "btc_cny")
	assert.Nil(t, err)
	assert.Equal(t, "10000591", order.OrderId)
	assert.Equal(t, 500.0, order.Price)
	assert.Equal(t, 0.1, order.Amount)
	assert.Equal(t, ORDER_UNFINISH, order.Status)
	assert.Equal(t, SELL, order.Side)
	assert.Equal(t, "btc_cny", order.Symbol)
}

func TestSpot_OrdersInfoJoinsIds(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, r.ParseForm())
		seen = append(seen, r.PostForm.Get("order_id"))
		_, _ = w.Write([]byte(`{"result":true,"orders":[]}`))
	}))
	defer server.Close()

	ok := newTestClient(server.URL)

	_, _, err := ok.Spot.GetOrdersInfo("btc_cny", "1", "2", "3")
	assert.Nil(t, err)
	_, _, err = ok.Spot.GetOrdersInfo("btc_cny", "1,2,3")
	assert.Nil(t, err)

	// a slice of ids and a pre-joined string hit the wire the same way
	assert.Equal(t, []string{"1,2,3", "1,2,3"}, seen)
}

func TestSpot_GetOrderHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, r.ParseForm())
		assert.Equal(t, "1", r.PostForm.Get("current_page"))
		assert.Equal(t, "1", r.PostForm.Get("status"))
		assert.Equal(t, "50", r.PostForm.Get("page_length"))
		assert.Equal(t, "btc_cny", r.PostForm.Get("symbol"))
		_, _ = w.Write([]byte(`{"result":true,"total":2,"current_page":1,"page_length":50,"orders":[{"amount":0.1,"avg_price":363.55,"create_date":1418008467000,"deal_amount":0.1,"order_id":10000591,"price":363.55,"status":2,"symbol":"btc_cny","type":"buy"},{"amount":0.2,"avg_price":0,"create_date":1418008468000,"deal_amount":0,"order_id":10000592,"price":350,"status":-1,"symbol":"btc_cny","type":"buy"}]}`))
	}))
	defer server.Close()

	ok := newTestClient(server.URL)
	orders, _, err := ok.Spot.GetOrderHistory("btc_cny", 1, 1, 50)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(orders))
	assert.Equal(t, ORDER_FINISH, orders[0].Status)
	assert.Equal(t, ORDER_CANCEL, orders[1].Status)
	assert.Equal(t, "10000592", orders[1].OrderId)
}
