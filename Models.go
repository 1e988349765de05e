package okcoinex

import (
	"net/http"
	"time"
)

/*
	models about account
*/
type Account struct {
	Exchange    string
	Asset       float64
	NetAsset    float64
	SubAccounts map[string]SubAccount
}

type SubAccount struct {
	Currency     string
	Amount       float64
	FrozenAmount float64
}

/**
 * models about market
 **/

type Ticker struct {
	Symbol    string
	Last      float64
	Buy       float64
	Sell      float64
	High      float64
	Low       float64
	Vol       float64
	Timestamp int64  // unit:ms
	Date      string // date: format yyyy-mm-dd HH:MM:SS, the timezone define in apiconfig
}

// record
type Trade struct {
	Tid       int64
	Type      TradeSide
	Amount    float64
	Price     float64
	Timestamp int64
	Symbol    string
}

type DepthRecord struct {
	Price  float64
	Amount float64
}

type DepthRecords []DepthRecord

func (dr DepthRecords) Len() int {
	return len(dr)
}

func (dr DepthRecords) Swap(i, j int) {
	dr[i], dr[j] = dr[j], dr[i]
}

func (dr DepthRecords) Less(i, j int) bool {
	return dr[i].Price < dr[j].Price
}

type Depth struct {
	Symbol  string
	UTime   time.Time
	AskList DepthRecords // Descending order
	BidList DepthRecords // Descending order
}

/*
	models about trade
*/

type Order struct {
	Price          float64
	Amount         float64
	AvgPrice       float64
	DealAmount     float64
	OrderId        string
	OrderTimestamp int64 // unit:ms
	OrderDate      string
	Status         TradeStatus
	Symbol         string
	Side           TradeSide
}

/*
	models about API config
*/
type APIConfig struct {
	HttpClient   *http.Client
	Endpoint     string
	Version      string
	ApiKey       string
	ApiSecretKey string
	Location     *time.Location
}
