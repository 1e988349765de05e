package okcoin

import (
	. "okcoinex"
)

/**
 *
 * Async variants of the spot API. Each call runs on its own goroutine,
 * invokes the callback exactly once with the same tuple the sync method
 * returns, and emits the returned DoneSignal afterwards. Calls in flight
 * at the same time complete in no particular order, and a call can not
 * be cancelled once issued.
 *
 **/

func (spot *Spot) GetTickerAsync(callback func(*Ticker, []byte, error)) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.GetTicker())
		done.Emit()
	}()
	return done
}

func (spot *Spot) GetDepthAsync(callback func(*Depth, []byte, error)) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.GetDepth())
		done.Emit()
	}()
	return done
}

func (spot *Spot) GetTradesAsync(callback func([]Trade, []byte, error)) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.GetTrades())
		done.Emit()
	}()
	return done
}

func (spot *Spot) GetAccountAsync(callback func(*Account, []byte, error)) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.GetAccount())
		done.Emit()
	}()
	return done
}

func (spot *Spot) TradeAsync(
	symbol string,
	side TradeSide,
	amount, price float64,
	callback func(*Order, []byte, error),
) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.Trade(symbol, side, amount, price))
		done.Emit()
	}()
	return done
}

func (spot *Spot) CancelOrderAsync(orderId, symbol string, callback func(bool, []byte, error)) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.CancelOrder(orderId, symbol))
		done.Emit()
	}()
	return done
}

func (spot *Spot) GetOrderInfoAsync(orderId, symbol string, callback func(*Order, []byte, error)) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.GetOrderInfo(orderId, symbol))
		done.Emit()
	}()
	return done
}

func (spot *Spot) GetOrdersInfoAsync(
	symbol string,
	orderIds []string,
	callback func([]Order, []byte, error),
) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.GetOrdersInfo(symbol, orderIds...))
		done.Emit()
	}()
	return done
}

func (spot *Spot) GetOrderHistoryAsync(
	symbol string,
	status, currentPage, pageLength int,
	callback func([]Order, []byte, error),
) *DoneSignal {
	done := NewDoneSignal()
	go func() {
		callback(spot.GetOrderHistory(symbol, status, currentPage, pageLength))
		done.Emit()
	}()
	return done
}
