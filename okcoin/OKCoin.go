package okcoin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	. "okcoinex"
)

const (
	/*Rest Endpoint*/
	ENDPOINT = "https://www.okcoin.cn/api"
	API_V1   = "v1"

	TICKER_URI        = "ticker.do"
	DEPTH_URI         = "depth.do"
	TRADES_URI        = "trades.do"
	USERINFO_URI      = "userinfo.do"
	TRADE_URI         = "trade.do"
	CANCEL_ORDER_URI  = "cancel_order.do"
	ORDER_INFO_URI    = "order_info.do"
	ORDERS_INFO_URI   = "orders_info.do"
	ORDER_HISTORY_URI = "order_history.do"
)

var log = logrus.WithField("exchange", OKCOIN)

// error_code -> message, fixed by the exchange side. Codes outside this
// table are reported as unsupported.
var errorMessages = map[int]string{
	10000: "Required parameter can not be null",
	10001: "Requests too frequent",
	10002: "System Error",
	10003: "Restricted list request, please try again later",
	10004: "IP restriction",
	10005: "Key does not exist",
	10006: "User does not exist",
	10007: "Signatures do not match",
	10008: "Illegal parameter",
	10009: "Order does not exist",
	10010: "Insufficient balance",
	10011: "Order is less than minimum trade amount",
	10012: "Unsupported symbol (not btc_cny or ltc_cny)",
	10013: "This interface only accepts https requests",
	10014: "Order price must be between 0 and 1,000,000",
	10015: "Order price differs from current market price too much",
	10016: "Insufficient coins balance",
	10017: "API authorization error",
	10026: "Loan (including reserved loan) and margin cannot be withdrawn",
	10027: "Cannot withdraw within 24 hrs of authentication information modification",
	10028: "Withdrawal amount exceeds daily limit",
	10029: "Account has unpaid loan, please cancel/pay off the loan before withdraw",
	10031: "Deposits can only be withdrawn after 6 confirmations",
	10032: "Please enabled phone/google authenticator",
	10033: "Fee higher than maximum network transaction fee",
	10034: "Fee lower than minimum network transaction fee",
	10035: "Insufficient BTC/LTC",
	10036: "Withdrawal amount less than minimum amount",
	10037: "Trade password not set",
	10040: "Withdrawal cancellation fails",
	10041: "Withdrawal address not approved",
	10042: "Admin password error",
	10100: "User account frozen",
	10216: "Non-available API",
	503:   "Too many requests (Http)",
}

type OKCoin struct {
	config *APIConfig
	Spot   *Spot
}

func New(config *APIConfig) *OKCoin {
	if config.HttpClient == nil {
		config.HttpClient = http.DefaultClient
	}
	if config.Endpoint == "" {
		config.Endpoint = ENDPOINT
	}
	if config.Version == "" {
		config.Version = API_V1
	}
	if config.Location == nil {
		config.Location = time.Local
	}

	okcoin := &OKCoin{config: config}
	okcoin.Spot = &Spot{OKCoin: okcoin}
	return okcoin
}

func (ok *OKCoin) GetExchangeName() string {
	return OKCOIN
}

// DoRequest performs an unsigned GET call against a public endpoint.
func (ok *OKCoin) DoRequest(uri string, response interface{}) ([]byte, error) {
	return ok.doRequest(GET, uri, "", nil, response)
}

// DoSignedRequest injects the api_key, signs the canonical form of the
// params and POSTs them form-encoded. The sign param itself is set after
// signing so it never covers itself.
func (ok *OKCoin) DoSignedRequest(uri string, params url.Values, response interface{}) ([]byte, error) {
	params.Set("api_key", ok.config.ApiKey)
	sign, err := GetParamMD5Sign(ok.config.ApiSecretKey, BuildCanonicalParams(params))
	if err != nil {
		return nil, err
	}
	params.Set("sign", sign)

	return ok.doRequest(
		POST,
		uri,
		params.Encode(),
		map[string]string{CONTENT_TYPE: FORM_URLENCODED},
		response,
	)
}

func (ok *OKCoin) doRequest(
	httpMethod,
	uri,
	reqBody string,
	requestHeaders map[string]string,
	response interface{},
) ([]byte, error) {
	requestId := UUID()
	reqUrl := fmt.Sprintf("%s/%s/%s", ok.config.Endpoint, ok.config.Version, uri)
	log.WithFields(logrus.Fields{
		"request": requestId,
		"method":  httpMethod,
		"url":     reqUrl,
	}).Debug("do request")

	resp, err := NewHttpRequest(ok.config.HttpClient, httpMethod, reqUrl, reqBody, requestHeaders)
	if err != nil {
		log.WithField("request", requestId).WithError(err).Debug("request failed")
		return nil, &TransportError{Err: err}
	}
	return resp, ok.classifyResponse(resp, response)
}

// classifyResponse maps the raw body into exactly one of: parse error,
// api error, or the decoded endpoint payload.
func (ok *OKCoin) classifyResponse(resp []byte, response interface{}) error {
	body := bytes.TrimSpace(resp)
	if len(body) > 0 && body[0] == '{' {
		var probe struct {
			ErrorCode int `json:"error_code"`
		}
		if err := json.Unmarshal(body, &probe); err != nil {
			return &ParseError{Raw: resp, Err: err}
		}
		if probe.ErrorCode != 0 {
			message, supported := errorMessages[probe.ErrorCode]
			if !supported {
				message = fmt.Sprintf("error code %d is not supported", probe.ErrorCode)
			}
			return &ApiError{ErrCode: probe.ErrorCode, Message: message}
		}
	}

	if response == nil {
		return nil
	}
	if err := json.Unmarshal(body, response); err != nil {
		return &ParseError{Raw: resp, Err: err}
	}
	return nil
}
