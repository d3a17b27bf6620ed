package types

import "encoding/json"

// SignedOrder is an order payload whose authenticity the relay can verify.
// Amounts are raw integer strings in the token's smallest unit; this client
// treats everything except the maker/taker amounts as opaque.
type SignedOrder struct {
	MakerAddress          string `json:"makerAddress"`
	TakerAddress          string `json:"takerAddress"`
	FeeRecipientAddress   string `json:"feeRecipientAddress"`
	SenderAddress         string `json:"senderAddress"`
	MakerAssetAmount      string `json:"makerAssetAmount"`
	TakerAssetAmount      string `json:"takerAssetAmount"`
	MakerFee              string `json:"makerFee"`
	TakerFee              string `json:"takerFee"`
	ExpirationTimeSeconds string `json:"expirationTimeSeconds"`
	Salt                  string `json:"salt"`
	MakerAssetData        string `json:"makerAssetData"`
	TakerAssetData        string `json:"takerAssetData"`
	ExchangeAddress       string `json:"exchangeAddress"`
	Signature             string `json:"signature"`
}

// APIOrder wraps one signed order plus whatever metadata the relay attaches.
// Only the order itself is retained by the aggregation paths.
type APIOrder struct {
	Order    SignedOrder     `json:"order"`
	MetaData json.RawMessage `json:"metaData"`
}

// OrdersResponse is the relay's pagination envelope. Page numbers are
// 1-based; the last page is ceil(Total/PerPage).
type OrdersResponse struct {
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"perPage"`
	Records []APIOrder `json:"records"`
}

// OrderbookResponse is a two-sided book for one asset pair. Bids are
// quote→base offers, asks are base→quote offers, best first.
type OrderbookResponse struct {
	Bids OrdersResponse `json:"bids"`
	Asks OrdersResponse `json:"asks"`
}

// OrderConfigRequest asks the relay to fill in the fee fields of a
// prospective order.
type OrderConfigRequest struct {
	MakerAddress          string `json:"makerAddress"`
	TakerAddress          string `json:"takerAddress"`
	MakerAssetAmount      string `json:"makerAssetAmount"`
	TakerAssetAmount      string `json:"takerAssetAmount"`
	MakerAssetData        string `json:"makerAssetData"`
	TakerAssetData        string `json:"takerAssetData"`
	ExchangeAddress       string `json:"exchangeAddress"`
	ExpirationTimeSeconds string `json:"expirationTimeSeconds"`
}

// OrderConfigResponse is the relay's answer to an OrderConfigRequest.
type OrderConfigResponse struct {
	SenderAddress       string `json:"senderAddress"`
	FeeRecipientAddress string `json:"feeRecipientAddress"`
	MakerFee            string `json:"makerFee"`
	TakerFee            string `json:"takerFee"`
}
