package types

// Token describes one tradeable asset: its encoded asset data as the relay
// expects it, and the decimal precision used to scale raw amounts.
type Token struct {
	Symbol    string `json:"symbol"`
	AssetData string `json:"assetData"`
	Decimals  int32  `json:"decimals"`
}

// AssetPair is one market. A full book for the pair combines both query
// directions: base→quote offers and quote→base offers.
type AssetPair struct {
	Base  string // maker-asset data of the base side
	Quote string // maker-asset data of the quote side
}

// NewAssetPair builds a pair from two tokens.
func NewAssetPair(base, quote Token) AssetPair {
	return AssetPair{Base: base.AssetData, Quote: quote.AssetData}
}
