package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/veridex/relaykit/relay/types"
)

// GetBestPrice returns the price of the best (first-listed) ask for the
// base/quote pair: taker amount over maker amount, each scaled down by its
// token's decimals. The boolean is false when the book has no asks, which
// is not an error.
func (c *Client) GetBestPrice(ctx context.Context, base, quote types.Token) (decimal.Decimal, bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Decimal{}, false, err
	}

	var book types.OrderbookResponse
	err := c.http.do(ctx, http.MethodGet, EndpointOrderbook, &requestOptions{
		headers: c.AuthOpts().Headers(),
		params: map[string]string{
			"baseAssetData":  base.AssetData,
			"quoteAssetData": quote.AssetData,
		},
	}, &book)
	if err != nil {
		return decimal.Decimal{}, false, err
	}

	if len(book.Asks.Records) == 0 {
		return decimal.Decimal{}, false, nil
	}

	best := book.Asks.Records[0].Order
	maker, err := amountInUnits(best.MakerAssetAmount, base.Decimals)
	if err != nil {
		return decimal.Decimal{}, false, errors.Wrap(err, "best ask maker amount")
	}
	taker, err := amountInUnits(best.TakerAssetAmount, quote.Decimals)
	if err != nil {
		return decimal.Decimal{}, false, errors.Wrap(err, "best ask taker amount")
	}
	if maker.IsZero() {
		return decimal.Decimal{}, false, errors.New("best ask has zero maker amount")
	}

	return taker.Div(maker), true, nil
}

// amountInUnits converts a raw integer token amount into display units.
func amountInUnits(raw string, decimals int32) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "parse amount %q", raw)
	}
	return d.Shift(-decimals), nil
}
