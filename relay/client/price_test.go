package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridex/relaykit/relay/types"
)

func orderbookWithAsks(t *testing.T, asks []types.APIOrder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, types.OrderbookResponse{
			Asks: types.OrdersResponse{Total: len(asks), Page: 1, PerPage: 20, Records: asks},
		})
	}
}

func TestGetBestPrice(t *testing.T) {
	base := types.Token{Symbol: "ZRX", AssetData: "0xbase", Decimals: 3}
	quote := types.Token{Symbol: "WETH", AssetData: "0xquote", Decimals: 2}

	t.Run("scales amounts by token decimals", func(t *testing.T) {
		// maker 100000 raw @ 3 decimals = 100 units
		// taker 5000 raw @ 2 decimals  = 50 units
		// price = 50 / 100 = 0.5
		mux := http.NewServeMux()
		mux.HandleFunc("GET "+EndpointOrderbook, orderbookWithAsks(t, []types.APIOrder{
			{Order: types.SignedOrder{MakerAssetAmount: "100000", TakerAssetAmount: "5000"}},
			{Order: types.SignedOrder{MakerAssetAmount: "1", TakerAssetAmount: "999"}},
		}))

		c := newTestClient(t, mux, nil)

		price, ok, err := c.GetBestPrice(context.Background(), base, quote)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, price.Equal(decimal.RequireFromString("0.5")), "got %s", price)
	})

	t.Run("no asks means absent, not an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET "+EndpointOrderbook, orderbookWithAsks(t, nil))

		c := newTestClient(t, mux, nil)

		_, ok, err := c.GetBestPrice(context.Background(), base, quote)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("query carries both asset datas", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET "+EndpointOrderbook, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "0xbase", r.URL.Query().Get("baseAssetData"))
			assert.Equal(t, "0xquote", r.URL.Query().Get("quoteAssetData"))
			orderbookWithAsks(t, nil)(w, r)
		})

		c := newTestClient(t, mux, nil)
		_, _, err := c.GetBestPrice(context.Background(), base, quote)
		require.NoError(t, err)
	})

	t.Run("unparseable amount is an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET "+EndpointOrderbook, orderbookWithAsks(t, []types.APIOrder{
			{Order: types.SignedOrder{MakerAssetAmount: "not-a-number", TakerAssetAmount: "5000"}},
		}))

		c := newTestClient(t, mux, nil)
		_, _, err := c.GetBestPrice(context.Background(), base, quote)
		require.Error(t, err)
	})

	t.Run("zero maker amount is an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET "+EndpointOrderbook, orderbookWithAsks(t, []types.APIOrder{
			{Order: types.SignedOrder{MakerAssetAmount: "0", TakerAssetAmount: "5000"}},
		}))

		c := newTestClient(t, mux, nil)
		_, _, err := c.GetBestPrice(context.Background(), base, quote)
		require.Error(t, err)
	})
}

func TestAmountInUnits(t *testing.T) {
	tests := []struct {
		raw      string
		decimals int32
		want     string
	}{
		{"1000000000000000000", 18, "1"},
		{"1500000000000000000", 18, "1.5"},
		{"5000", 2, "50"},
		{"7", 0, "7"},
	}
	for _, tt := range tests {
		got, err := amountInUnits(tt.raw, tt.decimals)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%s @ %d: got %s", tt.raw, tt.decimals, got)
	}
}
