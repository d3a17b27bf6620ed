package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/veridex/relaykit/relay/types"
)

// GetOrderBook fetches the full two-sided book for pair: every page of
// base→quote offers followed by every page of quote→base offers. The two
// sides run concurrently, each with its own page loop.
//
// On an expired session the client re-logs-in once with its configured
// credentials and returns ErrSessionExpired; the caller reissues the read.
func (c *Client) GetOrderBook(ctx context.Context, pair types.AssetPair) ([]types.SignedOrder, error) {
	return c.twoSided(ctx, pair, "")
}

// GetUserOrders is GetOrderBook restricted to orders whose maker is account.
func (c *Client) GetUserOrders(ctx context.Context, account string, pair types.AssetPair) ([]types.SignedOrder, error) {
	if account == "" {
		return nil, errors.New("relay: account is required")
	}
	return c.twoSided(ctx, pair, account)
}

func (c *Client) twoSided(ctx context.Context, pair types.AssetPair, makerAddress string) ([]types.SignedOrder, error) {
	var (
		wg       sync.WaitGroup
		base     []types.SignedOrder
		quote    []types.SignedOrder
		baseErr  error
		quoteErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		base, baseErr = c.fetchAllPages(ctx, pair.Base, pair.Quote, makerAddress)
	}()
	go func() {
		defer wg.Done()
		quote, quoteErr = c.fetchAllPages(ctx, pair.Quote, pair.Base, makerAddress)
	}()
	wg.Wait()

	if err := firstErr(baseErr, quoteErr); err != nil {
		if isAuthError(err) {
			log.WithError(err).Warn("order fetch rejected by relay, refreshing session")
			if c.refreshSession(ctx) {
				return nil, ErrSessionExpired
			}
		}
		return nil, err
	}

	return append(base, quote...), nil
}

// fetchAllPages retrieves every page of orders matching one directional
// query, preserving relay-reported order within and across pages. perPage is
// re-read from each response, so a server-side change mid-sequence still
// terminates correctly. Any page failure aborts the whole aggregation.
func (c *Client) fetchAllPages(ctx context.Context, makerAssetData, takerAssetData, makerAddress string) ([]types.SignedOrder, error) {
	var out []types.SignedOrder

	for page := 1; ; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		params := map[string]string{
			"makerAssetData": makerAssetData,
			"takerAssetData": takerAssetData,
			"page":           strconv.Itoa(page),
		}
		if makerAddress != "" {
			params["makerAddress"] = makerAddress
		}

		var resp types.OrdersResponse
		err := c.http.do(ctx, http.MethodGet, EndpointOrders, &requestOptions{
			headers: c.AuthOpts().Headers(),
			params:  params,
		}, &resp)
		if err != nil {
			return nil, err
		}
		if resp.PerPage <= 0 {
			return nil, errors.Errorf("orders page %d: invalid perPage %d", page, resp.PerPage)
		}

		for _, rec := range resp.Records {
			out = append(out, rec.Order)
		}

		lastPage := (resp.Total + resp.PerPage - 1) / resp.PerPage
		if page+1 > lastPage {
			break
		}
	}

	return out, nil
}

// Asset proxy ids the relay understands in order queries.
const (
	assetProxyERC20  = "0xf47261b0"
	assetProxyERC721 = "0x02571792"
)

// GetSellCollectibleOrders fetches orders selling a collectible (ERC721)
// against WETH. Single rate-limited call, first page only: collectible
// listings are sparse enough that one page covers them.
func (c *Client) GetSellCollectibleOrders(ctx context.Context, collectibleAddress, wethAddress string) ([]types.SignedOrder, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var resp types.OrdersResponse
	err := c.http.do(ctx, http.MethodGet, EndpointOrders, &requestOptions{
		headers: c.AuthOpts().Headers(),
		params: map[string]string{
			"makerAssetProxyId": assetProxyERC721,
			"takerAssetProxyId": assetProxyERC20,
			"makerAssetAddress": collectibleAddress,
			"takerAssetAddress": wethAddress,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	orders := make([]types.SignedOrder, 0, len(resp.Records))
	for _, rec := range resp.Records {
		orders = append(orders, rec.Order)
	}
	return orders, nil
}

// GetOrderConfig asks the relay for the fee fields of a prospective order.
// Single rate-limited call, no pagination, no implicit re-login.
func (c *Client) GetOrderConfig(ctx context.Context, req types.OrderConfigRequest) (types.OrderConfigResponse, error) {
	var cfg types.OrderConfigResponse
	if err := c.limiter.Wait(ctx); err != nil {
		return cfg, err
	}
	err := c.http.do(ctx, http.MethodPost, EndpointOrderConfig, &requestOptions{
		headers: c.AuthOpts().Headers(),
		body:    req,
	}, &cfg)
	return cfg, err
}

// SubmitOrder posts a signed order to the relay. Auth failures propagate
// as-is: writes never trigger the implicit re-login.
func (c *Client) SubmitOrder(ctx context.Context, order types.SignedOrder) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	return c.http.do(ctx, http.MethodPost, EndpointSubmitOrder, &requestOptions{
		headers: c.AuthOpts().Headers(),
		body:    order,
	}, nil)
}
