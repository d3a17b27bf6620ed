// relay-orderbook fetches the two-sided order book for an asset pair from a
// trading relay and prints the best ask price.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/veridex/relaykit/pkg/config"
	"github.com/veridex/relaykit/pkg/logger"
	"github.com/veridex/relaykit/relay/client"
	"github.com/veridex/relaykit/relay/types"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("relay-orderbook failed")
	}
}

func run() error {
	var (
		configPath    = flag.String("config", "", "path to YAML config (optional)")
		baseAsset     = flag.String("base", "", "base token asset data")
		baseDecimals  = flag.Int("base-decimals", 18, "base token decimals")
		quoteAsset    = flag.String("quote", "", "quote token asset data")
		quoteDecimals = flag.Int("quote-decimals", 18, "quote token decimals")
		account       = flag.String("account", "", "only show orders made by this account")
	)
	flag.Parse()

	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger.Setup(cfg.Log)

	if *baseAsset == "" || *quoteAsset == "" {
		return errors.New("-base and -quote are required")
	}

	var creds *client.Credentials
	if email := os.Getenv("RELAY_EMAIL"); email != "" {
		creds = &client.Credentials{
			Email:    email,
			Password: os.Getenv("RELAY_PASSWORD"),
		}
	}

	rc := client.New(client.Options{
		BaseURL:     cfg.Relay.BaseURL,
		RPS:         cfg.Relay.RPS,
		Timeout:     time.Duration(cfg.Relay.TimeoutSeconds) * time.Second,
		Credentials: creds,
	})

	ctx := context.Background()

	if creds != nil {
		if _, err := rc.Login(ctx, creds.Email, creds.Password); err != nil {
			return errors.Wrap(err, "login")
		}
		logrus.Info("logged in")
	}

	base := types.Token{AssetData: *baseAsset, Decimals: int32(*baseDecimals)}
	quote := types.Token{AssetData: *quoteAsset, Decimals: int32(*quoteDecimals)}
	pair := types.NewAssetPair(base, quote)

	var orders []types.SignedOrder
	if *account != "" {
		orders, err = rc.GetUserOrders(ctx, *account, pair)
	} else {
		orders, err = rc.GetOrderBook(ctx, pair)
	}
	if errors.Is(err, client.ErrSessionExpired) {
		// Session was refreshed behind our back, one retry is enough.
		if *account != "" {
			orders, err = rc.GetUserOrders(ctx, *account, pair)
		} else {
			orders, err = rc.GetOrderBook(ctx, pair)
		}
	}
	if err != nil {
		return errors.Wrap(err, "fetch orders")
	}

	fmt.Printf("%d orders on the book\n", len(orders))
	for _, o := range orders {
		fmt.Printf("  maker=%s makerAmount=%s takerAmount=%s\n", o.MakerAddress, o.MakerAssetAmount, o.TakerAssetAmount)
	}

	price, ok, err := rc.GetBestPrice(ctx, base, quote)
	if err != nil {
		return errors.Wrap(err, "best price")
	}
	if !ok {
		fmt.Println("no asks, no price")
		return nil
	}
	fmt.Printf("best ask price: %s\n", price.String())
	return nil
}
