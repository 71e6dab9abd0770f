package exchanges

import (
	"context"
	"time"

	"go-altscan/pkg/models"
)

// MarketData is the read-only slice of an exchange REST API the scanner needs.
type MarketData interface {
	Tickers24h(ctx context.Context) ([]models.Ticker, error)
	Klines(ctx context.Context, symbol string, start, end time.Time) ([]models.Candle, error)
	Price(ctx context.Context, symbol string) (float64, error)
}
