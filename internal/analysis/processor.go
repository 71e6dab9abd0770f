package analysis

import (
	"context"
	"fmt"

	"go-altscan/internal/common"
	"go-altscan/internal/exchanges"
	"go-altscan/internal/util"
	"go-altscan/pkg/models"
)

// Processor turns raw market data for one asset into pair and asset results.
type Processor struct {
	market exchanges.MarketData
	quote1 string
	quote2 string
	logger *util.Logger
}

func NewProcessor(market exchanges.MarketData, quote1, quote2 string) *Processor {
	return &Processor{
		market: market,
		quote1: quote1,
		quote2: quote2,
		logger: util.NewLogger(),
	}
}

func PairSymbol(asset, quote string) string {
	return asset + quote
}

// ProcessPair fetches candles and the current price for asset/quote and
// computes both ROI figures.
func (p *Processor) ProcessPair(ctx context.Context, asset, quote string, window models.Window) (*models.PairResult, error) {
	pair := PairSymbol(asset, quote)

	candles, err := p.market.Klines(ctx, pair, window.Start, window.End)
	if err != nil {
		p.logger.Error(err, common.ErrCodeKlinesFetchFailed, common.ErrMsgKlinesFetchFailed, "Could not fetch historical data", "pair", pair)
		return nil, err
	}

	start, end, ok := WindowLows(candles, window)
	p.logger.Debug("Window lows", "pair", pair, "candles", len(candles), "start_price", start, "end_price", end, "found", ok)
	if !ok {
		p.logger.Warn(common.ErrCodeNoWindowData, common.ErrMsgNoWindowData, "No window prices", "pair", pair, "candles", len(candles))
		return nil, fmt.Errorf("%s: %w", pair, common.ErrNoWindowData)
	}

	current, err := p.market.Price(ctx, pair)
	if err != nil {
		p.logger.Error(err, common.ErrCodePriceFetchFailed, common.ErrMsgPriceFetchFailed, "Could not fetch current price", "pair", pair)
		return nil, err
	}

	result := &models.PairResult{
		Asset:        asset,
		Quote:        quote,
		StartPrice:   start,
		EndPrice:     end,
		CurrentPrice: current,
		WindowROI:    roiPtr(start, end),
		CurrentROI:   roiPtr(end, current),
	}
	if result.WindowROI == nil || result.CurrentROI == nil {
		p.logger.Warn(common.ErrCodeUndefinedROI, common.ErrMsgUndefinedROI, "ROI left empty", "pair", pair)
	}

	p.logger.Info("Processed pair",
		"pair", pair,
		"start_price", start,
		"end_price", end,
		"current_price", current,
		"roi_window", result.WindowROI,
		"roi_current", result.CurrentROI,
	)
	return result, nil
}

// ProcessDual evaluates both quote legs. The asset is retained only when
// both legs succeed and both show a higher low; otherwise the returned
// error explains why it was dropped.
func (p *Processor) ProcessDual(ctx context.Context, asset string, window models.Window) (*models.DualResult, error) {
	leg1, err1 := p.ProcessPair(ctx, asset, p.quote1, window)
	leg2, err2 := p.ProcessPair(ctx, asset, p.quote2, window)
	if err1 != nil {
		return nil, err1
	}
	if err2 != nil {
		return nil, err2
	}

	if !leg1.HigherLow() || !leg2.HigherLow() {
		return nil, fmt.Errorf("%s: %w", asset, common.ErrNotHigherLow)
	}

	p.logger.Info("Higher lows on both pairs", "asset", asset, "quote1", p.quote1, "quote2", p.quote2)
	return &models.DualResult{Asset: asset, Quote1: *leg1, Quote2: *leg2}, nil
}

// ProcessSingle evaluates an asset listed against a single quote currency.
func (p *Processor) ProcessSingle(ctx context.Context, asset, quote string, window models.Window) (*models.PairResult, error) {
	result, err := p.ProcessPair(ctx, asset, quote, window)
	if err != nil {
		return nil, err
	}
	if !result.HigherLow() {
		return nil, fmt.Errorf("%s: %w", PairSymbol(asset, quote), common.ErrNotHigherLow)
	}

	p.logger.Info("Higher low on single pair", "asset", asset, "quote", quote)
	return result, nil
}
