package service

import (
	"context"
	"errors"
	"fmt"

	"go-altscan/internal/analysis"
	"go-altscan/internal/common"
	"go-altscan/internal/config"
	"go-altscan/internal/exchanges"
	"go-altscan/internal/report"
	"go-altscan/internal/universe"
	"go-altscan/internal/util"
	"go-altscan/pkg/models"
)

// Summary describes what a scan produced.
type Summary struct {
	Universe   models.Universe
	Dual       []models.DualResult
	Single     []models.PairResult
	DualPath   string
	SinglePath string
}

// Scanner runs discovery, retrieval, ROI computation and export in order.
// Nothing runs concurrently.
type Scanner struct {
	config    *config.Config
	market    exchanges.MarketData
	processor *analysis.Processor
	writer    *report.Writer
	window    models.Window
	quote1    string
	quote2    string
	topN      int
	logger    *util.Logger
}

func NewScanner(cfg *config.Config, market exchanges.MarketData) *Scanner {
	return &Scanner{
		config:    cfg,
		market:    market,
		processor: analysis.NewProcessor(market, common.QuoteBTC, common.QuoteETH),
		writer:    report.NewWriter(common.QuoteBTC, common.QuoteETH),
		window:    models.Window{Start: common.WindowStart, End: common.WindowEnd},
		quote1:    common.QuoteBTC,
		quote2:    common.QuoteETH,
		topN:      common.TopDualCount,
		logger:    util.NewLogger(),
	}
}

// Run executes one full scan. A returned error has already been logged.
// Per-asset failures are logged and skipped.
func (s *Scanner) Run(ctx context.Context) (*Summary, error) {
	u, err := s.discover(ctx)
	if err != nil {
		s.logger.Error(err, common.ErrCodeUniverseFetchFailed, common.ErrMsgUniverseFetchFailed, "No altcoin data fetched")
		return nil, err
	}

	summary := &Summary{Universe: u}

	for _, asset := range u.Dual {
		if err := ctx.Err(); err != nil {
			return nil, s.aborted(err)
		}
		s.logger.Info("Processing asset", "asset", asset)
		result, err := s.processor.ProcessDual(ctx, asset, s.window)
		if err != nil {
			s.dropped(asset, err)
			continue
		}
		summary.Dual = append(summary.Dual, *result)
	}

	singles := []struct {
		quote  string
		assets []string
	}{
		{s.quote1, u.Quote1Only},
		{s.quote2, u.Quote2Only},
	}
	for _, group := range singles {
		for _, asset := range group.assets {
			if err := ctx.Err(); err != nil {
				return nil, s.aborted(err)
			}
			s.logger.Info("Processing asset with single pair", "asset", asset, "quote", group.quote)
			result, err := s.processor.ProcessSingle(ctx, asset, group.quote, s.window)
			if err != nil {
				s.dropped(asset, err)
				continue
			}
			summary.Single = append(summary.Single, *result)
		}
	}

	if err := s.export(summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *Scanner) discover(ctx context.Context) (models.Universe, error) {
	tickers, err := s.market.Tickers24h(ctx)
	if err != nil {
		return models.Universe{}, fmt.Errorf("universe discovery: %w", err)
	}

	u := universe.Classify(tickers, s.quote1, s.quote2)
	s.logger.Info("Universe classified",
		"symbols", len(tickers),
		"dual", len(u.Dual),
		"quote1_only", len(u.Quote1Only),
		"quote2_only", len(u.Quote2Only),
	)
	return u, nil
}

func (s *Scanner) export(summary *Summary) error {
	top := report.TopDual(summary.Dual, s.topN)
	s.logger.Info("Assets with both pairs processed", "qualified", len(summary.Dual), "kept", len(top))
	summary.Dual = top

	switch err := s.writer.WriteDual(s.config.GetDualPath(), top); {
	case errors.Is(err, common.ErrNothingToWrite):
		s.logger.Info("No assets with higher lows on both pairs were found")
	case err != nil:
		s.logger.Error(err, common.ErrCodeReportWriteFailed, common.ErrMsgReportWriteFailed, "Failed to save dual pair table", "path", s.config.GetDualPath())
		return err
	default:
		summary.DualPath = s.config.GetDualPath()
		s.logger.Info("CSV file saved", "path", summary.DualPath, "rows", len(top))
	}

	s.logger.Info("Assets with a single pair processed", "qualified", len(summary.Single))

	switch err := s.writer.WriteSingle(s.config.GetSinglePath(), summary.Single); {
	case errors.Is(err, common.ErrNothingToWrite):
		s.logger.Info("No assets with higher lows on a single pair were found")
	case err != nil:
		s.logger.Error(err, common.ErrCodeReportWriteFailed, common.ErrMsgReportWriteFailed, "Failed to save single pair table", "path", s.config.GetSinglePath())
		return err
	default:
		summary.SinglePath = s.config.GetSinglePath()
		s.logger.Info("CSV file saved", "path", summary.SinglePath, "rows", len(summary.Single))
	}

	return nil
}

func (s *Scanner) aborted(err error) error {
	s.logger.Error(err, common.ErrCodeScanFailed, common.ErrMsgScanFailed, "Scan cancelled")
	return err
}

func (s *Scanner) dropped(asset string, err error) {
	if errors.Is(err, common.ErrNotHigherLow) {
		s.logger.Debug("Asset dropped, no higher low", "asset", asset)
		return
	}
	s.logger.Debug("Asset dropped", "asset", asset, "reason", err.Error())
}
