package exchanges

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-altscan/internal/common"
	"go-altscan/internal/config"
	"go-altscan/internal/util"
	"go-altscan/pkg/models"
)

const (
	tickers24hEndpoint = "ticker/24hr"
	klinesEndpoint     = "klines"
	priceEndpoint      = "ticker/price"

	klineFields = 12
)

// Binance talks to the public spot REST API. It holds no mutable state and
// every call blocks until the exchange answers.
type Binance struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *util.Logger
}

// NewBinance builds a client from cfg. A nil client falls back to a plain
// http.Client with the library default timeouts.
func NewBinance(cfg *config.Config, client *http.Client) *Binance {
	if client == nil {
		client = &http.Client{}
	}
	return &Binance{
		client:  client,
		baseURL: cfg.GetBaseURL(),
		apiKey:  cfg.Exchange.APIKey,
		logger:  util.NewLogger(),
	}
}

// Tickers24h returns the 24h statistics snapshot for every listed symbol.
func (b *Binance) Tickers24h(ctx context.Context) ([]models.Ticker, error) {
	var tickers []models.Ticker
	if err := b.get(ctx, tickers24hEndpoint, nil, &tickers); err != nil {
		return nil, fmt.Errorf("binance tickers: %w", err)
	}
	// A null body decodes without error but is not a symbol list.
	if tickers == nil {
		return nil, fmt.Errorf("binance tickers: %w: null body", common.ErrUnexpectedResponse)
	}
	return tickers, nil
}

// Klines returns up to common.KlineLimit daily candles for symbol between
// start and end. Longer windows are truncated by the exchange.
func (b *Binance) Klines(ctx context.Context, symbol string, start, end time.Time) ([]models.Candle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", common.KlineInterval)
	params.Set("startTime", strconv.FormatInt(util.ToMillis(start), 10))
	params.Set("endTime", strconv.FormatInt(util.ToMillis(end), 10))
	params.Set("limit", strconv.Itoa(common.KlineLimit))

	var rows [][]json.RawMessage
	if err := b.get(ctx, klinesEndpoint, params, &rows); err != nil {
		return nil, fmt.Errorf("binance klines %s: %w", symbol, err)
	}

	candles := make([]models.Candle, 0, len(rows))
	for i, row := range rows {
		candle, err := parseKline(row)
		if err != nil {
			return nil, fmt.Errorf("binance klines %s row %d: %w", symbol, i, err)
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

// Price returns the latest traded price. Every failure maps to
// common.ErrPriceUnavailable.
func (b *Binance) Price(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var resp struct {
		Symbol string  `json:"symbol"`
		Price  *string `json:"price"`
	}
	if err := b.get(ctx, priceEndpoint, params, &resp); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", common.ErrPriceUnavailable, symbol, err)
	}
	if resp.Price == nil {
		return 0, fmt.Errorf("%w: %s: no price field", common.ErrPriceUnavailable, symbol)
	}

	price, err := util.ParseDecimal(*resp.Price)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", common.ErrPriceUnavailable, symbol, err)
	}
	return price, nil
}

func (b *Binance) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	fullURL := b.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(common.APIKeyHeader, b.apiKey)

	b.logger.Debug("Binance request", "url", fullURL)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			b.logger.Error(err, common.ErrCodeResponseBodyClose, common.ErrMsgResponseBodyClose, "Failed to close Binance response body", "endpoint", endpoint)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API error: status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	return nil
}

// parseKline decodes one positional kline row:
// [openTime, open, high, low, close, volume, closeTime, quoteVolume, trades, takerBase, takerQuote, ignore]
func parseKline(row []json.RawMessage) (models.Candle, error) {
	if len(row) < klineFields {
		return models.Candle{}, fmt.Errorf("%w: %d fields, want %d", common.ErrUnexpectedResponse, len(row), klineFields)
	}

	var (
		openTime, closeTime, trades int64
		decimals                    [8]string
		ignore                      string
	)
	ints := map[int]*int64{0: &openTime, 6: &closeTime, 8: &trades}
	strs := map[int]*string{
		1: &decimals[0], 2: &decimals[1], 3: &decimals[2], 4: &decimals[3], 5: &decimals[4],
		7: &decimals[5], 9: &decimals[6], 10: &decimals[7], 11: &ignore,
	}
	for i, dst := range ints {
		if err := json.Unmarshal(row[i], dst); err != nil {
			return models.Candle{}, fmt.Errorf("%w: field %d: %v", common.ErrUnexpectedResponse, i, err)
		}
	}
	for i, dst := range strs {
		if err := json.Unmarshal(row[i], dst); err != nil {
			return models.Candle{}, fmt.Errorf("%w: field %d: %v", common.ErrUnexpectedResponse, i, err)
		}
	}

	var values [8]float64
	for i, s := range decimals {
		v, err := util.ParseDecimal(s)
		if err != nil {
			return models.Candle{}, fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
		}
		values[i] = v
	}

	return models.Candle{
		OpenTime:            time.UnixMilli(openTime).UTC(),
		Open:                values[0],
		High:                values[1],
		Low:                 values[2],
		Close:               values[3],
		Volume:              values[4],
		CloseTime:           time.UnixMilli(closeTime).UTC(),
		QuoteAssetVolume:    values[5],
		NumberOfTrades:      trades,
		TakerBuyBaseVolume:  values[6],
		TakerBuyQuoteVolume: values[7],
		Ignore:              ignore,
	}, nil
}
