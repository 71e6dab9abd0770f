package models

import "time"

// Ticker is one entry of the 24h ticker snapshot. Only Symbol is required.
type Ticker struct {
	Symbol      string `json:"symbol"`
	LastPrice   string `json:"lastPrice"`
	QuoteVolume string `json:"quoteVolume"`
}

// Universe partitions base assets by the quote currencies they trade against.
type Universe struct {
	Quote1     string
	Quote2     string
	Quote1Set  []string
	Quote2Set  []string
	Dual       []string
	Quote1Only []string
	Quote2Only []string
}

// Candle is one daily kline, the 12 positional fields in exchange order.
type Candle struct {
	OpenTime            time.Time
	Open                float64
	High                float64
	Low                 float64
	Close               float64
	Volume              float64
	CloseTime           time.Time
	QuoteAssetVolume    float64
	NumberOfTrades      int64
	TakerBuyBaseVolume  float64
	TakerBuyQuoteVolume float64
	Ignore              string
}

// Window is a closed calendar interval.
type Window struct {
	Start time.Time
	End   time.Time
}

type PairResult struct {
	Asset        string
	Quote        string
	StartPrice   float64
	EndPrice     float64
	CurrentPrice float64
	// nil when StartPrice is zero
	WindowROI *float64
	// nil when EndPrice is zero
	CurrentROI *float64
}

// HigherLow reports whether the window closed on a higher low than it opened.
func (p PairResult) HigherLow() bool {
	return p.EndPrice > p.StartPrice
}

type DualResult struct {
	Asset  string
	Quote1 PairResult
	Quote2 PairResult
}
