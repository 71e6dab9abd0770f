package common

import "time"

const (
	DefaultConfigPath = "./configs/config.yml"
	DefaultLogLevel   = "info"

	DefaultBinanceBaseURL = "https://api.binance.com/api/v3/"
	APIKeyHeader          = "X-MBX-APIKEY"

	DefaultDualOutputPath   = "binance_api.csv"
	DefaultSingleOutputPath = "only_one_pair.csv"

	QuoteBTC = "BTC"
	QuoteETH = "ETH"

	KlineInterval = "1d"
	KlineLimit    = 1000

	TopDualCount = 20
)

// Analysis window. Both bounds are inclusive calendar days in UTC.
var (
	WindowStart = time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)
	WindowEnd   = time.Date(2024, time.August, 5, 0, 0, 0, 0, time.UTC)
)
