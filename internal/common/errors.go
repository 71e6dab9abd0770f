package common

import "errors"

type ErrorCode string
type ErrorMessage string

const (
	ErrCodeConfigLoadFailed    ErrorCode = "CONFIG_LOAD_FAILED"
	ErrCodeUniverseFetchFailed ErrorCode = "UNIVERSE_FETCH_FAILED"
	ErrCodeKlinesFetchFailed   ErrorCode = "KLINES_FETCH_FAILED"
	ErrCodePriceFetchFailed    ErrorCode = "PRICE_FETCH_FAILED"
	ErrCodeNoWindowData        ErrorCode = "NO_WINDOW_DATA"
	ErrCodeUndefinedROI        ErrorCode = "UNDEFINED_ROI"
	ErrCodeReportWriteFailed   ErrorCode = "REPORT_WRITE_FAILED"
	ErrCodeResponseBodyClose   ErrorCode = "RESPONSE_BODY_CLOSE_FAILED"
	ErrCodeInvalidLogLevel     ErrorCode = "INVALID_LOG_LEVEL"
	ErrCodeScanFailed          ErrorCode = "SCAN_FAILED"
	ErrCodeInvalidArguments    ErrorCode = "INVALID_ARGUMENTS"
)

const (
	ErrMsgConfigLoadFailed    ErrorMessage = "Failed to load configuration"
	ErrMsgUniverseFetchFailed ErrorMessage = "Failed to fetch altcoin universe"
	ErrMsgKlinesFetchFailed   ErrorMessage = "Failed to fetch historical klines"
	ErrMsgPriceFetchFailed    ErrorMessage = "Failed to fetch current price"
	ErrMsgNoWindowData        ErrorMessage = "No candles inside the analysis window"
	ErrMsgUndefinedROI        ErrorMessage = "ROI undefined for zero base price"
	ErrMsgReportWriteFailed   ErrorMessage = "Failed to write report"
	ErrMsgResponseBodyClose   ErrorMessage = "failed to close HTTP response body"
	ErrMsgInvalidLogLevel     ErrorMessage = "Invalid log level, use: debug, info, warn, error"
	ErrMsgScanFailed          ErrorMessage = "Scan aborted"
	ErrMsgInvalidArguments    ErrorMessage = "Invalid command line arguments"
)

var (
	ErrUnexpectedResponse = errors.New("unexpected response format")
	ErrPriceUnavailable   = errors.New("price unavailable")
	ErrNoWindowData       = errors.New("no candles inside window")
	ErrNothingToWrite     = errors.New("no rows to write")
	ErrNotHigherLow       = errors.New("window end low not above window start low")
)

func (e ErrorCode) String() string {
	return string(e)
}

func (m ErrorMessage) String() string {
	return string(m)
}
