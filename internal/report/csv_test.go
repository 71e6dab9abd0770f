package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-altscan/internal/common"
	"go-altscan/pkg/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriter_DualHeader(t *testing.T) {
	w := NewWriter("BTC", "ETH")
	assert.Equal(t, []string{
		"symbol",
		"btc_start_price", "btc_end_price", "btc_current_price", "btc_roi_window", "btc_roi_current",
		"eth_start_price", "eth_end_price", "eth_current_price", "eth_roi_window", "eth_roi_current",
	}, w.DualHeader())
}

func TestWriter_WriteDual(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binance_api.csv")
	w := NewWriter("BTC", "ETH")

	rows := []models.DualResult{{
		Asset: "ADA",
		Quote1: models.PairResult{
			Asset: "ADA", Quote: "BTC",
			StartPrice: 0.000007, EndPrice: 0.0000084, CurrentPrice: 0.0000091,
			WindowROI: roi(20), CurrentROI: roi(30),
		},
		Quote2: models.PairResult{
			Asset: "ADA", Quote: "ETH",
			StartPrice: 0.0001, EndPrice: 0.00011, CurrentPrice: 0.00012,
			WindowROI: roi(10), CurrentROI: nil,
		},
	}}

	require.NoError(t, w.WriteDual(path, rows))

	records := readCSV(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, w.DualHeader(), records[0])
	assert.Equal(t, []string{
		"ADA",
		"0.000007", "0.0000084", "0.0000091", "20", "30",
		"0.0001", "0.00011", "0.00012", "10", "",
	}, records[1])
}

func TestWriter_WriteSingle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "only_one_pair.csv")
	w := NewWriter("BTC", "ETH")

	rows := []models.PairResult{
		{Asset: "XRP", Quote: "BTC", StartPrice: 1, EndPrice: 1.5, CurrentPrice: 2, WindowROI: roi(50), CurrentROI: roi(100)},
		{Asset: "DOT", Quote: "ETH", StartPrice: 2, EndPrice: 3, CurrentPrice: 1, WindowROI: roi(50), CurrentROI: roi(-50)},
	}
	require.NoError(t, w.WriteSingle(path, rows))

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"symbol", "pair_type", "start_price", "end_price", "current_price", "roi_window", "roi_current"}, records[0])
	assert.Equal(t, []string{"XRP", "BTC", "1", "1.5", "2", "50", "100"}, records[1])
	assert.Equal(t, []string{"DOT", "ETH", "2", "3", "1", "50", "-50"}, records[2])
}

func TestWriter_EmptyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter("BTC", "ETH")

	dualPath := filepath.Join(dir, "dual.csv")
	assert.ErrorIs(t, w.WriteDual(dualPath, nil), common.ErrNothingToWrite)
	assert.NoFileExists(t, dualPath)

	singlePath := filepath.Join(dir, "single.csv")
	assert.ErrorIs(t, w.WriteSingle(singlePath, []models.PairResult{}), common.ErrNothingToWrite)
	assert.NoFileExists(t, singlePath)
}

func TestWriter_CreateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := NewWriter("BTC", "ETH").WriteSingle(path, []models.PairResult{{Asset: "XRP", Quote: "BTC"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create CSV file")
}
