package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go-altscan/internal/common"
	"go-altscan/internal/util"
	"go-altscan/pkg/models"
)

var pairColumns = []string{"start_price", "end_price", "current_price", "roi_window", "roi_current"}

// Writer exports result tables as CSV. Quote names become the column
// prefixes of the dual table ("btc_start_price", ...).
type Writer struct {
	quote1 string
	quote2 string
}

func NewWriter(quote1, quote2 string) *Writer {
	return &Writer{quote1: quote1, quote2: quote2}
}

func (w *Writer) DualHeader() []string {
	header := []string{"symbol"}
	for _, quote := range []string{w.quote1, w.quote2} {
		prefix := strings.ToLower(quote) + "_"
		for _, col := range pairColumns {
			header = append(header, prefix+col)
		}
	}
	return header
}

func SingleHeader() []string {
	return append([]string{"symbol", "pair_type"}, pairColumns...)
}

// WriteDual writes rows to path. Empty input returns common.ErrNothingToWrite
// and leaves the file system untouched.
func (w *Writer) WriteDual(path string, rows []models.DualResult) error {
	if len(rows) == 0 {
		return common.ErrNothingToWrite
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		record := append([]string{r.Asset}, pairFields(r.Quote1)...)
		records = append(records, append(record, pairFields(r.Quote2)...))
	}
	return writeCSV(path, w.DualHeader(), records)
}

// WriteSingle writes rows in the order given. Empty input returns
// common.ErrNothingToWrite.
func (w *Writer) WriteSingle(path string, rows []models.PairResult) error {
	if len(rows) == 0 {
		return common.ErrNothingToWrite
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, append([]string{r.Asset, r.Quote}, pairFields(r)...))
	}
	return writeCSV(path, SingleHeader(), records)
}

func pairFields(p models.PairResult) []string {
	return []string{
		util.FormatFloat(p.StartPrice),
		util.FormatFloat(p.EndPrice),
		util.FormatFloat(p.CurrentPrice),
		util.FormatOptional(p.WindowROI),
		util.FormatOptional(p.CurrentROI),
	}
}

func writeCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}
	return file.Close()
}
