package report

import (
	"sort"

	"go-altscan/pkg/models"
)

// TopDual orders results by the first quote leg's window ROI, highest first,
// and keeps at most n. Undefined ROI sorts last. The input is not modified.
func TopDual(results []models.DualResult, n int) []models.DualResult {
	sorted := make([]models.DualResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		return roiGreater(sorted[i].Quote1.WindowROI, sorted[j].Quote1.WindowROI)
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func roiGreater(a, b *float64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}
