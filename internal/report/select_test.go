package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-altscan/pkg/models"
)

func roi(v float64) *float64 {
	return &v
}

func dual(asset string, q1ROI *float64) models.DualResult {
	return models.DualResult{
		Asset:  asset,
		Quote1: models.PairResult{Asset: asset, Quote: "BTC", WindowROI: q1ROI},
		Quote2: models.PairResult{Asset: asset, Quote: "ETH", WindowROI: roi(1)},
	}
}

func TestTopDual_Order(t *testing.T) {
	input := []models.DualResult{
		dual("AAA", roi(5)),
		dual("BBB", nil),
		dual("CCC", roi(42)),
		dual("DDD", roi(-3)),
		dual("EEE", roi(42)),
	}

	top := TopDual(input, 20)
	require.Len(t, top, 5)

	var assets []string
	for _, r := range top {
		assets = append(assets, r.Asset)
	}
	assert.Equal(t, []string{"CCC", "EEE", "AAA", "DDD", "BBB"}, assets)

	assert.Equal(t, "AAA", input[0].Asset, "input must not be reordered")
}

func TestTopDual_Truncates(t *testing.T) {
	var input []models.DualResult
	for i := 0; i < 25; i++ {
		input = append(input, dual(fmt.Sprintf("A%02d", i), roi(float64(i))))
	}

	top := TopDual(input, 20)
	require.Len(t, top, 20)
	assert.Equal(t, "A24", top[0].Asset)
	assert.Equal(t, "A05", top[19].Asset)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, *top[i-1].Quote1.WindowROI, *top[i].Quote1.WindowROI)
	}
	assert.Len(t, input, 25)
}

func TestTopDual_Empty(t *testing.T) {
	assert.Empty(t, TopDual(nil, 20))
}
