package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-altscan/pkg/models"
)

func TestROI(t *testing.T) {
	for _, p := range []float64{0.00000123, 1, 42.5, 65000, -3} {
		roi, ok := ROI(p, p)
		assert.True(t, ok)
		assert.Equal(t, 0.0, roi, "roi(p, p) for p=%v", p)

		roi, ok = ROI(p, 2*p)
		assert.True(t, ok)
		assert.InDelta(t, 100.0, roi, 1e-9, "roi(p, 2p) for p=%v", p)
	}

	roi, ok := ROI(4, 3)
	assert.True(t, ok)
	assert.Equal(t, -25.0, roi)
}

func TestROI_ZeroStartUndefined(t *testing.T) {
	for _, p := range []float64{0, 1, 100} {
		_, ok := ROI(0, p)
		assert.False(t, ok)
	}
	assert.Nil(t, roiPtr(0, 5))
	assert.NotNil(t, roiPtr(5, 0))
}

func day(d int) time.Time {
	return time.Date(2024, time.July, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowLows(t *testing.T) {
	window := models.Window{Start: day(5), End: day(10)}

	tests := []struct {
		name      string
		candles   []models.Candle
		wantStart float64
		wantEnd   float64
		wantOK    bool
	}{
		{
			name:      "exact window",
			candles:   []models.Candle{{OpenTime: day(5), Low: 1}, {OpenTime: day(7), Low: 2}, {OpenTime: day(10), Low: 3}},
			wantStart: 1, wantEnd: 3, wantOK: true,
		},
		{
			name:      "boundary candles outside window are skipped",
			candles:   []models.Candle{{OpenTime: day(4), Low: 9}, {OpenTime: day(6), Low: 2}, {OpenTime: day(9), Low: 4}, {OpenTime: day(11), Low: 8}},
			wantStart: 2, wantEnd: 4, wantOK: true,
		},
		{
			name:      "single candle is both start and end",
			candles:   []models.Candle{{OpenTime: day(8), Low: 5}},
			wantStart: 5, wantEnd: 5, wantOK: true,
		},
		{
			name:    "empty",
			candles: nil,
		},
		{
			name:    "all after window",
			candles: []models.Candle{{OpenTime: day(11), Low: 1}, {OpenTime: day(12), Low: 2}},
		},
		{
			name:    "straddling without a candle inside",
			candles: []models.Candle{{OpenTime: day(1), Low: 1}, {OpenTime: day(11), Low: 2}},
		},
		{
			name:    "all before window",
			candles: []models.Candle{{OpenTime: day(1), Low: 1}, {OpenTime: day(2), Low: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := WindowLows(tt.candles, window)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantStart, start)
				assert.Equal(t, tt.wantEnd, end)
			}
		})
	}
}
