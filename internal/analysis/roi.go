package analysis

import (
	"go-altscan/pkg/models"
)

// ROI returns the percentage change from start to end. ok is false when
// start is zero and the change is undefined.
func ROI(start, end float64) (roi float64, ok bool) {
	if start == 0 {
		return 0, false
	}
	return (end - start) / start * 100, true
}

func roiPtr(start, end float64) *float64 {
	roi, ok := ROI(start, end)
	if !ok {
		return nil
	}
	return &roi
}

// WindowLows returns the lows of the earliest and latest candles whose open
// time falls inside the window, both bounds inclusive. Candles are expected
// in ascending open time order.
func WindowLows(candles []models.Candle, window models.Window) (start, end float64, ok bool) {
	for _, c := range candles {
		if c.OpenTime.Before(window.Start) || c.OpenTime.After(window.End) {
			continue
		}
		if !ok {
			start = c.Low
			ok = true
		}
		end = c.Low
	}
	return start, end, ok
}
