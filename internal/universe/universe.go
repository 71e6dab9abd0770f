// Package universe splits the exchange's symbol list into assets quoted in
// both reference currencies, only the first, or only the second.
package universe

import (
	"sort"
	"strings"

	"go-altscan/pkg/models"
)

// BaseAsset strips quote from the end of symbol. It is a plain suffix match,
// not a parse of the exchange symbol grammar: "WBTCBTC" yields "WBTC", and a
// symbol equal to quote is rejected.
func BaseAsset(symbol, quote string) (string, bool) {
	if quote == "" || !strings.HasSuffix(symbol, quote) {
		return "", false
	}
	base := strings.TrimSuffix(symbol, quote)
	if base == "" {
		return "", false
	}
	return base, true
}

// Classify builds the three disjoint asset sets. Every slice is sorted so
// assets are processed in a stable order.
func Classify(tickers []models.Ticker, quote1, quote2 string) models.Universe {
	q1 := make(map[string]struct{})
	q2 := make(map[string]struct{})
	for _, t := range tickers {
		if base, ok := BaseAsset(t.Symbol, quote1); ok {
			q1[base] = struct{}{}
		}
		if base, ok := BaseAsset(t.Symbol, quote2); ok {
			q2[base] = struct{}{}
		}
	}

	u := models.Universe{
		Quote1:    quote1,
		Quote2:    quote2,
		Quote1Set: sortedKeys(q1),
		Quote2Set: sortedKeys(q2),
	}
	for _, asset := range u.Quote1Set {
		if _, ok := q2[asset]; ok {
			u.Dual = append(u.Dual, asset)
		} else {
			u.Quote1Only = append(u.Quote1Only, asset)
		}
	}
	for _, asset := range u.Quote2Set {
		if _, ok := q1[asset]; !ok {
			u.Quote2Only = append(u.Quote2Only, asset)
		}
	}
	return u
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
