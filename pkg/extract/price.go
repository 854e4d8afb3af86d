package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// amount matches an integer part (optionally with thousands separators)
// followed by optional decimal cents.
const amount = `(\d{1,3}(?:,\d{3})+|\d+)(\.\d{1,2})?`

// pricePatterns are tried in order; the first pattern with a match wins,
// and within it the leftmost match in the document.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*` + amount),
	regexp.MustCompile(`[¥￥]\s*` + amount),
	regexp.MustCompile(`€\s*` + amount),
	regexp.MustCompile(`(?i)\bCNY\s*` + amount),
	regexp.MustCompile(`(?i)\bUSD\s*` + amount),
}

// Price scans raw HTML for the first currency-prefixed amount and returns
// its numeric value.
func Price(html string) (float64, bool) {
	for _, re := range pricePatterns {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		digits := strings.ReplaceAll(m[1], ",", "") + m[2]
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}
