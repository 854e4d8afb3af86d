package extract

import (
	"fmt"
	"strings"
	"time"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// outOfStockKeywords are lower-case markers of an unavailable item.
var outOfStockKeywords = []string{
	`class="errorbox"`,
	"out of stock",
	"sold out",
	"currently unavailable",
	"缺货",
	"库存不足",
	"售罄",
	"已售完",
}

// inStockKeywords are lower-case markers of a purchasable item.
var inStockKeywords = []string{
	`class="btn-success"`,
	"add to cart",
	"order now",
	"buy now",
	"立即购买",
	"加入购物车",
	"立即订购",
}

// ParseHTMLResponse classifies a page by keyword. Out-of-stock evidence
// overrides in-stock evidence when both appear. A page matching neither
// list fails with ErrNoRecognizablePattern rather than reporting false.
func ParseHTMLResponse(html string) (*domain.StockStatus, error) {
	lower := strings.ToLower(html)

	hasOut := containsAny(lower, outOfStockKeywords)
	hasIn := containsAny(lower, inStockKeywords)

	if !hasOut && !hasIn {
		return nil, fmt.Errorf("%w (checked %d in-stock and %d out-of-stock keywords)",
			ErrNoRecognizablePattern, len(inStockKeywords), len(outOfStockKeywords))
	}

	status := &domain.StockStatus{
		InStock:   hasIn && !hasOut,
		RawSource: truncateRunes(html, maxRawSource),
	}
	if p, ok := Price(html); ok {
		status.Price = &p
	}
	status.Timestamp = time.Now().UTC()

	return status, nil
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
