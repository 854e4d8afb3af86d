package extract

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// maxRawSource bounds StockStatus.RawSource, in characters.
const maxRawSource = 500

// Field names read from API payloads. Anything else in the object is ignored.
const (
	fieldAvailable = "available"
	fieldInStock   = "inStock"
	fieldStock     = "stock"
	fieldPrice     = "price"
)

// ParseAPIResponse derives a StockStatus from a decoded JSON object.
//
// An explicit availability flag wins over an inferred one: "available" is
// used first, then "inStock", and only when both are absent does a positive
// "stock" count imply availability. With no signal at all the item is
// reported out of stock.
func ParseAPIResponse(data any) (*domain.StockStatus, error) {
	obj, ok := data.(map[string]any)
	if !ok || obj == nil {
		return nil, fmt.Errorf("%w (got %s)", ErrInvalidResponse, jsonKind(data))
	}

	available, hasAvailable := NormalizeBool(obj[fieldAvailable])
	inStock, hasInStock := NormalizeBool(obj[fieldInStock])
	stock, hasStock := NormalizeNumber(obj[fieldStock])
	price, hasPrice := NormalizeNumber(obj[fieldPrice])

	status := &domain.StockStatus{}
	switch {
	case hasAvailable:
		status.InStock = available
	case hasInStock:
		status.InStock = inStock
	default:
		status.InStock = hasStock && stock > 0
	}

	if hasStock {
		status.Qty = &stock
	}
	if hasPrice {
		status.Price = &price
	}
	status.Timestamp = time.Now().UTC()

	return status, nil
}

// decodeAPIBody decodes body as JSON and hands the result to ParseAPIResponse.
func decodeAPIBody(body string) (*domain.StockStatus, error) {
	var data any
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return nil, fmt.Errorf("decoding api response: %w", err)
	}
	return ParseAPIResponse(data)
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// truncateRunes returns at most n characters of s without splitting a
// multi-byte sequence.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
