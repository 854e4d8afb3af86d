package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

const (
	jsonScriptType     = "application/json"
	initialStateMarker = "window.__INITIAL_STATE__"
)

// ParseEmbeddedJSON recovers a JSON payload embedded in an HTML page and
// parses it with ParseAPIResponse. It looks first for a
// <script type="application/json"> element and then for an assignment to
// window.__INITIAL_STATE__, whose object is cut out with BalancedJSON so
// that "};" inside string values does not truncate it.
func ParseEmbeddedJSON(html string) (*domain.StockStatus, error) {
	payload, source, err := findEmbeddedJSON(html)
	if err != nil {
		return nil, err
	}

	var data any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrMalformedEmbeddedJSON, source, err)
	}

	return ParseAPIResponse(data)
}

// findEmbeddedJSON returns the raw JSON text and a short description of
// where it was found.
func findEmbeddedJSON(html string) (string, string, error) {
	if body, ok := jsonScriptBody(html); ok {
		return body, "script tag", nil
	}

	idx := strings.Index(html, initialStateMarker)
	if idx < 0 {
		return "", "", ErrNoEmbeddedJSON
	}

	rest := html[idx+len(initialStateMarker):]
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return "", "", fmt.Errorf("%w: %s has no assignment", ErrNoEmbeddedJSON, initialStateMarker)
	}

	obj, ok := BalancedJSON(rest[eq+1:])
	if !ok {
		return "", "", fmt.Errorf("%w in %s: unbalanced braces", ErrMalformedEmbeddedJSON, initialStateMarker)
	}

	return obj, initialStateMarker, nil
}

// jsonScriptBody returns the text of the first script element whose type
// is application/json. Tag and attribute matching is case-insensitive.
func jsonScriptBody(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	var (
		body  string
		found bool
	)
	doc.Find("script[type]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		typ, _ := s.Attr("type")
		if !strings.EqualFold(strings.TrimSpace(typ), jsonScriptType) {
			return true
		}
		body = s.Text()
		found = true
		return false
	})

	return body, found
}
