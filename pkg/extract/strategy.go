// Package extract turns raw product-page responses (JSON APIs, HTML with
// embedded JSON, or plain HTML) into a normalized domain.StockStatus.
// Every function in this package is pure and safe for concurrent use.
package extract

import (
	"fmt"
	"strings"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// Strategy labels, used in aggregated errors and metrics.
const (
	LabelAPI          = "api"
	LabelEmbeddedJSON = "embedded-json"
	LabelHTML         = "html"
)

// ParseFunc parses an already-fetched response body.
type ParseFunc func(body string) (*domain.StockStatus, error)

// step is one labeled entry of the automatic fallback chain.
type step struct {
	label string
	parse ParseFunc
}

// autoChain is tried in order: structured sources are more reliable than
// keyword-matched HTML and are preferred whenever the body plausibly
// contains them.
var autoChain = []step{
	{label: LabelAPI, parse: parseAPIShaped},
	{label: LabelEmbeddedJSON, parse: ParseEmbeddedJSON},
	{label: LabelHTML, parse: ParseHTMLResponse},
}

// Result is a successful parse together with the strategy that produced it.
type Result struct {
	Status   *domain.StockStatus
	Strategy string
}

// Parse interprets body according to src. An explicit source type runs
// exactly one parser and returns its error unchanged. SourceAuto (or empty)
// walks the fallback chain and, if every step fails, returns an
// *AllStrategiesFailedError describing each attempt.
func Parse(body string, src domain.SourceType) (*Result, error) {
	switch src {
	case domain.SourceAPI:
		return single(LabelAPI, decodeAPIBody, body)
	case domain.SourceJSON:
		return single(LabelEmbeddedJSON, ParseEmbeddedJSON, body)
	case domain.SourceHTML:
		return single(LabelHTML, ParseHTMLResponse, body)
	case domain.SourceAuto, "":
		return parseAuto(body)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, src)
	}
}

func single(label string, parse ParseFunc, body string) (*Result, error) {
	status, err := parse(body)
	if err != nil {
		return nil, err
	}
	return &Result{Status: status, Strategy: label}, nil
}

func parseAuto(body string) (*Result, error) {
	var failed []AttemptError

	for _, s := range autoChain {
		status, err := s.parse(body)
		if err == nil {
			return &Result{Status: status, Strategy: s.label}, nil
		}
		failed = append(failed, AttemptError{Label: s.label, Err: err})
	}

	return nil, &AllStrategiesFailedError{Attempts: failed}
}

// parseAPIShaped only attempts JSON decoding when the trimmed body opens
// like a JSON document.
func parseAPIShaped(body string) (*domain.StockStatus, error) {
	trimmed := strings.TrimSpace(body)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return nil, ErrNotJSONShaped
	}
	return decodeAPIBody(trimmed)
}
