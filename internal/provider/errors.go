package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedTarget is returned when a provider is asked to check a
	// URL outside its domains.
	ErrUnsupportedTarget = errors.New("target not supported by provider")

	// ErrTimeout is returned when a fetch exceeds its deadline. It is
	// distinct from other network failures.
	ErrTimeout = errors.New("request timed out")

	// ErrUnknownProvider is returned by Registry lookups for an id that
	// was never registered.
	ErrUnknownProvider = errors.New("unknown provider")
)

// HTTPError is a non-2xx response from the upstream site.
type HTTPError struct {
	StatusCode int
	Reason     string
	// Hint carries extra context, e.g. that a reverse proxy blocked the
	// request as a bot.
	Hint string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("HTTP %d", e.StatusCode)
	if e.Reason != "" {
		msg += " " + e.Reason
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// newHTTPError builds an HTTPError from the response status line, e.g.
// "520 Web Server Returned an Unknown Error", inspecting headers for signs
// of anti-bot protection. The server's reason phrase is kept; the standard
// text for the code is used only when the server sent none.
func newHTTPError(code int, status string, header http.Header) *HTTPError {
	reason := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(status), strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}
	return &HTTPError{
		StatusCode: code,
		Reason:     reason,
		Hint:       blockHint(header),
	}
}

func blockHint(header http.Header) string {
	switch {
	case header.Get("Cf-Mitigated") != "":
		return "blocked by Cloudflare challenge"
	case header.Get("Cf-Ray") != "", strings.EqualFold(header.Get("Server"), "cloudflare"):
		return "served by Cloudflare, request may have been flagged as a bot"
	default:
		return ""
	}
}

// errorKind maps a fetch error to a short metrics label.
func errorKind(err error) string {
	var httpErr *HTTPError
	switch {
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.As(err, &httpErr):
		return "http"
	case errors.Is(err, ErrUnsupportedTarget):
		return "unsupported"
	default:
		return "network"
	}
}
