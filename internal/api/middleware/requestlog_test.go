package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		providedReqID string
		wantLogFields []string
	}{
		{
			name:   "logs GET request with generated ID",
			method: http.MethodGet,
			path:   "/api/v1/targets",
			status: http.StatusOK,
			wantLogFields: []string{
				"level=INFO",
				"method=GET",
				"path=/api/v1/targets",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:   "client error logs at warn",
			method: http.MethodPost,
			path:   "/api/v1/targets",
			status: http.StatusBadRequest,
			wantLogFields: []string{
				"level=WARN",
				"status=400",
			},
		},
		{
			name:   "server error logs at error",
			method: http.MethodPost,
			path:   "/api/v1/check",
			status: http.StatusInternalServerError,
			wantLogFields: []string{
				"level=ERROR",
				"status=500",
			},
		},
		{
			name:          "uses provided request ID",
			method:        http.MethodGet,
			path:          "/test",
			status:        http.StatusOK,
			providedReqID: "custom-req-id-123",
			wantLogFields: []string{
				"request_id=custom-req-id-123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequestLog(logger)(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			require.NoError(t, handler(c))

			logOutput := buf.String()
			for _, field := range tt.wantLogFields {
				assert.Contains(t, logOutput, field)
			}

			respID := rec.Header().Get(requestIDHeader)
			assert.NotEmpty(t, respID)
			assert.Equal(t, respID, RequestID(c))

			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}
		})
	}
}

func TestRequestLog_ReturnedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantFields []string
	}{
		{
			name:       "http error uses its code",
			err:        echo.NewHTTPError(http.StatusNotFound, "nope"),
			wantFields: []string{"status=404", "level=WARN"},
		},
		{
			name:       "plain error is a server error",
			err:        errors.New("boom"),
			wantFields: []string{"status=500", "level=ERROR", "error=boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", http.NoBody), httptest.NewRecorder())

			err := RequestLog(logger)(func(_ echo.Context) error { return tt.err })(c)
			require.ErrorIs(t, err, tt.err)

			for _, f := range tt.wantFields {
				assert.Contains(t, buf.String(), f)
			}
		})
	}
}

func TestRequestLog_ProbesAreQuiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	e := echo.New()
	handler := RequestLog(logger)(func(c echo.Context) error {
		if c.Request().URL.Path == "/readyz" {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody), httptest.NewRecorder())))
	assert.Empty(t, buf.String(), "successful probes log at debug")

	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody), httptest.NewRecorder())))
	assert.Contains(t, buf.String(), "path=/readyz")
	assert.Contains(t, buf.String(), "level=WARN")
}
