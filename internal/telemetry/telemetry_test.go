package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tel, err := Setup(context.Background(), Config{}, logger)
	require.NoError(t, err)
	assert.Nil(t, tel.TracerProvider)
	assert.Nil(t, tel.MeterProvider)
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestNewResource(t *testing.T) {
	t.Parallel()

	r, err := newResource(Config{ServiceName: "probe", Version: "1.2.3"})
	require.NoError(t, err)

	attrs := map[string]string{}
	for _, kv := range r.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "probe", attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])
}
