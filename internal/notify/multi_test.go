package notify_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/laiwenqiang/vps-stock-monitor/internal/metrics"
	"github.com/laiwenqiang/vps-stock-monitor/internal/notify"
	notifymocks "github.com/laiwenqiang/vps-stock-monitor/internal/notify/mocks"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func samplePayload() *notify.Payload {
	price := 12.5
	return &notify.Payload{
		Target: &domain.MonitorTarget{ID: "t-9", Provider: "dmit", URL: "https://dmit.io/x"},
		Status: &domain.StockStatus{InStock: true, Price: &price},
		Reason: "Restocked",
	}
}

func getNotificationHistogramSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestMulti_Send(t *testing.T) {
	t.Parallel()

	p := samplePayload()

	first := notifymocks.NewMockNotifier(t)
	first.EXPECT().Name().Return("multi-test-first").Maybe()
	first.EXPECT().Send(mock.Anything, p).Return(errors.New("boom")).Once()

	second := notifymocks.NewMockNotifier(t)
	second.EXPECT().Name().Return("multi-test-second").Maybe()
	second.EXPECT().Send(mock.Anything, p).Return(nil).Once()

	failuresBefore := ptestutil.ToFloat64(metrics.NotificationFailuresTotal.WithLabelValues("multi-test-first"))
	sentBefore := ptestutil.ToFloat64(metrics.NotificationsSentTotal.WithLabelValues("multi-test-second"))
	samplesBefore := getNotificationHistogramSampleCount()

	m := notify.NewMulti(quietLogger(), first, second)
	assert.Equal(t, 2, m.Len())

	err := m.Send(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multi-test-first: boom")

	assert.InDelta(t, failuresBefore+1,
		ptestutil.ToFloat64(metrics.NotificationFailuresTotal.WithLabelValues("multi-test-first")), 0.001)
	assert.InDelta(t, sentBefore+1,
		ptestutil.ToFloat64(metrics.NotificationsSentTotal.WithLabelValues("multi-test-second")), 0.001)
	assert.GreaterOrEqual(t, getNotificationHistogramSampleCount(), samplesBefore+2)
}

func TestMulti_Send_AllSucceed(t *testing.T) {
	t.Parallel()

	n := notifymocks.NewMockNotifier(t)
	n.EXPECT().Name().Return("multi-test-ok").Maybe()
	n.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Times(2)

	m := notify.NewMulti(nil, n, n)
	require.NoError(t, m.Send(context.Background(), samplePayload()))
}

func TestMulti_Send_Empty(t *testing.T) {
	t.Parallel()

	m := notify.NewMulti(quietLogger())
	assert.Equal(t, 0, m.Len())
	assert.NoError(t, m.Send(context.Background(), samplePayload()))
}

func TestLogNotifier_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := notify.NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))
	assert.Equal(t, "log", n.Name())

	require.NoError(t, n.Send(context.Background(), samplePayload()))

	out := buf.String()
	assert.Contains(t, out, "stock notification")
	assert.Contains(t, out, "target=t-9")
	assert.Contains(t, out, "reason=Restocked")
	assert.Contains(t, out, "in_stock=true")
	assert.Contains(t, out, "price=12.5")
	assert.NotContains(t, out, "qty=")
}

func TestPayload_Text(t *testing.T) {
	t.Parallel()

	p := samplePayload()
	p.Target.Name = "Tokyo"
	p.Target.Region = "jp"

	text := p.Text()
	assert.Contains(t, text, "✅ Tokyo")
	assert.Contains(t, text, "原因: Restocked")
	assert.Contains(t, text, "状态: 有货")
	assert.Contains(t, text, "Provider: dmit")
	assert.Contains(t, text, "地区: jp")
	assert.Contains(t, text, "价格: $12.5")
	assert.Contains(t, text, "链接: https://dmit.io/x")
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "9.99", notify.FormatNumber(9.99))
	assert.Equal(t, "10", notify.FormatNumber(10))
	assert.Equal(t, "0", notify.FormatNumber(0))
}
