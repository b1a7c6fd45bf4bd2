package health

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakePinger struct {
	err   error
	calls atomic.Int32
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls.Add(1)
	return f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestProber_CheckRecordsStatus(t *testing.T) {
	pinger := &fakePinger{}
	p, err := NewProber(pinger, "@every 1h", time.Second, quietLogger())
	require.NoError(t, err)

	assert.False(t, p.Status().Checked)

	st := p.Check(context.Background())
	assert.True(t, st.Up)
	assert.Equal(t, st, p.Status())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.BackendUp))

	pinger.err = errors.New("connection refused")
	st = p.Check(context.Background())
	assert.False(t, st.Up)
	assert.Equal(t, "connection refused", p.Status().Error)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.BackendUp))
}

func TestProber_InvalidSchedule(t *testing.T) {
	_, err := NewProber(&fakePinger{}, "every now and then", time.Second, quietLogger())
	assert.Error(t, err)
}

func TestProber_ScheduledRunsAndStopsCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	pinger := &fakePinger{}
	p, err := NewProber(pinger, "@every 1s", time.Second, quietLogger())
	require.NoError(t, err)

	p.Start()
	assert.Eventually(t, func() bool { return pinger.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	p.Stop()

	assert.True(t, p.Status().Up)
}
