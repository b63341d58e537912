package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoller_RunsTask(t *testing.T) {
	var runs atomic.Int64

	p := New(10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})
	p.Start()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	p.Stop()
}

func TestPoller_StopWaitsForCompletion(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	p := New(5*time.Millisecond, func(ctx context.Context) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		finished.Store(true)
	})
	p.Start()

	<-started
	close(release)
	p.Stop()

	assert.True(t, finished.Load())
}

func TestPoller_StopWithoutStart(t *testing.T) {
	p := New(time.Second, func(ctx context.Context) {})
	// Не должно паниковать и зависать
	p.Stop()
}

func TestPoller_DoubleStartAndStop(t *testing.T) {
	var runs atomic.Int64

	p := New(10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})
	p.Start()
	p.Start()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	p.Stop()
	p.Stop()
}
