package netwatch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// checkerStub lets a test flip backend health between probes.
type checkerStub struct {
	mu  sync.Mutex
	err error
}

func (c *checkerStub) Health(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *checkerStub) setErr(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

func TestMonitor_PessimisticBeforeFirstProbe(t *testing.T) {
	m := New(&checkerStub{}, testLogger(), time.Minute)

	assert.False(t, m.Online())
}

func TestMonitor_CheckNowFlipsState(t *testing.T) {
	checker := &checkerStub{}
	m := New(checker, testLogger(), time.Minute)

	assert.True(t, m.CheckNow(context.Background()))
	assert.True(t, m.Online())

	checker.setErr(errors.New("connection refused"))
	assert.False(t, m.CheckNow(context.Background()))
	assert.False(t, m.Online())
}

func TestMonitor_SubscribeSeesTransitions(t *testing.T) {
	checker := &checkerStub{}
	m := New(checker, testLogger(), time.Minute)
	ch := m.Subscribe()

	m.CheckNow(context.Background())
	select {
	case online := <-ch:
		assert.True(t, online)
	case <-time.After(time.Second):
		t.Fatal("no notification for first probe")
	}

	// Same state again is not a transition.
	m.CheckNow(context.Background())
	select {
	case <-ch:
		t.Fatal("unexpected notification without transition")
	default:
	}

	checker.setErr(errors.New("connection refused"))
	m.CheckNow(context.Background())
	select {
	case online := <-ch:
		assert.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("no notification for offline transition")
	}
}

func TestMonitor_LaggingSubscriberKeepsLatest(t *testing.T) {
	checker := &checkerStub{}
	m := New(checker, testLogger(), time.Minute)
	ch := m.Subscribe()

	// Two transitions without the subscriber reading: only the newest
	// state survives in the buffer.
	m.CheckNow(context.Background())
	checker.setErr(errors.New("connection refused"))
	m.CheckNow(context.Background())

	select {
	case online := <-ch:
		assert.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("no notification")
	}
	select {
	case <-ch:
		t.Fatal("stale notification was not dropped")
	default:
	}
}

func TestMonitor_RunProbesImmediately(t *testing.T) {
	checker := &checkerStub{}
	m := New(checker, testLogger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	require.Eventually(t, m.Online, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
