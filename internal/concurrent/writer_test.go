package concurrent_test

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventhive/internal/concurrent"
	"eventhive/pkg/logger"
)

func newTestWriter(queueSize int) *concurrent.Writer {
	return concurrent.NewWriter(queueSize, logger.New(logger.ErrorLevel, io.Discard))
}

func TestWriterRunsTasksInSubmissionOrder(t *testing.T) {
	writer := newTestWriter(16)
	writer.Start()

	var order []int
	for i := 0; i < 10; i++ {
		n := i
		ok := writer.Submit("ordered", func() error {
			order = append(order, n)
			return nil
		})
		require.True(t, ok)
	}

	writer.Stop()

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestWriterStats(t *testing.T) {
	writer := newTestWriter(16)
	writer.Start()

	require.True(t, writer.Submit("ok", func() error { return nil }))
	require.True(t, writer.Submit("fail", func() error { return errors.New("patladı") }))

	writer.Stop()

	stats := writer.GetStats()
	require.Equal(t, int64(2), stats.Submitted)
	require.Equal(t, int64(1), stats.Completed)
	require.Equal(t, int64(1), stats.Failed)
}

func TestWriterRejectsWhenQueueFull(t *testing.T) {
	writer := newTestWriter(1)
	writer.Start()

	running := make(chan struct{})
	release := make(chan struct{})

	require.True(t, writer.Submit("blocker", func() error {
		close(running)
		<-release
		return nil
	}))
	<-running

	// yazıcı meşgulken kuyruk kapasitesi kadar görev kabul edilir
	require.True(t, writer.Submit("queued", func() error { return nil }))

	rejected := false
	for i := 0; i < 5; i++ {
		if !writer.Submit("overflow", func() error { return nil }) {
			rejected = true
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.True(t, rejected)

	close(release)
	writer.Stop()

	stats := writer.GetStats()
	require.GreaterOrEqual(t, stats.Rejected, int64(1))
	require.GreaterOrEqual(t, stats.QueueHighWater, 1)
}

// Stop ile yarışan Submit ya gönderir ya false döner; kapalı kanala
// gönderim paniği olmamalı.
func TestWriterSubmitRacingStop(t *testing.T) {
	for i := 0; i < 25; i++ {
		writer := newTestWriter(8)
		writer.Start()

		var wg sync.WaitGroup
		for j := 0; j < 50; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				writer.Submit("yaris", func() error { return nil })
			}()
		}

		writer.Stop()
		wg.Wait()

		require.False(t, writer.Submit("gec", func() error { return nil }))
	}
}

func TestWriterRejectsAfterStop(t *testing.T) {
	writer := newTestWriter(4)
	writer.Start()
	writer.Stop()

	require.False(t, writer.Submit("late", func() error { return nil }))
}

func TestWriterStartIsIdempotent(t *testing.T) {
	writer := newTestWriter(4)
	writer.Start()
	writer.Start()

	done := make(chan struct{})
	require.True(t, writer.Submit("once", func() error {
		close(done)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("görev çalışmadı")
	}

	writer.Stop()
}
