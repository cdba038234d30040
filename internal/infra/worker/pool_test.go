package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := NewPool(2, nil)

	var n int64
	for i := 0; i < 4; i++ {
		require.NoError(t, p.Submit(func() { atomic.AddInt64(&n, 1) }))
	}
	p.Shutdown()

	assert.Equal(t, int64(4), atomic.LoadInt64(&n))
}

func TestPool_FullWhenQueueIsFull(t *testing.T) {
	p := NewPool(1, nil)

	block := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(func() {
		close(started)
		<-block
	}))
	<-started

	//ワーカー1つ、キューは2つまで
	require.NoError(t, p.Submit(func() {}))
	require.NoError(t, p.Submit(func() {}))
	assert.ErrorIs(t, p.Submit(func() {}), ErrPoolFull)

	close(block)
	p.Shutdown()
}

func TestPool_ClosedAfterShutdown(t *testing.T) {
	p := NewPool(1, nil)
	p.Shutdown()
	p.Shutdown()

	assert.ErrorIs(t, p.Submit(func() {}), ErrPoolClosed)
}

func TestPool_PanicDoesNotKillWorker(t *testing.T) {
	var mu sync.Mutex
	var recovered []any
	p := NewPool(1, func(r any) {
		mu.Lock()
		recovered = append(recovered, r)
		mu.Unlock()
	})

	done := make(chan struct{})
	require.NoError(t, p.Submit(func() { panic("boom") }))
	require.NoError(t, p.Submit(func() { close(done) }))
	<-done
	p.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []any{"boom"}, recovered)
}
