package deltastep

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkerPool_PhaseCompletesAllTasks(t *testing.T) {
	const workers = 4
	p := newWorkerPool(workers)
	defer p.stop()

	var hits atomic.Int64
	for tid := 0; tid < workers; tid++ {
		p.run(tid, func() { hits.Add(1) })
	}
	p.wait()

	// The barrier released, so every task has finished.
	require.Equal(t, int64(workers), hits.Load())
}

func TestWorkerPool_WritesVisibleAfterBarrier(t *testing.T) {
	const workers = 8
	p := newWorkerPool(workers)
	defer p.stop()

	out := make([]int, workers)
	for phase := 0; phase < 100; phase++ {
		for tid := 0; tid < workers; tid++ {
			tid := tid
			p.run(tid, func() { out[tid] = phase + tid })
		}
		p.wait()
		for tid := 0; tid < workers; tid++ {
			require.Equal(t, phase+tid, out[tid])
		}
	}
}

func TestWorkerPool_SingleWorker(t *testing.T) {
	p := newWorkerPool(1)
	defer p.stop()

	total := 0
	for i := 0; i < 10; i++ {
		p.run(0, func() { total += i })
		p.wait()
	}
	require.Equal(t, 45, total)
}

func TestBarrier_CyclicReuse(t *testing.T) {
	const parties = 3
	b := newBarrier(parties)

	var counter atomic.Int64
	done := make(chan struct{})
	for w := 0; w < parties-1; w++ {
		go func() {
			for round := 0; round < 50; round++ {
				counter.Add(1)
				b.await()
			}
			done <- struct{}{}
		}()
	}
	for round := 1; round <= 50; round++ {
		b.await()
		// Every party of this round arrived before the release; the
		// others may already have raced ahead into the next round.
		got := counter.Load()
		require.GreaterOrEqual(t, got, int64(round*(parties-1)))
		require.LessOrEqual(t, got, int64((round+1)*(parties-1)))
	}
	<-done
	<-done
}
