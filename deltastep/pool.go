package deltastep

import "sync"

// barrier is a cyclic rendezvous for a fixed number of parties. Each
// await blocks until all parties of the current generation have
// arrived, then every party is released and the barrier resets.
//
// The mutex hand-off gives the usual guarantee: every write made
// before an await happens-before every read made after the matching
// release, which is what publishes dist, bucket contents and request
// slots from one phase to the next.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	round   uint64
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b
}

func (b *barrier) await() {
	b.mu.Lock()
	round := b.round
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.round++
		b.cond.Broadcast()
	} else {
		for round == b.round {
			b.cond.Wait()
		}
	}
	b.mu.Unlock()
}

// workerPool runs a fixed set of long-lived workers, one goroutine per
// worker, each fed through its own single-slot task channel. The
// driver pushes exactly one task per worker per phase with run, then
// joins the phase with wait; each worker executes its task and arrives
// at the shared barrier. stop poisons the channels and joins the
// goroutines.
type workerPool struct {
	tasks []chan func()
	bar   *barrier
	wg    sync.WaitGroup
}

func newWorkerPool(workers int) *workerPool {
	p := &workerPool{
		tasks: make([]chan func(), workers),
		bar:   newBarrier(workers + 1),
	}
	for i := range p.tasks {
		ch := make(chan func(), 1)
		p.tasks[i] = ch
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range ch {
				task()
				p.bar.await()
			}
		}()
	}

	return p
}

// run hands a task to worker tid. The channel has one slot and the
// worker is past its previous receive once the last barrier released,
// so this never blocks the driver.
func (p *workerPool) run(tid int, task func()) {
	p.tasks[tid] <- task
}

// wait is the driver's arrival at the phase barrier.
func (p *workerPool) wait() {
	p.bar.await()
}

// stop closes every task channel and joins the workers. The pool must
// be idle (no phase in flight).
func (p *workerPool) stop() {
	for _, ch := range p.tasks {
		close(ch)
	}
	p.wg.Wait()
}
