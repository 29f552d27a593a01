package renderer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Progress counts finished pixels. Workers only ever perform an atomic add,
// so a slow or absent reporter never blocks rendering.
type Progress struct {
	total int64
	done  atomic.Int64

	start    time.Time
	stopOnce sync.Once
	stop     chan struct{}
	stopped  chan struct{}
}

// NewProgress creates a counter for total units of work
func NewProgress(total int) *Progress {
	return &Progress{
		total: int64(total),
		start: time.Now(),
	}
}

// Add records n finished units
func (p *Progress) Add(n int) {
	p.done.Add(int64(n))
}

// Done returns the number of finished units
func (p *Progress) Done() int64 {
	return p.done.Load()
}

// Fraction returns the finished share in [0, 1]
func (p *Progress) Fraction() float64 {
	if p.total <= 0 {
		return 1
	}
	return float64(p.Done()) / float64(p.total)
}

// Start launches a reporter goroutine that logs progress every interval until Stop is called
func (p *Progress) Start(interval time.Duration, logger core.Logger) {
	if interval <= 0 || logger == nil || p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	p.stopped = make(chan struct{})

	go func() {
		defer close(p.stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				done := p.Done()
				if done > 0 {
					elapsed := time.Since(p.start).Seconds()
					logger.Printf("  [%d/%d] %5.1f%% %.0f px/sec\n", done, p.total, 100*p.Fraction(), float64(done)/elapsed)
				}
			}
		}
	}()
}

// Stop ends the reporter goroutine and waits for it to exit. It is safe to call more than once
// and without a prior Start.
func (p *Progress) Stop() {
	p.stopOnce.Do(func() {
		if p.stop == nil {
			return
		}
		close(p.stop)
		<-p.stopped
	})
}
