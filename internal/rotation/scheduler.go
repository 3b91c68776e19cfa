// Package rotation drives the home-page carousels: each rotating surface
// (banner, gallery, new-joinee rail) owns a Sequence advanced on a fixed
// period by a Runner. Runners are tied to the owning surface's lifetime and
// never fire after Stop returns.
package rotation

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// AdvanceRule computes the next index for a sequence of length n.
// Implementations must keep the result in [0, n).
type AdvanceRule func(index, n int) int

// SimpleWrap cycles through every position: (i+1) mod n.
func SimpleWrap(index, n int) int {
	if n <= 0 {
		return 0
	}
	return (index + 1) % n
}

// WindowedWrap returns a rule that keeps a trailing window of size w fully
// inside the sequence: the index advances by one until the window would run
// past the end, then resets to 0. With n <= w the index stays at 0.
func WindowedWrap(w int) AdvanceRule {
	return func(index, n int) int {
		if n <= w {
			return 0
		}
		next := index + 1
		if next+w > n {
			return 0
		}
		return next
	}
}

// Sequence is the rotation state for one surface: current index into an
// ordered list of length n.
type Sequence struct {
	mu   sync.Mutex
	n    int
	idx  int
	rule AdvanceRule
}

func NewSequence(n int, rule AdvanceRule) *Sequence {
	return &Sequence{n: n, rule: rule}
}

// Index returns the current position.
func (s *Sequence) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}

// Len returns the sequence length.
func (s *Sequence) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// Advance moves to the next position and returns it.
func (s *Sequence) Advance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = s.rule(s.idx, s.n)
	return s.idx
}

// Resize updates the sequence length (e.g. after a directory refresh
// changes the joinee list) and clamps the index back into range.
func (s *Sequence) Resize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = n
	if n <= 0 {
		s.idx = 0
		return
	}
	if s.idx >= n {
		s.idx = 0
	}
}

// Runner advances a Sequence on a fixed period until stopped.
type Runner struct {
	name     string
	seq      *Sequence
	period   time.Duration
	logger   *zap.Logger
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewRunner(name string, seq *Sequence, period time.Duration, logger *zap.Logger) *Runner {
	return &Runner{
		name:   name,
		seq:    seq,
		period: period,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (r *Runner) Name() string { return r.name }

// Index reports the current position of the underlying sequence.
func (r *Runner) Index() int { return r.seq.Index() }

func (r *Runner) Len() int { return r.seq.Len() }

// Start launches the ticker goroutine. Safe to call once per Runner.
func (r *Runner) Start() {
	go func() {
		defer close(r.doneCh)
		ticker := time.NewTicker(r.period)
		defer ticker.Stop()

		r.logger.Debug("Rotation runner started",
			zap.String("surface", r.name),
			zap.Duration("period", r.period),
		)
		for {
			select {
			case <-r.stopCh:
				return
			case <-ticker.C:
				r.seq.Advance()
			}
		}
	}()
}

// Stop halts a started runner and waits for the goroutine to exit, so no
// advance happens after it returns. Idempotent.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	<-r.doneCh
	r.logger.Debug("Rotation runner stopped", zap.String("surface", r.name))
}
