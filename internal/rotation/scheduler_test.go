package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimpleWrap_Cyclic(t *testing.T) {
	for _, n := range []int{1, 2, 5, 13} {
		for start := 0; start < n; start++ {
			idx := start
			for i := 0; i < n; i++ {
				idx = SimpleWrap(idx, n)
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, n)
			}
			// n advances bring the index back to where it started
			assert.Equal(t, start, idx, "n=%d start=%d", n, start)
		}
	}
}

func TestWindowedWrap_WindowNeverOverruns(t *testing.T) {
	const w = 3
	rule := WindowedWrap(w)
	for _, n := range []int{4, 5, 7, 15} {
		idx := 0
		sawZeroAgain := false
		for i := 0; i < 3*n; i++ {
			idx = rule(idx, n)
			assert.LessOrEqual(t, idx+w, n, "window [%d,%d) overran length %d", idx, idx+w, n)
			if i > 0 && idx == 0 {
				sawZeroAgain = true
			}
		}
		assert.True(t, sawZeroAgain, "index never wrapped for n=%d", n)
	}
}

func TestWindowedWrap_InactiveForShortSequences(t *testing.T) {
	rule := WindowedWrap(3)
	for _, n := range []int{0, 1, 2, 3} {
		assert.Equal(t, 0, rule(0, n))
		assert.Equal(t, 0, rule(2, n))
	}
}

func TestSequence_AdvanceAndResize(t *testing.T) {
	seq := NewSequence(5, SimpleWrap)

	assert.Equal(t, 0, seq.Index())
	assert.Equal(t, 1, seq.Advance())
	assert.Equal(t, 2, seq.Advance())

	// shrinking below the current index clamps back to 0
	seq.Resize(2)
	assert.Equal(t, 0, seq.Index())

	seq.Resize(0)
	assert.Equal(t, 0, seq.Index())
	assert.Equal(t, 0, seq.Advance())
}

func TestRunner_AdvancesAndStops(t *testing.T) {
	seq := NewSequence(5, SimpleWrap)
	r := NewRunner("banner", seq, 5*time.Millisecond, zap.NewNop())

	r.Start()
	require.Eventually(t, func() bool { return seq.Index() > 0 }, time.Second, time.Millisecond)

	r.Stop()
	after := seq.Index()
	time.Sleep(30 * time.Millisecond)
	// no advance after Stop returns
	assert.Equal(t, after, seq.Index())
}

func TestRunner_StopIsIdempotent(t *testing.T) {
	seq := NewSequence(3, SimpleWrap)
	r := NewRunner("gallery", seq, time.Millisecond, zap.NewNop())

	r.Start()
	r.Stop()
	r.Stop()
}
