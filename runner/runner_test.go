package runner_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/generator"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/runner"
	"github.com/katalvlaran/lvlmaze/verify"
)

// drain reads snapshots until the channel closes or the deadline passes.
func drain(t *testing.T, ch <-chan runner.Snapshot, deadline time.Duration) []runner.Snapshot {
	t.Helper()
	var got []runner.Snapshot
	timeout := time.After(deadline)
	for {
		select {
		case s, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, s)
		case <-timeout:
			t.Fatalf("channel not closed within %v", deadline)
		}
	}
}

// TestNew_Errors wraps grid and generator construction errors.
func TestNew_Errors(t *testing.T) {
	_, err := runner.New(generator.LabelPrim, 0, 4)
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
	_, err = runner.New(generator.Label(99), 4, 4)
	assert.ErrorIs(t, err, generator.ErrUnknownLabel)
}

// TestRunToCompletion yields a spanning tree and logs completion.
func TestRunToCompletion(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r, err := runner.New(generator.LabelKruskal, 6, 5, runner.WithSeed(10), runner.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, int64(10), r.Seed())
	assert.Equal(t, generator.LabelKruskal, r.Label())

	g := r.RunToCompletion()
	require.NoError(t, verify.SpanningTree(g))
	assert.True(t, r.Finished())
	assert.Equal(t, g.EdgeCount(), r.Steps())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "run finished", entry.Message)
	assert.Equal(t, r.ID().String(), entry.Data["run_id"])
	assert.Equal(t, "kruskal", entry.Data["algorithm"])
	assert.Equal(t, "6x5", entry.Data["size"])
}

// TestRunToCompletion_SameSeed reproduces a maze through the runner.
func TestRunToCompletion_SameSeed(t *testing.T) {
	r1, err := runner.New(generator.LabelSidewinder, 9, 9, runner.WithSeed(77))
	require.NoError(t, err)
	r2, err := runner.New(generator.LabelSidewinder, 9, 9, runner.WithSeed(77))
	require.NoError(t, err)
	g1, g2 := r1.RunToCompletion(), r2.RunToCompletion()
	g1.Cells(func(c grid.Cell) {
		assert.Equal(t, g1.NeighborsAt(c), g2.NeighborsAt(c), "cell %v", c)
	})
	assert.NotEqual(t, r1.ID(), r2.ID())
}

// TestRun_DeliversFinalSnapshot checks the last value is the finished state
// and that step counts never go backwards.
func TestRun_DeliversFinalSnapshot(t *testing.T) {
	r, err := runner.New(generator.LabelGrowingTree, 8, 6,
		runner.WithSeed(3),
		runner.WithInterval(0),
		runner.WithStepsPerTick(4),
	)
	require.NoError(t, err)

	snaps := drain(t, r.Run(context.Background()), 5*time.Second)
	require.NotEmpty(t, snaps)
	last := snaps[len(snaps)-1]
	assert.True(t, last.Finished)
	assert.Equal(t, r.ID(), last.RunID)
	require.NoError(t, verify.SpanningTree(last.Grid))
	for i := 1; i < len(snaps); i++ {
		assert.GreaterOrEqual(t, snaps[i].Steps, snaps[i-1].Steps)
	}
}

// TestRun_SnapshotsAreCopies checks a snapshot does not track later steps.
func TestRun_SnapshotsAreCopies(t *testing.T) {
	r, err := runner.New(generator.LabelDepthFirstSearch, 5, 5, runner.WithSeed(1))
	require.NoError(t, err)
	s := r.Snapshot()
	visited := s.Grid.VisitedCount()
	r.RunToCompletion()
	assert.Equal(t, visited, s.Grid.VisitedCount())
	assert.False(t, s.Grid.Finished())
}

// TestRun_Cancel closes the channel when the context ends.
func TestRun_Cancel(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r, err := runner.New(generator.LabelPrim, 40, 40,
		runner.WithSeed(2),
		runner.WithInterval(time.Hour),
		runner.WithLogger(logger),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch := r.Run(ctx)
	first := <-ch
	assert.Zero(t, first.Steps)
	cancel()

	snaps := drain(t, ch, 5*time.Second)
	assert.Empty(t, snaps)
	assert.False(t, r.Finished())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "run cancelled", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
}

// TestRun_Pause holds progress until resumed.
func TestRun_Pause(t *testing.T) {
	r, err := runner.New(generator.LabelEller, 6, 6, runner.WithSeed(5), runner.WithInterval(time.Millisecond))
	require.NoError(t, err)
	r.Pause()
	assert.True(t, r.Paused())

	ch := r.Run(context.Background())
	<-ch
	time.Sleep(20 * time.Millisecond)
	select {
	case s := <-ch:
		t.Fatalf("got snapshot at step %d while paused", s.Steps)
	default:
	}
	assert.Zero(t, r.Steps())

	assert.False(t, r.TogglePause())
	snaps := drain(t, ch, 5*time.Second)
	require.NotEmpty(t, snaps)
	assert.True(t, snaps[len(snaps)-1].Finished)
}

// TestSetInterval clamps and halves/doubles.
func TestSetInterval(t *testing.T) {
	r, err := runner.New(generator.LabelPrim, 2, 2, runner.WithInterval(8*time.Millisecond))
	require.NoError(t, err)
	r.Faster()
	assert.Equal(t, 4*time.Millisecond, r.Interval())
	r.Slower()
	r.Slower()
	assert.Equal(t, 16*time.Millisecond, r.Interval())
	r.SetInterval(0)
	assert.Equal(t, time.Millisecond, r.Interval())
	r.SetInterval(time.Hour)
	assert.Equal(t, 2*time.Second, r.Interval())
}

// TestOptions_Panics covers option validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { runner.WithInterval(-time.Second) })
	assert.Panics(t, func() { runner.WithStepsPerTick(0) })
	assert.Panics(t, func() { runner.WithLogger(nil) })
}
