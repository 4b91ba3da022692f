package sim

import (
	"testing"

	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/simtime"
)

// fixedRNG is a deterministic RNG test double: Float64 cycles through a
// fixed sequence, Intn always returns 0.
type fixedRNG struct {
	seq []float64
	i   int
}

func (r *fixedRNG) Float64() float64 {
	if len(r.seq) == 0 {
		return 0
	}
	v := r.seq[r.i%len(r.seq)]
	r.i++
	return v
}

func (r *fixedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return 0
}

func TestWorldStepAppliesSpawnAfterPass(t *testing.T) {
	w := NewWorld(&fixedRNG{})
	colony := NewColonyBrain(ColonyConfig{AntCost: 10, RestInterval: 0, SpawnRadius: 1}, 10, DefaultAntConfig())
	w.Grid.Spawn(NewElement(grid.TileColony, grid.Point2i{X: 5, Y: 5}, colony))

	if w.Count(grid.TileAnt) != 0 {
		t.Fatalf("expected no ants before stepping")
	}

	w.Step(0.016)

	if w.Count(grid.TileAnt) != 1 {
		t.Fatalf("expected the colony to spawn exactly one ant, got %d", w.Count(grid.TileAnt))
	}
}

func TestWorldPauseStopsStepping(t *testing.T) {
	w := NewWorld(&fixedRNG{})
	w.Pause()
	before := w.Moment
	w.Step(1)
	if w.Moment != before {
		t.Errorf("expected Step on a paused world to be a no-op, moment changed from %v to %v", before, w.Moment)
	}
}

func TestWorldPauseResumePreservesCadenceOffset(t *testing.T) {
	w := NewWorld(&fixedRNG{})
	el := NewElement(grid.TileAnt, grid.Point2i{X: 0, Y: 0}, NewAntBrain(DefaultAntConfig()))
	w.Grid.Spawn(el)

	w.Step(0.1) // moment = 100ms
	el.LastMove = w.Moment.Sub(simtime.MillisecondsToDuration(60)) // pretend it moved 60ms ago

	w.Pause()
	offsetAtPause := w.Moment.Since(el.LastMove)

	w.Step(5) // time would advance if not paused
	w.Step(5)

	w.Resume()
	offsetAfterResume := w.Moment.Since(el.LastMove)

	if offsetAtPause != offsetAfterResume {
		t.Errorf("expected cadence offset to survive pause/resume unchanged: before=%v after=%v", offsetAtPause, offsetAfterResume)
	}
}

func TestWorldPauseResumeIdempotent(t *testing.T) {
	w := NewWorld(&fixedRNG{})
	w.Pause()
	w.Pause()
	if !w.Paused {
		t.Fatal("expected world to remain paused")
	}
	w.Resume()
	w.Resume()
	if w.Paused {
		t.Fatal("expected world to remain resumed")
	}
}

func TestWorldSpawnRejectsAntAndColony(t *testing.T) {
	w := NewWorld(&fixedRNG{})
	if w.Spawn(1, 1, grid.TileAnt) {
		t.Error("expected spawning an Ant via the external API to be rejected")
	}
	if w.Spawn(1, 1, grid.TileColony) {
		t.Error("expected spawning a Colony via the external API to be rejected")
	}
	if !w.Spawn(1, 1, grid.TileFood) {
		t.Error("expected spawning Food via the external API to succeed")
	}
}

func TestWorldSpawnRejectsOccupiedCell(t *testing.T) {
	w := NewWorld(&fixedRNG{})
	w.Grid.Spawn(NewElement(grid.TileObstacle, grid.Point2i{X: 2, Y: 2}, nil))
	if w.Spawn(2, 2, grid.TileFood) {
		t.Error("expected spawn onto an occupied cell to be rejected")
	}
}
