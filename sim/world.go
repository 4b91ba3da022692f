package sim

import (
	"log/slog"

	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/simtime"
)

// World owns the grid and simulation clock, and drives one tick at a
// time: snapshot every live element, step each against the tick's
// shared StepInfo, then apply whatever spawns and influences they
// raised, then prune whatever they deleted.
type World struct {
	Grid   *Grid
	RNG    RNG
	Moment simtime.Moment
	Paused bool
}

// NewWorld returns an empty world driven by rng.
func NewWorld(rng RNG) *World {
	return &World{Grid: NewGrid(), RNG: rng}
}

// Step advances the world by tDeltaSeconds of simulation time. A paused
// world ignores Step entirely.
func (w *World) Step(tDeltaSeconds float64) {
	if w.Paused {
		return
	}
	w.Moment = w.Moment.Add(simtime.SecondsToDuration(tDeltaSeconds))

	step := &StepInfo{RNG: w.RNG, Moment: w.Moment, Elapsed: tDeltaSeconds}

	live := w.Grid.Elements()
	snapshot := make([]*Element, len(live))
	copy(snapshot, live)

	for idx, el := range snapshot {
		el.step(step, w.Grid, idx)
	}

	for _, a := range step.Spawned {
		w.Grid.Spawn(newElementFromAnimat(a))
	}
	for _, inf := range step.Influences {
		w.applyInfluence(inf)
	}

	w.Grid.Update()
}

func (w *World) applyInfluence(inf Influence) {
	emitterIdx, receiverIdx := inf.participants()
	w.applyTo(emitterIdx, inf, true)
	w.applyTo(receiverIdx, inf, false)
}

func (w *World) applyTo(index int, inf Influence, asEmitter bool) {
	el := w.Grid.At(index)
	if el.Brain == nil {
		slog.Error("influence target has no brain", "index", index, "asEmitter", asEmitter)
		return
	}
	if !el.Brain.Influence(inf, asEmitter) {
		slog.Error("influence rejected", "index", index, "asEmitter", asEmitter)
	}
}

// Pause freezes the world and records, on every element and every brain
// with its own cadence state, how much of its current interval had
// already elapsed.
func (w *World) Pause() {
	if w.Paused {
		return
	}
	w.Paused = true
	for _, el := range w.Grid.Elements() {
		el.PauseAccum = w.Moment.Since(el.LastMove)
		if p, ok := el.Brain.(Pausable); ok {
			p.Pause(w.Moment)
		}
	}
}

// Resume unfreezes the world, restoring every recorded cadence offset
// against the current moment so paused time never counts toward an
// element's next action.
func (w *World) Resume() {
	if !w.Paused {
		return
	}
	w.Paused = false
	for _, el := range w.Grid.Elements() {
		el.LastMove = w.Moment.Sub(el.PauseAccum)
		if p, ok := el.Brain.(Pausable); ok {
			p.Resume(w.Moment)
		}
	}
}

// Count returns how many live elements carry the given tile.
func (w *World) Count(tile grid.Tile) int {
	return w.Grid.Count(tile)
}

// Spawn places a new element at (x, y) from outside the tick loop (the
// host shell's UI, typically). Only Food and Obstacle may be placed this
// way; anything else is rejected, as is a cell that is already occupied.
func (w *World) Spawn(x, y int, tile grid.Tile) bool {
	if tile != grid.TileFood && tile != grid.TileObstacle {
		slog.Error("spawn rejected: unsupported tile", "tile", tile.String())
		return false
	}
	pos := grid.Point2i{X: x, Y: y}
	if w.Grid.Obstructed(pos, true) {
		slog.Error("spawn rejected: cell occupied", "x", x, "y", y)
		return false
	}

	var brain Brain
	if tile == grid.TileFood {
		brain = NewFoodBrain(DefaultFoodStock)
	}
	w.Grid.Spawn(NewElement(tile, pos, brain))
	return true
}

// RenderElement is the read-only view a host shell iterates to draw the
// world.
type RenderElement struct {
	Pos  grid.Point2i
	Tile grid.Tile
	Data grid.DataBlob
}

// IterateElements returns a render-facing snapshot of every live
// element, in grid order.
func (w *World) IterateElements() []RenderElement {
	live := w.Grid.Elements()
	out := make([]RenderElement, 0, len(live))
	for _, el := range live {
		if el.Deleted {
			continue
		}
		v := el.View()
		out = append(out, RenderElement{Pos: v.Pos, Tile: v.Tile, Data: v.Data})
	}
	return out
}
