// Package sim implements the tick-driven world: the grid of elements,
// their polymorphic Brain behaviors, deferred spawn/influence application,
// and the external API a host shell drives the simulation through.
package sim

import (
	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/nav"
	"github.com/pthm-cable/formicary/simtime"
)

// StepInfo is shared across every Element's Step call within a single
// World.Step pass. Spawns and influences raised by any element during
// the pass accumulate here and are applied only after the whole pass
// completes.
type StepInfo struct {
	RNG        RNG
	Moment     simtime.Moment
	Elapsed    float64 // seconds since the previous tick
	Spawned    []Animat
	Influences []Influence
}

// Info is the per-element view a Brain receives. It exposes the
// element's own position and path, read-only access to the rest of the
// grid through Locator, and the mutation surface (Spawn, Emit, Destroy)
// a Brain uses instead of touching the World directly.
type Info struct {
	Pos          grid.Point2i
	RNG          RNG
	Moment       simtime.Moment
	Elapsed      float64
	Path         *grid.Path
	Locator      nav.Locator
	Self         int
	SelfDestruct bool

	step *StepInfo
}

// Spawn queues an animat to be inserted into the grid once the current
// tick's pass over all elements finishes.
func (i *Info) Spawn(a Animat) {
	i.step.Spawned = append(i.step.Spawned, a)
}

// Emit queues an Influence to be applied once the current tick's pass
// over all elements finishes.
func (i *Info) Emit(inf Influence) {
	i.step.Influences = append(i.step.Influences, inf)
}

// Destroy marks the element owning this Info for removal at the end of
// the tick.
func (i *Info) Destroy() {
	i.SelfDestruct = true
}

// Animat is a spawn request: a position and the Brain that will drive
// the new Element. The element's Tile is inferred from the brain's
// concrete type.
type Animat struct {
	Pos   grid.Point2i
	Brain Brain
}

// Brain is the behavior driving one Element. Init runs once, on the
// element's first tick, just before that tick's Step; Step runs every
// tick, the first one included. Influence
// applies a pending Influence in either the emitter or receiver role and
// reports whether this brain understood it.
type Brain interface {
	Init(info *Info)
	Step(info *Info)
	Influence(inf Influence, asEmitter bool) bool
}

// DataProvider is implemented by brains that expose a render-facing data
// blob (Ant, Pheromon). Brains without meaningful per-instance state
// (Colony, Food) omit it, and View falls back to grid.EmptyData.
type DataProvider interface {
	Data() grid.DataBlob
}

// Merger is implemented by brains that can absorb another brain of the
// same kind in place of being spawned as a second element on the same
// cell (Pheromon only, for now).
type Merger interface {
	Merge(other Brain) bool
}

// Pausable is implemented by brains holding their own time-stamped
// cadence state (beyond the Element's LastMove), so World.Pause and
// World.Resume can shift that state by the same paused duration.
type Pausable interface {
	Pause(now simtime.Moment)
	Resume(now simtime.Moment)
}
