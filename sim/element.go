package sim

import (
	"github.com/google/uuid"

	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/nav"
	"github.com/pthm-cable/formicary/simtime"
)

// IdleTime is the minimum interval between an element's moves along its
// path, independent of tick rate.
const IdleTime simtime.Duration = 200

// Element is one cell occupant: an identity, a tile kind, a position,
// and the Brain driving it (nil for inert elements like Obstacle).
type Element struct {
	UUID       uuid.UUID
	Tile       grid.Tile
	Pos        grid.Point2i
	Brain      Brain
	Deleted    bool
	Path       *grid.Path
	LastMove   simtime.Moment
	PauseAccum simtime.Duration

	initialized bool
}

// NewElement constructs an Element at pos. brain may be nil for inert
// tiles.
func NewElement(tile grid.Tile, pos grid.Point2i, brain Brain) *Element {
	return &Element{
		UUID:  uuid.New(),
		Tile:  tile,
		Pos:   pos,
		Brain: brain,
		Path:  grid.NewPath(),
	}
}

func newElementFromAnimat(a Animat) *Element {
	return NewElement(tileForBrain(a.Brain), a.Pos, a.Brain)
}

func tileForBrain(b Brain) grid.Tile {
	switch b.(type) {
	case *AntBrain:
		return grid.TileAnt
	case *ColonyBrain:
		return grid.TileColony
	case *FoodBrain:
		return grid.TileFood
	case *PheromonBrain:
		return grid.TilePheromon
	default:
		return grid.TileObstacle
	}
}

// View returns the read-only render/Locator snapshot for this element.
func (e *Element) View() grid.ElementView {
	var data grid.DataBlob = grid.EmptyData{}
	if dp, ok := e.Brain.(DataProvider); ok {
		data = dp.Data()
	}
	return grid.ElementView{Pos: e.Pos, Tile: e.Tile, Data: data}
}

// step drives one tick for the element: brain init/step, then cadence-
// gated movement along Path, then propagation of the self-destruct flag.
// self is this element's index in the grid for the duration of the tick
// (stable, since spawns and deletions are deferred until after the
// pass); spawns and influences raised by the brain land in step.
func (e *Element) step(step *StepInfo, loc nav.Locator, self int) {
	if e.Brain == nil {
		return
	}

	info := &Info{
		Pos:     e.Pos,
		RNG:     step.RNG,
		Moment:  step.Moment,
		Elapsed: step.Elapsed,
		Path:    e.Path,
		Locator: loc,
		Self:    self,
		step:    step,
	}

	if !e.initialized {
		e.Brain.Init(info)
		e.initialized = true
	}
	e.Brain.Step(info)

	if !e.Path.Empty() && step.Moment.Since(e.LastMove) >= IdleTime {
		if next, err := e.Path.Advance(); err == nil {
			e.Pos = next
			e.LastMove = step.Moment
		}
	}

	if info.SelfDestruct {
		e.Deleted = true
	}
}
