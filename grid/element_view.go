package grid

import "github.com/pthm-cable/formicary/simtime"

// DataBlob is the opaque, read-only per-kind payload carried by an
// Element and exposed to the renderer and other brains. Consumers type
// switch on the concrete variant rather than casting raw bytes.
type DataBlob interface {
	isDataBlob()
}

// AntData is the data blob for an Ant element: its current Behavior.
type AntData struct {
	Behavior Behavior
}

func (AntData) isDataBlob() {}

// PheromonData is the data blob for a Pheromon element.
type PheromonData struct {
	Scent           Scent
	Created         simtime.Moment
	Amount          float64
	EvaporationRate float64
}

func (PheromonData) isDataBlob() {}

// EmptyData is the data blob for elements that carry no renderable
// payload (Colony, Food, Obstacle).
type EmptyData struct{}

func (EmptyData) isDataBlob() {}

// ElementView is a read-only snapshot of an Element, exposed through the
// Locator interface and the render surface. It must never be used to
// mutate the element it describes.
type ElementView struct {
	Pos  Point2i
	Tile Tile
	Data DataBlob
}
