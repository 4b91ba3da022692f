// Package telemetry exports per-tick world statistics as CSV, a purely
// observational surface that never feeds back into the simulation.
package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/sim"
)

// WorldStats is one sampled row of world-level counters.
type WorldStats struct {
	Tick      int     `csv:"tick"`
	MomentMS  float64 `csv:"moment_ms"`
	Ants      int     `csv:"ants"`
	Food      int     `csv:"food"`
	Colonies  int     `csv:"colonies"`
	Pheromons int     `csv:"pheromons"`
	Obstacles int     `csv:"obstacles"`
}

// Sample reads a WorldStats snapshot off w at the given tick index.
func Sample(w *sim.World, tick int) WorldStats {
	return WorldStats{
		Tick:      tick,
		MomentMS:  float64(w.Moment),
		Ants:      w.Count(grid.TileAnt),
		Food:      w.Count(grid.TileFood),
		Colonies:  w.Count(grid.TileColony),
		Pheromons: w.Count(grid.TilePheromon),
		Obstacles: w.Count(grid.TileObstacle),
	}
}

// Writer appends WorldStats rows to a CSV file, writing the header only
// once.
type Writer struct {
	file          *os.File
	headerWritten bool
}

// NewWriter creates (truncating) the CSV file at path. An empty path
// disables output; every method on a nil *Writer is then a no-op.
func NewWriter(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Writer{file: f}, nil
}

// Write appends one stats row, writing the header row first if this is
// the writer's first call.
func (w *Writer) Write(stats WorldStats) error {
	if w == nil {
		return nil
	}
	records := []WorldStats{stats}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing telemetry header: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing telemetry row: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	return w.file.Close()
}
