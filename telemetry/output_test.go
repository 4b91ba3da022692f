package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/sim"
)

func TestSampleCountsTiles(t *testing.T) {
	w := sim.NewWorld(sim.NewRNG(1))
	w.Grid.Spawn(sim.NewElement(grid.TileFood, grid.Point2i{X: 0, Y: 0}, sim.NewFoodBrain(10)))
	w.Grid.Spawn(sim.NewElement(grid.TileColony, grid.Point2i{X: 1, Y: 0}, nil))

	stats := Sample(w, 7)
	if stats.Tick != 7 {
		t.Errorf("expected tick 7, got %d", stats.Tick)
	}
	if stats.Food != 1 {
		t.Errorf("expected 1 food, got %d", stats.Food)
	}
	if stats.Colonies != 1 {
		t.Errorf("expected 1 colony, got %d", stats.Colonies)
	}
	if stats.Ants != 0 || stats.Pheromons != 0 || stats.Obstacles != 0 {
		t.Errorf("expected every other count at zero, got %+v", stats)
	}
}

func TestNewWriterEmptyPathDisablesOutput(t *testing.T) {
	w, err := NewWriter("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != nil {
		t.Fatalf("expected nil writer for an empty path")
	}
	if err := w.Write(WorldStats{Tick: 1}); err != nil {
		t.Errorf("expected Write on a nil writer to be a no-op, got %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("expected Close on a nil writer to be a no-op, got %v", err)
	}
}

func TestWriterWritesHeaderOnceThenRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.csv")
	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(WorldStats{Tick: 0, Ants: 1}); err != nil {
		t.Fatalf("unexpected error writing first row: %v", err)
	}
	if err := w.Write(WorldStats{Tick: 1, Ants: 2}); err != nil {
		t.Fatalf("unexpected error writing second row: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error closing: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error reading back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header row plus two data rows, got %d lines: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "tick") {
		t.Errorf("expected header row to contain column names, got %q", lines[0])
	}
}
