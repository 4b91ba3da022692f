// Command formicary runs the ant colony foraging simulation: headless
// for scripted/telemetry runs, or windowed with a raylib shell for
// interactive inspection and scenario authoring.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/formicary/config"
	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/sim"
	"github.com/pthm-cable/formicary/telemetry"
	"github.com/pthm-cable/formicary/worldgen"
)

var (
	configPath   = flag.String("config", "", "Path to a YAML config overriding the embedded defaults")
	seed         = flag.Int64("seed", 0, "RNG seed (0 = use worldgen.seed from config)")
	headless     = flag.Bool("headless", false, "Run without graphics")
	maxTicks     = flag.Int("max-ticks", 0, "Stop after N ticks (0 = run forever, useful with -headless)")
	telemetryOut = flag.String("telemetry", "", "Write per-sample world stats to this CSV path (empty = disabled)")
	logLevel     = flag.String("log", "info", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	slog.SetLogLoggerLevel(parseLevel(*logLevel))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Worldgen.Seed
	}

	w := sim.NewWorld(sim.NewRNG(rngSeed))
	worldgen.Generate(w, worldgen.Params{
		Width:             cfg.Grid.Width,
		Height:            cfg.Grid.Height,
		Seed:              rngSeed,
		NoiseScale:        cfg.Worldgen.NoiseScale,
		ObstacleThreshold: cfg.Worldgen.ObstacleThreshold,
		FoodThreshold:     cfg.Worldgen.FoodThreshold,
		FoodStock:         cfg.Worldgen.FoodStock,
		ColonyBudget:      cfg.Colony.InitialBudget,
		AntCfg:            cfg.Derived.AntCfg,
		ColonyCfg:         cfg.Derived.ColonyCfg,
	})

	telemetryWriter, err := telemetry.NewWriter(*telemetryOut)
	if err != nil {
		slog.Error("failed to open telemetry output", "error", err)
		os.Exit(1)
	}
	defer telemetryWriter.Close()

	if *headless {
		runHeadless(w, cfg, telemetryWriter)
		return
	}
	runWindowed(w, cfg, telemetryWriter)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runHeadless(w *sim.World, cfg *config.Config, tw *telemetry.Writer) {
	tick := 0
	for *maxTicks == 0 || tick < *maxTicks {
		w.Step(cfg.Derived.TickDelta)
		if tick%cfg.Telemetry.SampleIntervalTicks == 0 {
			if err := tw.Write(telemetry.Sample(w, tick)); err != nil {
				slog.Error("telemetry write failed", "error", err)
			}
		}
		tick++
	}
}

const (
	cellPixels   = 8
	sidebarWidth = 220
)

func runWindowed(w *sim.World, cfg *config.Config, tw *telemetry.Writer) {
	screenW := cfg.Grid.Width*cellPixels + sidebarWidth
	screenH := cfg.Grid.Height * cellPixels

	rl.InitWindow(int32(screenW), int32(screenH), "formicary")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	tick := 0
	paused := false
	speedMultiplier := float32(1)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			if paused {
				w.Resume()
			} else {
				w.Pause()
			}
			paused = !paused
		}

		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			handleSpawnClick(w, rl.GetMousePosition(), grid.TileFood)
		}
		if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			handleSpawnClick(w, rl.GetMousePosition(), grid.TileObstacle)
		}

		if !paused {
			steps := int(speedMultiplier)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				w.Step(cfg.Derived.TickDelta)
				if tick%cfg.Telemetry.SampleIntervalTicks == 0 {
					if err := tw.Write(telemetry.Sample(w, tick)); err != nil {
						slog.Error("telemetry write failed", "error", err)
					}
				}
				tick++
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		drawWorld(w)
		drawSidebar(w, screenW-sidebarWidth, paused, tick)
		rl.DrawText("speed", int32(screenW-sidebarWidth+10), int32(screenH-40), 14, rl.Gray)
		speedMultiplier = gui.SliderBar(
			rl.Rectangle{X: float32(screenW - sidebarWidth + 60), Y: float32(screenH - 40), Width: sidebarWidth - 80, Height: 20},
			"1x", "10x", speedMultiplier, 1, 10,
		)
		rl.EndDrawing()

		if *maxTicks != 0 && tick >= *maxTicks {
			break
		}
	}
}

func handleSpawnClick(w *sim.World, mouse rl.Vector2, tile grid.Tile) {
	x := int(mouse.X) / cellPixels
	y := int(mouse.Y) / cellPixels
	if !w.Spawn(x, y, tile) {
		slog.Warn("spawn rejected", "x", x, "y", y, "tile", tile.String())
	}
}

func drawWorld(w *sim.World) {
	for _, el := range w.IterateElements() {
		x := int32(el.Pos.X * cellPixels)
		y := int32(el.Pos.Y * cellPixels)
		rl.DrawRectangle(x, y, cellPixels, cellPixels, colorForTile(el.Tile, el.Data))
	}
}

func colorForTile(tile grid.Tile, data grid.DataBlob) rl.Color {
	switch tile {
	case grid.TileColony:
		return rl.Blue
	case grid.TileAnt:
		return antColor(data)
	case grid.TileFood:
		return rl.Green
	case grid.TilePheromon:
		return pheromonColor(data)
	case grid.TileObstacle:
		return rl.Gray
	default:
		return rl.White
	}
}

func antColor(data grid.DataBlob) rl.Color {
	ad, ok := data.(grid.AntData)
	if !ok {
		return rl.Yellow
	}
	switch ad.Behavior {
	case grid.BehaviorReturn, grid.BehaviorDeposit:
		return rl.Orange
	default:
		return rl.Yellow
	}
}

func pheromonColor(data grid.DataBlob) rl.Color {
	pd, ok := data.(grid.PheromonData)
	if !ok {
		return rl.DarkPurple
	}
	alpha := uint8(40)
	if pd.Amount > 0 {
		alpha = uint8(40 + 40*pd.Amount/(pd.Amount+1))
	}
	if pd.Scent == grid.ScentFood {
		return rl.Color{R: 0, G: 200, B: 0, A: alpha}
	}
	return rl.Color{R: 0, G: 120, B: 220, A: alpha}
}

func drawSidebar(w *sim.World, x int, paused bool, tick int) {
	rl.DrawRectangle(int32(x), 0, sidebarWidth, 2000, rl.Color{R: 20, G: 20, B: 24, A: 255})
	lines := []string{
		fmt.Sprintf("tick %d", tick),
		fmt.Sprintf("ants %d", w.Count(grid.TileAnt)),
		fmt.Sprintf("food %d", w.Count(grid.TileFood)),
		fmt.Sprintf("pheromons %d", w.Count(grid.TilePheromon)),
	}
	if paused {
		lines = append(lines, "PAUSED")
	}
	for i, line := range lines {
		rl.DrawText(line, int32(x)+10, int32(20+i*20), 18, rl.RayWhite)
	}
}
