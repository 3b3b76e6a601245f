package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/telemetry"
	"github.com/samdwyer/dungeonwalk/internal/ui"
)


// Viewer is the interactive map viewer.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	presets  *gamedata.PresetRegistry
	tracer   trace.Tracer
	seeds    *rand.Rand // draws seeds for regeneration

	cfg     Config
	gen     *Generation
	lastErr error
	state   State
	running bool

	explorerX, explorerY int
}

// New creates a viewer on the terminal.
func New(cfg Config, presets *gamedata.PresetRegistry) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg, presets), nil
}

// NewWithScreen creates a viewer drawing to an already initialized screen.
func NewWithScreen(screen *ui.Screen, cfg Config, presets *gamedata.PresetRegistry) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		presets:  presets,
		tracer:   telemetry.Tracer("viewer"),
		seeds:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cfg:      cfg,
		state:    StateSurvey,
		running:  true,
	}
}

// Run generates the first map and executes the input loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, initSpan := v.tracer.Start(ctx, "viewer.init")
	v.regenerate(ctx, v.cfg.Seed)
	if v.gen == nil {
		initSpan.End()
		v.screen.Close()
		return v.lastErr
	}
	initSpan.SetAttributes(
		telemetry.KeyGenerationID.String(v.gen.ID.String()),
		attribute.Int("grid.floor_count", v.gen.Grid.FloorCount()),
	)
	initSpan.End()

	for v.running {
		v.render()
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// regenerate builds a new map for the current config with the given seed.
// On failure the previous map stays on screen and the error is shown.
func (v *Viewer) regenerate(ctx context.Context, seed int64) {
	ctx, span := v.tracer.Start(ctx, "viewer.regenerate")
	defer span.End()

	cfg := v.cfg
	cfg.Seed = seed
	gen, err := Build(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		v.lastErr = err
		return
	}

	v.lastErr = nil
	v.gen = gen
	v.cfg = gen.Config
	v.placeExplorer()

	span.SetAttributes(telemetry.GenerationAttributes(gen.ID.String(), gen.Seed, gen.Config.Preset)...)
}

// nextPreset switches to the following preset and carves a fresh map.
func (v *Viewer) nextPreset(ctx context.Context) {
	p := v.presets.Next(v.cfg.Preset)
	if p == nil {
		return
	}
	v.cfg = v.cfg.WithPreset(p)
	v.regenerate(ctx, v.seeds.Int63())
}

// placeExplorer puts the explorer on the first floor tile in row-major order.
func (v *Viewer) placeExplorer() {
	g := v.gen.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsPassable(x, y) {
				v.explorerX, v.explorerY = x, y
				return
			}
		}
	}
	v.explorerX, v.explorerY = 0, 0
}

func (v *Viewer) render() {
	view := ui.View{
		ExplorerX:    v.explorerX,
		ExplorerY:    v.explorerY,
		ShowExplorer: v.state == StateExplore,
		Status:       v.status(),
	}
	if p := v.presets.GetByID(v.cfg.Preset); p != nil {
		view.WallColor = p.WallTCellColor()
		view.FloorColor = p.FloorTCellColor()
	}
	v.renderer.Render(v.gen.Grid, view)
}

func (v *Viewer) status() string {
	if v.lastErr != nil {
		return fmt.Sprintf("error: %v  %s", v.lastErr, v.help())
	}
	return fmt.Sprintf("%s seed=%d floor=%d run=%s %s  %s",
		v.cfg.Preset, v.gen.Seed, v.gen.Grid.FloorCount(), v.gen.ShortID(), v.state, v.help())
}

// help lists the keys, naming the presets [n] cycles through.
func (v *Viewer) help() string {
	presets := v.presets.All()
	names := make([]string, len(presets))
	for i := range presets {
		names[i] = presets[i].Name
	}
	return fmt.Sprintf("[r]egen [n]ext preset (%s) [e]xplore [q]uit", strings.Join(names, "/"))
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized.
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	v.handleKey(ctx, ev.Key(), ev.Rune())
}

func (v *Viewer) handleKey(ctx context.Context, k tcell.Key, ch rune) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.tryMove(0, -1)
	case tcell.KeyDown:
		v.tryMove(0, 1)
	case tcell.KeyLeft:
		v.tryMove(-1, 0)
	case tcell.KeyRight:
		v.tryMove(1, 0)

	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.regenerate(ctx, v.seeds.Int63())
		case 'n', 'N':
			v.nextPreset(ctx)
		case 'e', 'E':
			if v.state == StateExplore {
				v.state = StateSurvey
			} else {
				v.state = StateExplore
			}
		}
	}
}

// tryMove attempts to move the explorer by the given delta.
func (v *Viewer) tryMove(dx, dy int) {
	if v.state != StateExplore {
		return
	}
	newX := v.explorerX + dx
	newY := v.explorerY + dy

	if v.gen.Grid.IsPassable(newX, newY) {
		v.explorerX, v.explorerY = newX, newY
	}
}
