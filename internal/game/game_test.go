package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/telemetry"
	"github.com/samdwyer/dungeonwalk/internal/ui"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateSurvey, "survey"},
		{StateExplore, "explore"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func newTestViewer(t *testing.T, cfg Config) *Viewer {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(100, 60)
	t.Cleanup(screen.Close)

	v := NewWithScreen(screen, cfg, gamedata.MustLoadPresetRegistry())
	v.tracer = telemetry.NoopTracer()
	v.regenerate(context.Background(), cfg.Seed)
	require.NotNil(t, v.gen)
	return v
}

type keyPress struct {
	key tcell.Key
	ch  rune
}

func key(k tcell.Key) keyPress { return keyPress{key: k} }

func runeKey(r rune) keyPress { return keyPress{key: tcell.KeyRune, ch: r} }

func (v *Viewer) press(ctx context.Context, kp keyPress) {
	v.handleKey(ctx, kp.key, kp.ch)
}

func TestViewerQuit(t *testing.T) {
	for _, ev := range []keyPress{runeKey('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		cfg := DefaultConfig()
		cfg.Seed = 5
		v := newTestViewer(t, cfg)
		v.press(context.Background(), ev)
		assert.False(t, v.running)
	}
}

func TestViewerRegenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	v := newTestViewer(t, cfg)
	first := v.gen

	v.press(context.Background(), runeKey('r'))

	assert.NotSame(t, first, v.gen)
	assert.NotEqual(t, first.ID, v.gen.ID)
	assert.NotEqual(t, first.Seed, v.gen.Seed)
	assert.True(t, v.gen.Grid.IsPassable(v.explorerX, v.explorerY))
}

func TestViewerNextPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	v := newTestViewer(t, cfg)

	v.press(context.Background(), runeKey('n'))

	assert.Equal(t, "tunnels", v.cfg.Preset)
	assert.Equal(t, 80, v.gen.Grid.Width())
	assert.Equal(t, 22, v.gen.Grid.Height())
}

func TestViewerExplorerMovesOnFloorOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	v := newTestViewer(t, cfg)
	ctx := context.Background()

	startX, startY := v.explorerX, v.explorerY
	v.press(ctx, key(tcell.KeyRight))
	assert.Equal(t, startX, v.explorerX, "no movement while surveying")

	v.press(ctx, runeKey('e'))
	require.Equal(t, StateExplore, v.state)

	// The explorer starts on the first floor tile in row-major order, so
	// the tile above it is never floor.
	v.press(ctx, key(tcell.KeyUp))
	assert.Equal(t, startY, v.explorerY)

	for _, k := range []tcell.Key{tcell.KeyRight, tcell.KeyDown, tcell.KeyLeft, tcell.KeyDown, tcell.KeyRight} {
		v.press(ctx, key(k))
		assert.True(t, v.gen.Grid.IsPassable(v.explorerX, v.explorerY))
	}
}

func TestViewerKeepsMapOnFailedRegenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	v := newTestViewer(t, cfg)
	prev := v.gen

	v.cfg.Width = 1
	v.regenerate(context.Background(), 7)

	assert.Same(t, prev, v.gen)
	require.Error(t, v.lastErr)
	assert.Contains(t, v.status(), "error:")
}

func TestViewerRender(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	v := newTestViewer(t, cfg)
	v.render()

	assert.Contains(t, v.status(), "caverns seed=5")
	assert.Contains(t, v.status(), v.gen.ShortID())
	assert.Contains(t, v.status(), "(Caverns/Tunnels/Pockets/Sprawl)")
}
