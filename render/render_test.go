package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, y, x0, x1 int) string {
	var sb strings.Builder
	for x := x0; x < x1; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func TestLayout(t *testing.T) {
	t.Run("single fills screen", func(t *testing.T) {
		views := Layout(1, 80, 24)
		require.Len(t, views, 1)
		assert.Equal(t, Viewport{X: 0, Y: 0, W: 80, H: 24, Player: 0}, views[0])
	})

	t.Run("out of range clamps", func(t *testing.T) {
		assert.Len(t, Layout(0, 80, 24), 1)
		assert.Len(t, Layout(9, 80, 24), 4)
	})

	t.Run("two split with border column", func(t *testing.T) {
		views := Layout(2, 81, 24)
		require.Len(t, views, 2)
		assert.Equal(t, Viewport{X: 0, Y: 0, W: 40, H: 24, Player: 0}, views[0])
		assert.Equal(t, Viewport{X: 41, Y: 0, W: 40, H: 24, Player: 1}, views[1])
	})

	t.Run("three get overview cell", func(t *testing.T) {
		views := Layout(3, 80, 24)
		require.Len(t, views, 4)
		for i := range 3 {
			assert.Equal(t, i, views[i].Player)
			assert.False(t, views[i].Overview)
		}
		assert.True(t, views[3].Overview)
		assert.Equal(t, -1, views[3].Player)
		assert.Equal(t, 13, views[3].Y)
		assert.Equal(t, 11, views[3].H)
	})

	t.Run("four quadrants", func(t *testing.T) {
		views := Layout(4, 80, 24)
		require.Len(t, views, 4)
		assert.False(t, views[3].Overview)
		assert.Equal(t, 3, views[3].Player)
	})

	t.Run("empty screen", func(t *testing.T) {
		assert.Empty(t, Layout(2, 0, 0))
	})
}

func TestViewportContains(t *testing.T) {
	vp := Viewport{X: 10, Y: 5, W: 4, H: 2}
	assert.True(t, vp.Contains(10, 5))
	assert.True(t, vp.Contains(13, 6))
	assert.False(t, vp.Contains(14, 6))
	assert.False(t, vp.Contains(10, 7))
	assert.False(t, vp.Contains(9, 5))
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '↑'},
		{math.Pi / 4, '↗'},
		{math.Pi / 2, '→'},
		{3 * math.Pi / 4, '↘'},
		{math.Pi, '↓'},
		{-math.Pi, '↓'},
		{-3 * math.Pi / 4, '↙'},
		{-math.Pi / 2, '←'},
		{-math.Pi / 4, '↖'},
		{2*math.Pi + 0.1, '↑'},
		{math.Pi/8 + 0.01, '↗'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(HeadingGlyph(tt.heading)), "heading %.3f", tt.heading)
	}
}

func TestFormatLapTime(t *testing.T) {
	assert.Equal(t, "-:--.---", FormatLapTime(0))
	assert.Equal(t, "0:00.030", FormatLapTime(30*time.Millisecond))
	assert.Equal(t, "1:05.432", FormatLapTime(65432*time.Millisecond))
	assert.Equal(t, "12:00.000", FormatLapTime(12*time.Minute))
}

func TestTrackRasterMatchesTrack(t *testing.T) {
	tr := track.Generate(42, 0)
	r := NewTrackRaster(tr)

	lo, hi := r.Bounds()
	tlo, thi := tr.Bounds()
	assert.Less(t, lo.X, tlo.X)
	assert.Less(t, lo.Y, tlo.Y)
	assert.Greater(t, hi.X, thi.X)
	assert.Greater(t, hi.Y, thi.Y)

	for row := 0; row < r.rows; row += 7 {
		for col := 0; col < r.cols; col += 7 {
			p := vmath.V2(lo.X+float64(col)*r.step, lo.Y+float64(row)*r.step)
			assert.Equal(t, tr.IsPointOnTrack(p.X, p.Y), r.OnTrack(p), "node %v", p)
		}
	}

	assert.False(t, r.OnTrack(vmath.V2Sub(lo, vmath.V2(100, 100))))
	assert.Equal(t, SurfaceFinish, r.Surface(tr.PointAt(0)))
	assert.Equal(t, SurfaceCheckpoint, r.Surface(tr.PointAt(0.5)))
	assert.Equal(t, SurfaceAsphalt, r.Surface(tr.PointAt(0.25)))
	assert.Equal(t, SurfaceGrass, r.Surface(vmath.V2Sub(lo, vmath.V2(1, 1))))
}

func TestRenderFrameSinglePlayer(t *testing.T) {
	screen := newScreen(t, 80, 24)
	race := engine.NewRace(engine.DefaultConfig())
	race.Start(epoch)

	r := NewTerminalRenderer(screen, race.Track(), true)
	snap := race.Snapshot()
	r.RenderFrame(snap)

	car, _, _, _ := screen.GetContent(40, 12)
	assert.Equal(t, string(HeadingGlyph(snap.Vehicles[0].Heading)), string(car))

	hud := rowText(screen, 0, 0, 80)
	assert.Contains(t, hud, "P1 LAP 1/3")
	assert.Contains(t, hud, "BEST -:--.---")

	banner := rowText(screen, 6, 0, 80)
	assert.Contains(t, banner, "  3  ")
}

func TestRenderFrameSplitBorders(t *testing.T) {
	screen := newScreen(t, 80, 24)
	cfg := engine.DefaultConfig()
	cfg.Players = 3
	race := engine.NewRace(cfg)
	race.Start(epoch)

	r := NewTerminalRenderer(screen, race.Track(), false)
	r.RenderFrame(race.Snapshot())

	vline, _, _, _ := screen.GetContent(40, 3)
	assert.Equal(t, tcell.RuneVLine, vline)
	hline, _, _, _ := screen.GetContent(10, 12)
	assert.Equal(t, tcell.RuneHLine, hline)
	cross, _, _, _ := screen.GetContent(40, 12)
	assert.Equal(t, tcell.RunePlus, cross)

	assert.Contains(t, rowText(screen, 0, 0, 40), "P1 LAP")
	assert.Contains(t, rowText(screen, 0, 41, 80), "P2 LAP")
	assert.Contains(t, rowText(screen, 13, 0, 40), "P3 LAP")
}

func TestRenderFrameWinnerBanner(t *testing.T) {
	screen := newScreen(t, 80, 24)
	race := engine.NewRace(engine.DefaultConfig())
	r := NewTerminalRenderer(screen, race.Track(), true)

	snap := race.Snapshot()
	snap.Winner = 0
	snap.RaceTime = 61 * time.Second
	r.RenderFrame(snap)
	assert.Contains(t, rowText(screen, 6, 0, 80), "PLAYER 1 WINS  1:01.000")

	snap.Paused = true
	r.RenderFrame(snap)
	assert.Contains(t, rowText(screen, 6, 0, 80), "PAUSED")
}
