// @lixen: #focus{render[viewport,track,hud]}
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

// headingGlyphs are car glyphs by heading octant, clockwise from screen up
var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// HeadingGlyph returns the arrow closest to heading
func HeadingGlyph(heading float64) rune {
	idx := int(math.Round(vmath.WrapAngle(heading) / (math.Pi / 4)))
	return headingGlyphs[(idx%8+8)%8]
}

// FormatLapTime renders m:ss.mmm, placeholder dashes for zero
func FormatLapTime(d time.Duration) string {
	if d <= 0 {
		return "-:--.---"
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

// TerminalRenderer draws race snapshots into split viewports
type TerminalRenderer struct {
	screen  tcell.Screen
	raster  *TrackRaster
	palette Palette
}

// NewTerminalRenderer creates a renderer for tr; the track raster is built here
func NewTerminalRenderer(screen tcell.Screen, tr *track.Track, color bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		raster:  NewTrackRaster(tr),
		palette: NewPalette(color),
	}
}

// SetTrack rebuilds the raster for a new track
func (r *TerminalRenderer) SetTrack(tr *track.Track) {
	r.raster = NewTrackRaster(tr)
}

// RenderFrame renders the entire race frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.Clear()
	width, height := r.screen.Size()

	views := Layout(len(snap.Vehicles), width, height)
	for _, vp := range views {
		if vp.Overview {
			r.drawOverview(vp, snap)
			continue
		}
		r.drawPlayerView(vp, snap)
	}
	r.drawBorders(views, width, height)
	r.drawBanner(snap, width, height)

	r.screen.Show()
}

// camera maps world points to cells of a viewport centered on a world point
type camera struct {
	vp     Viewport
	center vmath.Vec2
	cx, cy int
	sx, sy float64 // World units per cell
}

func newCamera(vp Viewport, top int, center vmath.Vec2, sx, sy float64) camera {
	return camera{
		vp:     vp,
		center: center,
		cx:     vp.X + vp.W/2,
		cy:     top + (vp.Y+vp.H-top)/2,
		sx:     sx,
		sy:     sy,
	}
}

func (c camera) world(x, y int) vmath.Vec2 {
	return vmath.V2(c.center.X+float64(x-c.cx)*c.sx, c.center.Y+float64(y-c.cy)*c.sy)
}

func (c camera) cell(p vmath.Vec2) (int, int) {
	return c.cx + int(math.Round((p.X-c.center.X)/c.sx)), c.cy + int(math.Round((p.Y-c.center.Y)/c.sy))
}

// drawTrack fills rows [top, vp bottom) with the surface under each cell center
func (r *TerminalRenderer) drawTrack(cam camera, top int) {
	vp := cam.vp
	for y := top; y < vp.Y+vp.H; y++ {
		for x := vp.X; x < vp.X+vp.W; x++ {
			ch, st := r.surfaceCell(r.raster.Surface(cam.world(x, y)), x, y)
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (r *TerminalRenderer) surfaceCell(s Surface, x, y int) (rune, tcell.Style) {
	switch s {
	case SurfaceAsphalt:
		return ' ', r.palette.Asphalt()
	case SurfaceFinish:
		light := (x+y)%2 == 0
		if light {
			return '▀', r.palette.Finish(true)
		}
		return '▄', r.palette.Finish(false)
	case SurfaceCheckpoint:
		return '┄', r.palette.Checkpoint()
	default:
		if r.palette.color {
			return ' ', r.palette.Grass()
		}
		return '.', r.palette.Grass()
	}
}

func (r *TerminalRenderer) drawPlayerView(vp Viewport, snap engine.Snapshot) {
	if vp.Player >= len(snap.Vehicles) || vp.H < 2 {
		return
	}
	me := snap.Vehicles[vp.Player]
	top := vp.Y + 1 // HUD row
	cam := newCamera(vp, top, me.Pos, parameter.CellWorldWidth, parameter.CellWorldHeight)

	r.drawTrack(cam, top)

	if snap.GhostVisible {
		r.plot(cam, top, vmath.V2(snap.Ghost.X, snap.Ghost.Y), HeadingGlyph(snap.Ghost.Angle), r.palette.Ghost())
	}
	for _, v := range snap.Vehicles {
		if v.Player != me.Player {
			r.plot(cam, top, v.Pos, HeadingGlyph(v.Heading), r.palette.Car(v.Player, v.Boosted))
		}
	}
	r.plot(cam, top, me.Pos, HeadingGlyph(me.Heading), r.palette.Car(me.Player, me.Boosted))

	r.drawHud(vp, snap, me)
}

// plot draws ch at the cell of world point p when visible below top
func (r *TerminalRenderer) plot(cam camera, top int, p vmath.Vec2, ch rune, st tcell.Style) {
	x, y := cam.cell(p)
	if y < top || !cam.vp.Contains(x, y) {
		return
	}
	r.screen.SetContent(x, y, ch, nil, st)
}

func (r *TerminalRenderer) drawHud(vp Viewport, snap engine.Snapshot, v engine.VehicleView) {
	hud := r.palette.Hud()
	for x := vp.X; x < vp.X+vp.W; x++ {
		r.screen.SetContent(x, vp.Y, ' ', nil, hud)
	}

	lap := min(v.Laps+1, snap.Laps)
	text := fmt.Sprintf(" P%d LAP %d/%d %s BEST %s ", v.Player+1, lap, snap.Laps, FormatLapTime(v.LapTime), FormatLapTime(v.BestLap))
	x := r.drawText(vp.X, vp.Y, vp.X+vp.W, text, hud)

	speed := fmt.Sprintf("%3.0f", math.Abs(v.Speed))
	x = r.drawText(x, vp.Y, vp.X+vp.W, speed, r.palette.Speed(v.SpeedRatio))

	switch {
	case v.Boosted:
		r.drawText(x, vp.Y, vp.X+vp.W, " SLIP", hud)
	case v.TiresOnTrack < 0.5:
		r.drawText(x, vp.Y, vp.X+vp.W, " OFF", hud)
	}
}

// drawOverview fits the whole track into the viewport with players as digits
func (r *TerminalRenderer) drawOverview(vp Viewport, snap engine.Snapshot) {
	if vp.W <= 0 || vp.H <= 0 {
		return
	}
	lo, hi := r.raster.Bounds()
	aspect := parameter.CellWorldHeight / parameter.CellWorldWidth
	sx := math.Max((hi.X-lo.X)/float64(vp.W), (hi.Y-lo.Y)/(float64(vp.H)*aspect))
	cam := newCamera(vp, vp.Y, vmath.V2Mid(lo, hi), sx, sx*aspect)

	r.drawTrack(cam, vp.Y)
	if snap.GhostVisible {
		r.plot(cam, vp.Y, vmath.V2(snap.Ghost.X, snap.Ghost.Y), 'g', r.palette.Ghost())
	}
	for _, v := range snap.Vehicles {
		r.plot(cam, vp.Y, v.Pos, rune('1'+v.Player), r.palette.Car(v.Player, false))
	}
}

func (r *TerminalRenderer) drawBorders(views []Viewport, width, height int) {
	if len(views) < 2 {
		return
	}
	st := r.palette.Border()
	mid := width / 2
	for y := range height {
		r.screen.SetContent(mid, y, tcell.RuneVLine, nil, st)
	}
	if len(views) > 2 {
		row := height / 2
		for x := range width {
			r.screen.SetContent(x, row, tcell.RuneHLine, nil, st)
		}
		r.screen.SetContent(mid, row, tcell.RunePlus, nil, st)
	}
}

// drawBanner centers race-wide messages in the upper part of the screen
func (r *TerminalRenderer) drawBanner(snap engine.Snapshot, width, height int) {
	var msg string
	switch {
	case snap.Paused:
		msg = "  PAUSED  p resume  "
	case snap.Winner != engine.NoWinner:
		msg = fmt.Sprintf("  PLAYER %d WINS  %s  r restart  esc quit  ", snap.Winner+1, FormatLapTime(snap.RaceTime))
	case !snap.Started && snap.Countdown > 0:
		msg = fmt.Sprintf("  %d  ", snap.Countdown)
	default:
		return
	}
	x := max((width-len([]rune(msg)))/2, 0)
	r.drawText(x, height/4, width, msg, r.palette.Banner())
}

// drawText writes s from x until limit and returns the next column
func (r *TerminalRenderer) drawText(x, y, limit int, s string, st tcell.Style) int {
	for _, ch := range s {
		if x >= limit {
			break
		}
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}
