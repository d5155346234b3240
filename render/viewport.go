package render

import (
	"github.com/samber/lo"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Viewport is a screen rectangle following one player, or the track overview
type Viewport struct {
	X, Y, W, H int
	Player     int  // Followed player, -1 for the overview
	Overview   bool // Whole-track minimap
}

// Contains reports whether cell (x, y) lies inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

// Layout splits the screen: 1 player full screen, 2 side by side, 3 or 4 in a 2x2 grid
// With 3 players the fourth cell shows the overview; one-cell borders separate panes
func Layout(players, width, height int) []Viewport {
	players = lo.Clamp(players, parameter.MinPlayers, parameter.MaxPlayers)
	if width <= 0 || height <= 0 {
		return nil
	}

	left := width / 2
	rightX, rightW := left+1, max(width-left-1, 0)
	top := height / 2
	bottomY, bottomH := top+1, max(height-top-1, 0)

	switch players {
	case 1:
		return []Viewport{{X: 0, Y: 0, W: width, H: height, Player: 0}}
	case 2:
		return []Viewport{
			{X: 0, Y: 0, W: left, H: height, Player: 0},
			{X: rightX, Y: 0, W: rightW, H: height, Player: 1},
		}
	}

	cells := []Viewport{
		{X: 0, Y: 0, W: left, H: top},
		{X: rightX, Y: 0, W: rightW, H: top},
		{X: 0, Y: bottomY, W: left, H: bottomH},
		{X: rightX, Y: bottomY, W: rightW, H: bottomH},
	}
	return lo.Map(cells, func(c Viewport, i int) Viewport {
		if i < players {
			c.Player = i
		} else {
			c.Player, c.Overview = -1, true
		}
		return c
	})
}
