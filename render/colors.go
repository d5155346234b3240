package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the track and HUD
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)  // Tokyo Night background
	RgbGrass      = tcell.NewRGBColor(24, 56, 30)  // Dark green infield
	RgbAsphalt    = tcell.NewRGBColor(58, 60, 72)  // Slate asphalt
	RgbCenterLine = tcell.NewRGBColor(90, 92, 108) // Faint racing line
	RgbFinishDark = tcell.NewRGBColor(20, 20, 20)
	RgbFinishLite = tcell.NewRGBColor(235, 235, 235)
	RgbCheckpoint = tcell.NewRGBColor(120, 100, 40)

	RgbGhost      = tcell.NewRGBColor(150, 150, 170) // Dim lavender gray
	RgbBoost      = tcell.NewRGBColor(255, 192, 203) // Pink slipstream marker
	RgbHudText    = tcell.NewRGBColor(255, 255, 255)
	RgbHudBg      = tcell.NewRGBColor(16, 16, 24)
	RgbBannerText = tcell.NewRGBColor(0, 0, 0)
	RgbBannerBg   = tcell.NewRGBColor(255, 165, 0)
	RgbBorder     = tcell.NewRGBColor(80, 80, 100)
)

// PlayerColors are the car colors by player index
var PlayerColors = [4]tcell.Color{
	tcell.NewRGBColor(255, 80, 80),   // Red
	tcell.NewRGBColor(100, 150, 255), // Blue
	tcell.NewRGBColor(50, 255, 50),   // Green
	tcell.NewRGBColor(255, 255, 0),   // Yellow
}

// SpeedColor returns the speedometer gradient color, green at rest to red at top speed
// Ratios above 1 (slipstream) saturate to magenta
func SpeedColor(ratio float64) tcell.Color {
	switch {
	case ratio <= 0:
		return tcell.NewRGBColor(0, 160, 0)
	case ratio < 0.5: // Green to Yellow
		t := ratio / 0.5
		return tcell.NewRGBColor(int32(255*t), 160+int32(95*t), 0)
	case ratio <= 1: // Yellow to Red
		t := (ratio - 0.5) / 0.5
		return tcell.NewRGBColor(255, int32(255*(1-t)), 0)
	default:
		return tcell.NewRGBColor(255, 0, 200)
	}
}

// Palette resolves semantic styles, with a monochrome fallback for limited terminals
type Palette struct {
	color bool
}

func NewPalette(color bool) Palette {
	return Palette{color: color}
}

func (p Palette) base() tcell.Style {
	if !p.color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(RgbBackground)
}

func (p Palette) Grass() tcell.Style {
	if !p.color {
		return tcell.StyleDefault.Dim(true)
	}
	return p.base().Background(RgbGrass).Foreground(RgbGrass)
}

func (p Palette) Asphalt() tcell.Style {
	if !p.color {
		return tcell.StyleDefault
	}
	return p.base().Background(RgbAsphalt).Foreground(RgbCenterLine)
}

func (p Palette) Finish(light bool) tcell.Style {
	if !p.color {
		return tcell.StyleDefault.Reverse(light)
	}
	if light {
		return p.base().Background(RgbFinishLite).Foreground(RgbFinishDark)
	}
	return p.base().Background(RgbFinishDark).Foreground(RgbFinishLite)
}

func (p Palette) Checkpoint() tcell.Style {
	if !p.color {
		return tcell.StyleDefault.Dim(true)
	}
	return p.base().Background(RgbAsphalt).Foreground(RgbCheckpoint)
}

func (p Palette) Car(player int, boosted bool) tcell.Style {
	if !p.color {
		return tcell.StyleDefault.Bold(true)
	}
	st := p.base().Background(RgbAsphalt).Foreground(PlayerColors[player%len(PlayerColors)]).Bold(true)
	if boosted {
		st = st.Background(RgbBoost)
	}
	return st
}

func (p Palette) Ghost() tcell.Style {
	if !p.color {
		return tcell.StyleDefault.Dim(true)
	}
	return p.base().Background(RgbAsphalt).Foreground(RgbGhost).Dim(true)
}

func (p Palette) Hud() tcell.Style {
	if !p.color {
		return tcell.StyleDefault.Reverse(true)
	}
	return tcell.StyleDefault.Background(RgbHudBg).Foreground(RgbHudText)
}

func (p Palette) Speed(ratio float64) tcell.Style {
	if !p.color {
		return p.Hud()
	}
	return p.Hud().Foreground(SpeedColor(ratio))
}

func (p Palette) Banner() tcell.Style {
	if !p.color {
		return tcell.StyleDefault.Reverse(true).Bold(true)
	}
	return tcell.StyleDefault.Background(RgbBannerBg).Foreground(RgbBannerText).Bold(true)
}

func (p Palette) Border() tcell.Style {
	if !p.color {
		return tcell.StyleDefault
	}
	return p.base().Foreground(RgbBorder)
}
