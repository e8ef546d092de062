package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"

	"FigureEditor/internal/figure"
)

// Preference keys of the custom "Others" colors.
const (
	prefCustomFill = "paint.custom.fill"
	prefCustomEdge = "paint.custom.edge"
)

// customPaint returns the custom color saved under key.
func customPaint(p fyne.Preferences, key string) (figure.Paint, bool) {
	s := p.String(key)
	if s == "" {
		return figure.None, false
	}
	var c color.NRGBA
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
		return figure.None, false
	}
	return figure.Solid(c), true
}

func saveCustomPaint(p fyne.Preferences, key string, paint figure.Paint) {
	c := paint.Color
	p.SetString(key, fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A))
}
