package figure

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Paint is either a solid color or no paint at all. The zero value is None.
// Paints are comparable and can be used as map keys.
type Paint struct {
	Color color.NRGBA
	Set   bool
}

// None is the absent paint.
var None = Paint{}

// Solid returns a paint of color c.
func Solid(c color.Color) Paint {
	return Paint{Color: color.NRGBAModel.Convert(c).(color.NRGBA), Set: true}
}

// IsNone reports whether p paints nothing.
func (p Paint) IsNone() bool {
	return !p.Set
}

func (p Paint) String() string {
	if name, ok := PaintName(p); ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B, p.Color.A)
}

// Names of the palette entries. Others stands for a color picked by the user.
const (
	PaintOthers = "Others"
	PaintNone   = "None"
)

// The palette reproduces the classic AWT colors; where colornames has the
// exact same value it is used directly.
var palette = map[string]Paint{
	"Black":   Solid(colornames.Black),
	"White":   Solid(colornames.White),
	"Red":     Solid(colornames.Red),
	"Orange":  Solid(color.NRGBA{R: 255, G: 200, A: 255}),
	"Yellow":  Solid(colornames.Yellow),
	"Green":   Solid(colornames.Lime),
	"Cyan":    Solid(colornames.Cyan),
	"Blue":    Solid(colornames.Blue),
	"Magenta": Solid(colornames.Magenta),
	PaintNone: None,
}

// FillPaintNames are the fill choices offered to the user.
var FillPaintNames = []string{
	"Black", "White", "Red", "Orange", "Yellow", "Green", "Cyan", "Blue",
	"Magenta", PaintOthers, PaintNone,
}

// EdgePaintNames are the edge choices offered to the user.
var EdgePaintNames = []string{
	"Magenta", "Red", "Orange", "Yellow", "Green", "Cyan", "Blue", "Black",
	PaintOthers,
}

// LookupPaint returns the palette paint with the given name. Others has no
// fixed value and is never found.
func LookupPaint(name string) (Paint, bool) {
	p, ok := palette[name]
	return p, ok
}

// MustPaint is LookupPaint for names known to be in the palette.
func MustPaint(name string) Paint {
	p, ok := palette[name]
	if !ok {
		panic("figure: no palette paint named " + name)
	}
	return p
}

// PaintName returns the palette name of p, if it has one.
func PaintName(p Paint) (string, bool) {
	for name, q := range palette {
		if q == p {
			return name, true
		}
	}
	return "", false
}
