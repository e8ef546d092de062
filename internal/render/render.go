// Package render rasterizes figures with rasterx.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"iter"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/geom"
	"FigureEditor/internal/state"
)

// Background is the color of the empty canvas.
var Background color.Color = colornames.White

// selectionColor and selectionDash style the box around selected figures.
var (
	selectionColor color.Color = colornames.Dimgray
	selectionDash              = []float64{4, 4}
)

// Renderer draws onto one destination image. It reuses its rasterizers
// between figures.
type Renderer struct {
	dst    draw.Image
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

// New returns a renderer drawing onto dst.
func New(dst draw.Image) *Renderer {
	b := dst.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	return &Renderer{
		dst:    dst,
		filler: rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		dasher: rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
	}
}

// Clear paints the whole destination with c.
func (r *Renderer) Clear(c color.Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Figure paints f: its interior with the even-odd rule, then its edge,
// then the selection box when f is selected.
func (r *Renderer) Figure(f *figure.Figure) {
	outline := f.Outline()
	if f.HasFill() {
		r.filler.Clear()
		r.filler.SetWinding(false)
		r.filler.SetColor(f.Fill().Color)
		addPath(r.filler, outline)
		r.filler.Draw()
	}
	if f.HasStroke() {
		w := float64(f.LineWidth())
		var dashes []float64
		if f.LineType() == figure.LineDashed {
			dashes = []float64{3 * w, 2 * w}
		}
		r.stroke(outline, w, f.Edge().Color, dashes)
	}
	if f.Selected() {
		r.stroke(boxPath(f.BoundingBox().Inset(-2)), 1, selectionColor, selectionDash)
	}
}

func (r *Renderer) stroke(p *geom.Path, width float64, c color.Color, dashes []float64) {
	r.dasher.Clear()
	r.dasher.SetStroke(fixed.Int26_6(width*64), 4*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round, dashes, 0)
	r.dasher.SetColor(c)
	addPath(r.dasher, p)
	r.dasher.Draw()
}

// All paints the figures of seq in order over the current content.
func (r *Renderer) All(seq iter.Seq2[int, *figure.Figure]) {
	for _, f := range seq {
		r.Figure(f)
	}
}

// Draw paints the figures of seq onto dst over its current content.
func Draw(dst draw.Image, seq iter.Seq2[int, *figure.Figure]) {
	New(dst).All(seq)
}

// Image renders the filtered view of d on a white w by h image.
func Image(d *state.Drawing, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := New(img)
	r.Clear(Background)
	r.All(d.FilteredView())
	return img
}

func addPath(a rasterx.Adder, p *geom.Path) {
	open := false
	for _, el := range p.Elements() {
		switch el := el.(type) {
		case geom.MoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(toFixed(el.Point))
			open = true
		case geom.LineTo:
			a.Line(toFixed(el.Point))
		case geom.CubicTo:
			a.CubeBezier(toFixed(el.Control1), toFixed(el.Control2), toFixed(el.Point))
		case geom.Close:
			a.Stop(true)
			open = false
		}
	}
	if open {
		a.Stop(false)
	}
}

func toFixed(p geom.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

func boxPath(r geom.Rect) *geom.Path {
	p := geom.NewPath()
	p.MoveTo(r.Min.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Max.Y)
	p.LineTo(r.Min.X, r.Max.Y)
	p.Close()
	return p
}
