package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"FigureEditor/internal/editor"
	"FigureEditor/internal/figure"
	"FigureEditor/internal/state"
)

// colorPicker asks the user for a color and calls done with the choice.
// done is not called when the user cancels.
type colorPicker func(title string, done func(color.Color))

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	OnTapped func()
}

func newColorSwatch(p figure.Paint, tapped func()) *colorSwatch {
	s := &colorSwatch{rect: canvas.NewRectangle(color.Transparent), OnTapped: tapped}
	s.rect.SetMinSize(fyne.NewSize(24, 24))
	s.SetPaint(p)
	s.ExtendBaseWidget(s)
	return s
}

// SetPaint shows p; None shows as transparent.
func (s *colorSwatch) SetPaint(p figure.Paint) {
	if p.IsNone() {
		s.rect.FillColor = color.Transparent
	} else {
		s.rect.FillColor = p.Color
	}
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1
	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// --- The Main Toolbar ---
var toolbarActions = []string{
	"Undo", "Redo", "", "Clear", "Delete", "MoveUp", "MoveDown", "Style", "", "MagicDraw",
}

// NewToolbar builds the action buttons and the mode and filter switches.
func NewToolbar(ed *editor.Editor, run func(name string), log hclog.Logger) fyne.CanvasObject {
	tb := widget.NewToolbar()
	for _, name := range toolbarActions {
		if name == "" {
			tb.Append(widget.NewToolbarSeparator())
			continue
		}
		a, err := ed.Action(name)
		if err != nil {
			log.Error("toolbar", "error", err)
			continue
		}
		tb.Append(widget.NewToolbarAction(iconOrPlaceholder(a.Icon, log), func() { run(name) }))
	}
	tb.Append(widget.NewToolbarSpacer())
	tb.Append(widget.NewToolbarAction(iconOrPlaceholder("about", log), func() { run("About") }))

	return container.NewBorder(nil, nil, nil,
		container.NewHBox(toggleCheck(ed, "ToggleEdit", log), toggleCheck(ed, "Filter", log)),
		tb)
}

// toggleCheck binds a check box to a toggle action. The check follows the
// toggle whoever flips it.
func toggleCheck(ed *editor.Editor, name string, log hclog.Logger) fyne.CanvasObject {
	a, err := ed.Action(name)
	if err != nil || a.Toggle == nil {
		log.Error("no toggle action", "name", name, "error", err)
		return layout.NewSpacer()
	}
	c := widget.NewCheck(a.Label, func(on bool) { a.Toggle.Set(on) })
	c.Checked = a.Toggle.On()
	a.Toggle.Listen(func(on bool) { c.SetChecked(on) })
	return c
}

// --- The Side Panel ---

// sidePanel edits the current style. It reflects the current style back
// whenever it changes, so keyboard and menu changes show up too.
type sidePanel struct {
	drawing *state.Drawing
	prefs   fyne.Preferences
	pick    colorPicker
	status  func(string)

	kind       *widget.Select
	fill       *widget.Select
	edge       *widget.Select
	fillSwatch *colorSwatch
	edgeSwatch *colorSwatch
	lineType   *widget.Select
	width      *widget.Slider
	widthLabel *widget.Label
	sides      *widget.Slider
	points     *widget.Slider
	ratio      *widget.Slider
	radius     *widget.Slider

	syncing bool
}

func newSidePanel(d *state.Drawing, prefs fyne.Preferences, pick colorPicker, status func(string)) *sidePanel {
	p := &sidePanel{drawing: d, prefs: prefs, pick: pick, status: status}

	var kinds []string
	for _, k := range figure.Kinds {
		kinds = append(kinds, k.String())
	}
	p.kind = widget.NewSelect(kinds, p.onKind)
	p.fill = widget.NewSelect(figure.FillPaintNames, func(name string) {
		p.onPaint(name, prefCustomFill, "Fill color", d.SetCurrentFill)
	})
	p.edge = widget.NewSelect(figure.EdgePaintNames, func(name string) {
		p.onPaint(name, prefCustomEdge, "Edge color", d.SetCurrentEdge)
	})
	p.fillSwatch = newColorSwatch(figure.None, func() {
		p.pickCustom(prefCustomFill, "Fill color", d.SetCurrentFill)
	})
	p.edgeSwatch = newColorSwatch(figure.None, func() {
		p.pickCustom(prefCustomEdge, "Edge color", d.SetCurrentEdge)
	})

	var lineTypes []string
	for _, lt := range figure.LineTypes {
		lineTypes = append(lineTypes, lt.String())
	}
	p.lineType = widget.NewSelect(lineTypes, p.onLineType)

	p.widthLabel = widget.NewLabel("")
	p.width = p.slider(figure.MinLineWidth, figure.MaxLineWidth, 1, func(v float64) error {
		return d.SetCurrentLineWidth(int(v))
	})
	p.sides = p.slider(3, 12, 1, func(v float64) error { return d.SetNGonSides(int(v)) })
	p.points = p.slider(3, 12, 1, func(v float64) error { return d.SetStarPoints(int(v)) })
	p.ratio = p.slider(0.1, 0.9, 0.05, d.SetStarRatio)
	p.radius = p.slider(0, 50, 1, d.SetCornerRadius)

	d.On(state.ChangeStyle, func(state.Change) { p.sync() })
	p.sync()
	return p
}

func (p *sidePanel) slider(lo, hi, step float64, set func(float64) error) *widget.Slider {
	s := widget.NewSlider(lo, hi)
	s.Step = step
	s.OnChanged = func(v float64) {
		if !p.syncing {
			p.report(set(v))
		}
	}
	return s
}

func (p *sidePanel) report(err error) {
	if err != nil && p.status != nil {
		p.status(err.Error())
	}
}

func (p *sidePanel) onKind(name string) {
	if p.syncing {
		return
	}
	k, err := figure.ParseKind(name)
	if err != nil {
		p.report(err)
		return
	}
	p.report(p.drawing.SetCurrentKind(k))
}

func (p *sidePanel) onLineType(name string) {
	if p.syncing {
		return
	}
	lt, err := figure.ParseLineType(name)
	if err != nil {
		p.report(err)
		return
	}
	p.report(p.drawing.SetCurrentLineType(lt))
}

// onPaint applies a palette choice. Others uses the saved custom color, or
// asks for one when none was saved yet.
func (p *sidePanel) onPaint(name, key, title string, set func(figure.Paint) error) {
	if p.syncing {
		return
	}
	if name != figure.PaintOthers {
		p.report(set(figure.MustPaint(name)))
		return
	}
	if paint, ok := customPaint(p.prefs, key); ok {
		p.report(set(paint))
		return
	}
	p.pickCustom(key, title, set)
}

func (p *sidePanel) pickCustom(key, title string, set func(figure.Paint) error) {
	if p.pick == nil {
		return
	}
	p.pick(title, func(c color.Color) {
		paint := figure.Solid(c)
		saveCustomPaint(p.prefs, key, paint)
		p.report(set(paint))
	})
}

// sync shows the current style without feeding it back.
func (p *sidePanel) sync() {
	p.syncing = true
	defer func() { p.syncing = false }()

	cs := p.drawing.Current()
	p.kind.SetSelected(cs.Kind.String())
	p.fill.SetSelected(paintChoice(cs.Fill))
	p.edge.SetSelected(paintChoice(cs.Edge))
	p.fillSwatch.SetPaint(cs.Fill)
	p.edgeSwatch.SetPaint(cs.Edge)
	p.lineType.SetSelected(cs.LineType.String())
	p.width.SetValue(float64(cs.LineWidth))
	p.widthLabel.SetText(fmt.Sprintf("Width: %d", cs.LineWidth))
	p.sides.SetValue(float64(cs.NGonSides))
	p.points.SetValue(float64(cs.StarPoints))
	p.ratio.SetValue(cs.StarRatio)
	p.radius.SetValue(cs.CornerRadius)
}

func paintChoice(paint figure.Paint) string {
	if name, ok := figure.PaintName(paint); ok {
		return name
	}
	return figure.PaintOthers
}

func (p *sidePanel) content() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabel("Figure:"),
		p.kind,
		widget.NewSeparator(),
		widget.NewLabel("Fill:"),
		container.NewBorder(nil, nil, nil, p.fillSwatch, p.fill),
		widget.NewLabel("Edge:"),
		container.NewBorder(nil, nil, nil, p.edgeSwatch, p.edge),
		widget.NewSeparator(),
		widget.NewLabel("Line:"),
		p.lineType,
		p.widthLabel,
		p.width,
		widget.NewSeparator(),
		widget.NewLabel("N-gon sides / star points:"),
		p.sides,
		p.points,
		widget.NewLabel("Star ratio / corner radius:"),
		p.ratio,
		p.radius,
		layout.NewSpacer(),
	)
}
