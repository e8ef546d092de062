package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"FigureEditor/internal/editor"
	"FigureEditor/internal/figure"
)

const noInfo = "-"

// infoPanel shows the figure under the pointer, the status text and the
// pointer coordinates.
type infoPanel struct {
	kind      *widget.Label
	fill      *widget.Label
	edge      *widget.Label
	lineType  *widget.Label
	lineWidth *widget.Label
	center    *widget.Label

	status *widget.Label
	x, y   *widget.Label
}

func newInfoPanel() *infoPanel {
	p := &infoPanel{
		kind:      widget.NewLabel(noInfo),
		fill:      widget.NewLabel(noInfo),
		edge:      widget.NewLabel(noInfo),
		lineType:  widget.NewLabel(noInfo),
		lineWidth: widget.NewLabel(noInfo),
		center:    widget.NewLabel(noInfo),
		status:    widget.NewLabel("Ready"),
		x:         widget.NewLabel("000"),
		y:         widget.NewLabel("000"),
	}
	return p
}

// showInfo displays info, or resets every field when ok is false.
func (p *infoPanel) showInfo(info figure.Info, ok bool) {
	if !ok {
		for _, l := range []*widget.Label{p.kind, p.fill, p.edge, p.lineType, p.lineWidth, p.center} {
			l.SetText(noInfo)
		}
		return
	}
	p.kind.SetText(info.Kind.String())
	p.fill.SetText(info.Fill.String())
	p.edge.SetText(info.Edge.String())
	p.lineType.SetText(info.LineType.String())
	p.lineWidth.SetText(strconv.Itoa(info.LineWidth))
	p.center.SetText(fmt.Sprintf("%s, %s",
		editor.FormatCoordinate(info.Center.X), editor.FormatCoordinate(info.Center.Y)))
}

func (p *infoPanel) setStatus(text string) { p.status.SetText(text) }

func (p *infoPanel) setCoordinates(x, y string) {
	p.x.SetText(x)
	p.y.SetText(y)
}

func (p *infoPanel) content() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle("Figure under pointer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.New(layout.NewFormLayout(),
			widget.NewLabel("Kind"), p.kind,
			widget.NewLabel("Fill"), p.fill,
			widget.NewLabel("Edge"), p.edge,
			widget.NewLabel("Line"), p.lineType,
			widget.NewLabel("Width"), p.lineWidth,
			widget.NewLabel("Center"), p.center,
		),
	)
}

func (p *infoPanel) statusBar() fyne.CanvasObject {
	return container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewLabel("x:"), p.x, widget.NewLabel("y:"), p.y),
		p.status)
}
