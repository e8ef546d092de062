package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"FigureEditor/internal/editor"
	"FigureEditor/internal/geom"
	"FigureEditor/internal/render"
	"FigureEditor/internal/state"
	"FigureEditor/internal/tool"
)

// BoardWidget is the drawing canvas. It rasterizes the filtered view of the
// drawing and forwards pointer events to the editor.
type BoardWidget struct {
	widget.BaseWidget
	editor *editor.Editor
	raster *canvas.Raster

	// pressed is set between a button press and its release; button and
	// mods are those of the press.
	pressed bool
	button  tool.Button
	mods    tool.Modifier

	frame    *image.RGBA
	frameRev uint64
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.DoubleTappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(ed *editor.Editor) *BoardWidget {
	b := &BoardWidget{editor: ed}
	b.raster = canvas.NewRaster(b.draw)
	b.raster.SetMinSize(fyne.NewSize(300, 300))
	for _, ch := range []state.Change{state.ChangeFigures, state.ChangeSelection, state.ChangeFilter, state.ChangeRepaint} {
		ed.Drawing().On(ch, func(state.Change) { b.Refresh() })
	}
	b.ExtendBaseWidget(b)
	return b
}

// draw renders at the logical size of the widget so world coordinates
// match pointer positions. The frame is reused until the drawing changes.
func (b *BoardWidget) draw(_, _ int) image.Image {
	size := b.Size()
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	rev := b.editor.Drawing().Revision()
	if b.frame == nil || b.frameRev != rev || b.frame.Bounds().Dx() != w || b.frame.Bounds().Dy() != h {
		b.frame = render.Image(b.editor.Drawing(), w, h)
		b.frameRev = rev
	}
	return b.frame
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}

func (b *BoardWidget) event(pos fyne.Position) tool.Event {
	return tool.Event{
		Pos:    geom.Pt(float64(pos.X), float64(pos.Y)),
		Button: b.button,
		Mods:   b.mods,
		Clicks: 1,
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	b.pressed = true
	b.button = toolButton(e.Button)
	b.mods = toolModifiers(e.Modifier)
	b.editor.Press(b.event(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if !b.pressed {
		return
	}
	b.pressed = false
	b.editor.Release(b.event(e.Position))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.pressed {
		b.editor.Drag(b.event(e.Position))
	}
}

func (b *BoardWidget) DragEnd() {}

// MouseMoved also carries drags of buttons that fyne does not report
// through Dragged.
func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.pressed {
		b.editor.Drag(b.event(e.Position))
		return
	}
	b.editor.Move(tool.Event{Pos: geom.Pt(float64(e.Position.X), float64(e.Position.Y))})
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) { b.MouseMoved(e) }
func (b *BoardWidget) MouseOut()                     {}

func (b *BoardWidget) DoubleTapped(e *fyne.PointEvent) {
	b.editor.DoubleClick(tool.Event{
		Pos:    geom.Pt(float64(e.Position.X), float64(e.Position.Y)),
		Button: tool.ButtonPrimary,
	})
}

func toolButton(b desktop.MouseButton) tool.Button {
	switch {
	case b&desktop.MouseButtonPrimary != 0:
		return tool.ButtonPrimary
	case b&desktop.MouseButtonSecondary != 0:
		return tool.ButtonSecondary
	case b&desktop.MouseButtonTertiary != 0:
		return tool.ButtonTertiary
	}
	return tool.ButtonNone
}

// toolModifiers maps fyne modifiers. The platform shortcut modifier counts
// as Ctrl.
func toolModifiers(m fyne.KeyModifier) tool.Modifier {
	var mods tool.Modifier
	if m&fyne.KeyModifierShift != 0 {
		mods |= tool.ModShift
	}
	if m&(fyne.KeyModifierControl|fyne.KeyModifierShortcutDefault) != 0 {
		mods |= tool.ModCtrl
	}
	if m&fyne.KeyModifierAlt != 0 {
		mods |= tool.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		mods |= tool.ModSuper
	}
	return mods
}
