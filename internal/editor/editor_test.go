package editor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/filter"
	"FigureEditor/internal/geom"
	"FigureEditor/internal/state"
	"FigureEditor/internal/tool"
)

type recorder struct {
	status []string
	info   []figure.Info
	resets int
	x, y   string
	about  string
	quit   bool
}

func newEditor() (*Editor, *recorder) {
	r := &recorder{}
	e := New(state.NewDrawing(), WithSinks(Sinks{
		Status: func(s string) { r.status = append(r.status, s) },
		Info: func(info figure.Info, ok bool) {
			if ok {
				r.info = append(r.info, info)
			} else {
				r.resets++
			}
		},
		Coordinates: func(x, y string) { r.x, r.y = x, y },
		About:       func(s string) { r.about = s },
		Quit:        func() { r.quit = true },
	}))
	return e, r
}

func at(x, y float64) tool.Event {
	return tool.Event{Pos: geom.Pt(x, y), Button: tool.ButtonPrimary, Clicks: 1}
}

func (r *recorder) lastStatus() string {
	if len(r.status) == 0 {
		return ""
	}
	return r.status[len(r.status)-1]
}

func TestCreateAndUndoThroughEditor(t *testing.T) {
	e, r := newEditor()
	d := e.Drawing()
	require.NoError(t, e.SetKind(figure.Rectangle))
	require.NoError(t, d.SetCurrentFill(figure.MustPaint("Red")))
	require.NoError(t, d.SetCurrentEdge(figure.MustPaint("Black")))
	require.NoError(t, d.SetCurrentLineWidth(2))

	e.Press(at(10, 10))
	assert.Equal(t, "Release to finish the rectangle", r.lastStatus())
	e.Drag(at(50, 40))
	e.Release(at(50, 40))
	assert.Equal(t, "Press and drag to draw a rectangle", r.lastStatus())

	require.Equal(t, 1, d.Len())
	assert.Equal(t, figure.RectShape{HalfWidth: 20, HalfHeight: 15}, d.At(0).Shape())
	assert.Equal(t, geom.Pt(30, 25), d.At(0).Center())

	require.NoError(t, e.Run("Undo"))
	assert.Zero(t, d.Len())
	require.NoError(t, e.Run("Redo"))
	assert.Equal(t, 1, d.Len())
	require.NoError(t, e.Run("Redo"), "an empty redo ring is not an error")
}

func TestActionTable(t *testing.T) {
	e, _ := newEditor()
	cases := map[string]Shortcut{
		"Quit":       {Key: "Q", Ctrl: true},
		"Undo":       {Key: "Z", Ctrl: true},
		"Redo":       {Key: "Z", Ctrl: true, Shift: true},
		"Clear":      {Key: "X", Ctrl: true},
		"About":      {Key: "I", Ctrl: true},
		"ToggleEdit": {Key: "Tab", Alt: true},
		"Filter":     {Key: "F", Ctrl: true},
		"Delete":     {Key: "X"},
		"MoveUp":     {Key: "Up", Ctrl: true},
		"MoveDown":   {Key: "Down", Ctrl: true},
		"Style":      {Key: "S"},
		"MagicDraw":  {Key: "M", Ctrl: true},
	}
	for name, sc := range cases {
		a, err := e.Action(name)
		require.NoError(t, err, name)
		assert.Equal(t, sc, a.Shortcut, name)
		assert.NotEmpty(t, a.Label, name)
		assert.NotEmpty(t, a.Icon, name)
	}
	assert.Equal(t, "Ctrl+Shift+Z", cases["Redo"].String())

	_, err := e.Action("Print")
	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.True(t, errors.Is(e.Run("Print"), ErrUnknownAction))

	for _, k := range figure.Kinds {
		_, err := e.Action("Filter." + k.String())
		assert.NoError(t, err)
	}
	for _, name := range []string{"Filter.None", "Filter.Solid", "Filter.Dashed", "Filter.FillColor", "Filter.EdgeColor"} {
		_, err := e.Action(name)
		assert.NoError(t, err)
	}
}

func TestAboutAndQuit(t *testing.T) {
	e, r := newEditor()
	require.NoError(t, e.Run("About"))
	assert.Equal(t, "Figure Editor v5.2", r.about)
	assert.True(t, e.HandleKey(Shortcut{Key: "Q", Ctrl: true}))
	assert.True(t, r.quit)
	assert.False(t, e.HandleKey(Shortcut{Key: "K"}))
}

func TestToggleEditShared(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	f := figure.New(figure.CircleShape{Radius: 10}, geom.Pt(0, 0), figure.DefaultStyle)
	d.Add(f)

	a, err := e.Action("ToggleEdit")
	require.NoError(t, err)
	var seen []bool
	a.Toggle.Listen(func(on bool) { seen = append(seen, on) })

	require.NoError(t, e.Run("ToggleEdit"))
	assert.Equal(t, ModeTransformation, e.Mode())
	e.Press(at(0, 0))
	e.Release(at(0, 0))
	assert.True(t, f.Selected())

	e.SetMode(ModeCreation)
	assert.False(t, f.Selected(), "entering creation clears the selection")
	e.SetMode(ModeCreation)
	assert.Equal(t, []bool{true, false}, seen)
}

func TestKindChangeCancelsCreation(t *testing.T) {
	e, _ := newEditor()
	e.Press(at(0, 0))
	e.Drag(at(30, 30))
	require.Equal(t, 1, e.Drawing().Len())

	require.NoError(t, e.SetKind(figure.Star))
	assert.Zero(t, e.Drawing().Len())
	assert.False(t, e.History().CanUndo())
	assert.IsType(t, &tool.DragCreator{}, e.Controller())

	require.NoError(t, e.SetKind(figure.Polygon))
	assert.IsType(t, &tool.PolygonCreator{}, e.Controller())
}

func TestEscapeAndDoubleClick(t *testing.T) {
	e, _ := newEditor()
	require.NoError(t, e.SetKind(figure.Polygon))
	e.Press(at(0, 0))
	e.Press(at(20, 0))
	assert.True(t, e.HandleKey(Shortcut{Key: "Escape"}))
	assert.Zero(t, e.Drawing().Len())

	e.Press(at(0, 0))
	e.Press(at(20, 0))
	e.Press(at(20, 20))
	e.DoubleClick(at(20, 20))
	require.Equal(t, 1, e.Drawing().Len())
	assert.Equal(t, figure.Polygon, e.Drawing().At(0).Kind())
	assert.False(t, e.Controller().Active())
}

func TestDoubleClickLeavesDragCreationIdle(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	require.NoError(t, e.SetKind(figure.Rectangle))

	for range 2 {
		e.Press(at(5, 5))
		e.Release(at(5, 5))
	}
	e.DoubleClick(at(5, 5))
	assert.Zero(t, d.Len())
	assert.False(t, e.Controller().Active())
	assert.False(t, e.History().CanUndo())

	e.Press(at(100, 100))
	e.Drag(at(140, 120))
	e.Release(at(140, 120))
	require.Equal(t, 1, d.Len())
	assert.Equal(t, geom.Pt(120, 110), d.At(0).Center())
	assert.Equal(t, figure.RectShape{HalfWidth: 20, HalfHeight: 10}, d.At(0).Shape())
}

func TestEscapeDuringCreationKeepsRedo(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	require.NoError(t, e.SetKind(figure.Rectangle))
	e.Press(at(10, 10))
	e.Drag(at(50, 40))
	e.Release(at(50, 40))
	require.NoError(t, e.Run("Undo"))
	require.True(t, e.History().CanRedo())

	e.Press(at(60, 60))
	e.Drag(at(90, 90))
	e.Escape()
	assert.Zero(t, d.Len())
	assert.True(t, e.History().CanRedo())

	require.NoError(t, e.Run("Redo"))
	require.Equal(t, 1, d.Len())
	assert.Equal(t, geom.Pt(30, 25), d.At(0).Center())
}

func TestHoverSinks(t *testing.T) {
	e, r := newEditor()
	e.Drawing().Add(figure.New(figure.CircleShape{Radius: 10}, geom.Pt(100, 50), figure.DefaultStyle))

	e.Move(tool.Event{Pos: geom.Pt(104.6, 49.2)})
	assert.Equal(t, "105", r.x)
	assert.Equal(t, "049", r.y)
	require.Len(t, r.info, 1)
	assert.Equal(t, figure.Info{
		Kind:      figure.Circle,
		Fill:      figure.MustPaint("Black"),
		Edge:      figure.MustPaint("Blue"),
		LineType:  figure.LineSolid,
		LineWidth: 4,
		Center:    geom.Pt(100, 50),
	}, r.info[0])

	e.Move(tool.Event{Pos: geom.Pt(3, 7)})
	assert.Equal(t, "003", r.x)
	assert.Equal(t, 1, r.resets)
}

func TestEditActionsRecord(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	a := figure.New(figure.CircleShape{Radius: 5}, geom.Pt(0, 0), figure.DefaultStyle)
	b := figure.New(figure.CircleShape{Radius: 5}, geom.Pt(20, 0), figure.DefaultStyle)
	c := figure.New(figure.CircleShape{Radius: 5}, geom.Pt(40, 0), figure.DefaultStyle)
	d.Add(a)
	d.Add(b)
	d.Add(c)
	d.Select(b)

	require.NoError(t, e.Run("MoveUp"))
	assert.Equal(t, []*figure.Figure{a, c, b}, d.Figures())
	require.NoError(t, e.Run("MoveDown"))
	require.NoError(t, e.Run("MoveDown"))
	assert.Equal(t, []*figure.Figure{b, a, c}, d.Figures())

	assert.True(t, e.HandleKey(Shortcut{Key: "X"}))
	assert.Equal(t, []*figure.Figure{a, c}, d.Figures())

	undo, _ := e.History().Depth()
	assert.Equal(t, 4, undo)
	for i := 0; i < 4; i++ {
		require.NoError(t, e.Run("Undo"))
	}
	ids := func() []string {
		var out []string
		for _, f := range d.Figures() {
			out = append(out, f.ID().String())
		}
		return out
	}
	assert.Equal(t, []string{a.ID().String(), b.ID().String(), c.ID().String()}, ids())
}

func TestClearRecordsWhenEmpty(t *testing.T) {
	e, _ := newEditor()
	require.NoError(t, e.Run("Clear"))
	assert.True(t, e.History().CanUndo())
}

func TestStyleAction(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	f := figure.New(figure.EllipseShape{RX: 10, RY: 5}, geom.Pt(0, 0), figure.DefaultStyle)
	d.Add(f)
	require.NoError(t, d.SetCurrentFill(figure.MustPaint("Green")))
	require.NoError(t, d.SetCurrentLineType(figure.LineDashed))

	act, err := e.Action("Style")
	require.NoError(t, err)
	assert.False(t, act.Enabled())
	d.Select(f)
	assert.True(t, act.Enabled())

	assert.True(t, e.HandleKey(Shortcut{Key: "S"}))
	assert.Equal(t, figure.MustPaint("Green"), f.Fill())
	assert.Equal(t, figure.LineDashed, f.LineType())
}

func TestMagicDraw(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	changes := 0
	d.On(state.ChangeFigures, func(state.Change) { changes++ })
	require.NoError(t, e.Run("MagicDraw"))
	require.Equal(t, len(figure.Kinds), d.Len())
	assert.Equal(t, 1, changes)

	centers := map[geom.Point]bool{}
	fills := map[figure.Paint]bool{}
	for i, f := range d.Figures() {
		assert.Equal(t, figure.Kinds[i], f.Kind())
		assert.NoError(t, f.Validate())
		assert.True(t, f.Visible())
		centers[f.Center()] = true
		fills[f.Fill()] = true
	}
	assert.Len(t, centers, d.Len())
	assert.Len(t, fills, d.Len())

	require.NoError(t, e.Run("Undo"))
	assert.Zero(t, d.Len())
}

func TestFilterActions(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	require.NoError(t, e.Run("Filter"))
	assert.True(t, d.Filtering())

	require.NoError(t, e.Run("Filter.Ellipse"))
	assert.True(t, d.HasFilter(filter.ShapeKind, "Ellipse"))
	require.NoError(t, e.Run("Filter.Dashed"))
	assert.True(t, d.HasFilter(filter.LineType, "Dashed"))
	require.NoError(t, e.Run("Filter.Ellipse"))
	assert.False(t, d.HasFilter(filter.ShapeKind, "Ellipse"))

	require.NoError(t, e.Run("Filter.FillColor"))
	assert.Equal(t, []string{"Black"}, d.FilterKeys(filter.FillPaint))
	require.NoError(t, e.Run("Filter.EdgeColor"))
	assert.Equal(t, []string{"Blue"}, d.FilterKeys(filter.EdgePaint))
	require.NoError(t, e.Run("Filter.FillColor"))
	assert.Empty(t, d.FilterKeys(filter.FillPaint))

	require.NoError(t, e.Run("Filter"))
	assert.False(t, d.Filtering())
	assert.False(t, e.History().CanUndo(), "filters are not part of history")
}

func TestResetFiltersTurnsTogglesOff(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	require.NoError(t, e.Run("Filter"))
	require.NoError(t, e.Run("Filter.Star"))
	require.NoError(t, e.Run("Filter.EdgeColor"))
	d.AddFilter(filter.ByLineType(figure.LineDashed))

	star, err := e.Action("Filter.Star")
	require.NoError(t, err)
	var seen []bool
	star.Toggle.Listen(func(on bool) { seen = append(seen, on) })

	require.NoError(t, e.Run("Filter.Reset"))
	assert.False(t, d.Filtering())
	assert.False(t, d.HasFilter(filter.ShapeKind, "Star"))
	assert.False(t, d.HasFilter(filter.LineType, "Dashed"))
	assert.Empty(t, d.FilterKeys(filter.EdgePaint))
	for _, name := range []string{"Filter", "Filter.Star", "Filter.EdgeColor"} {
		a, err := e.Action(name)
		require.NoError(t, err)
		assert.False(t, a.Toggle.On(), name)
	}
	assert.Equal(t, []bool{false}, seen)

	require.NoError(t, e.Run("Filter"))
	assert.True(t, d.Filtering(), "the master toggle follows the reset")
}

func TestSelectAllAction(t *testing.T) {
	e, _ := newEditor()
	d := e.Drawing()
	a, err := e.Action("SelectAll")
	require.NoError(t, err)
	assert.False(t, a.Enabled())
	assert.Equal(t, Shortcut{Key: "A", Ctrl: true}, a.Shortcut)

	require.NoError(t, e.Run("MagicDraw"))
	assert.True(t, a.Enabled())
	assert.True(t, e.HandleKey(Shortcut{Key: "A", Ctrl: true}))
	assert.Equal(t, ModeTransformation, e.Mode())
	assert.Len(t, d.Selected(), d.Len())

	undo, _ := e.History().Depth()
	assert.Equal(t, 1, undo, "selecting is not recorded")
}

func TestFormatCoordinate(t *testing.T) {
	assert.Equal(t, "000", FormatCoordinate(0))
	assert.Equal(t, "042", FormatCoordinate(41.5))
	assert.Equal(t, "1234", FormatCoordinate(1234))
}
