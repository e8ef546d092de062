package figure

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FigureEditor/internal/geom"
)

func redRect() *Figure {
	return New(RectShape{HalfWidth: 20, HalfHeight: 15}, geom.Pt(30, 25), Style{
		Fill:      MustPaint("Red"),
		Edge:      MustPaint("Black"),
		LineType:  LineSolid,
		LineWidth: 2,
	})
}

func TestFigureOutlineAndBounds(t *testing.T) {
	f := redRect()
	box := f.BoundingBox()
	assert.InDelta(t, 10, box.Min.X, 1e-9)
	assert.InDelta(t, 10, box.Min.Y, 1e-9)
	assert.InDelta(t, 50, box.Max.X, 1e-9)
	assert.InDelta(t, 40, box.Max.Y, 1e-9)
	assert.True(t, f.Contains(geom.Pt(30, 25)))
	assert.False(t, f.Contains(geom.Pt(5, 25)))
}

func TestFigureRotation(t *testing.T) {
	f := redRect()
	f.RotateBy(math.Pi / 2)
	box := f.BoundingBox()
	assert.InDelta(t, 15, box.Min.X, 1e-9)
	assert.InDelta(t, 45, box.Max.X, 1e-9)
	assert.InDelta(t, 5, box.Min.Y, 1e-9)
	assert.InDelta(t, 45, box.Max.Y, 1e-9)
}

func TestRotateAboutPivot(t *testing.T) {
	f := redRect()
	f.RotateAbout(math.Pi, geom.Pt(0, 0))
	assert.InDelta(t, -30, f.Center().X, 1e-9)
	assert.InDelta(t, -25, f.Center().Y, 1e-9)
	assert.InDelta(t, math.Pi, f.Rotation(), 1e-12)
}

func TestScale(t *testing.T) {
	f := redRect()
	require.NoError(t, f.ScaleBy(2, 0.5))
	sx, sy := f.Scale()
	assert.Equal(t, 2.0, sx)
	assert.Equal(t, 0.5, sy)
	box := f.BoundingBox()
	assert.InDelta(t, 80, box.Width(), 1e-9)
	assert.InDelta(t, 15, box.Height(), 1e-9)

	require.NoError(t, f.ScaleAbout(2, 2, geom.Pt(0, 0)))
	assert.Equal(t, geom.Pt(60, 50), f.Center())
}

func TestScaleByZeroFails(t *testing.T) {
	f := redRect()
	before := f.Clone()
	err := f.ScaleBy(0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransform))
	assert.True(t, errors.Is(f.ScaleBy(1, math.NaN()), ErrInvalidTransform))
	assert.True(t, errors.Is(f.ScaleBy(math.Inf(1), 1), ErrInvalidTransform))
	assert.True(t, f.Equal(before), "failed scale leaves the figure untouched")
}

func TestCloneIsDeep(t *testing.T) {
	f := New(PolygonShape{Vertices: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}},
		geom.Pt(0, 0), DefaultStyle)
	c := f.Clone()
	require.True(t, f.Equal(c))
	assert.Equal(t, f.ID(), c.ID())

	f.Translate(5, 5)
	f.ApplyStyle(Style{Fill: None, Edge: MustPaint("Red"), LineType: LineDashed, LineWidth: 3})
	require.NoError(t, f.Reshape(PolygonShape{Vertices: []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1}}}))

	assert.False(t, f.Equal(c))
	assert.Equal(t, geom.Pt(0, 0), c.Center())
	assert.Equal(t, DefaultStyle, c.Style())
	assert.Equal(t, geom.Pt(10, 0), c.Shape().(PolygonShape).Vertices[1])
}

func TestReshapeKeepsKind(t *testing.T) {
	f := redRect()
	err := f.Reshape(EllipseShape{RX: 1, RY: 1})
	assert.True(t, errors.Is(err, ErrInvalidFigureParameters))
	assert.Equal(t, Rectangle, f.Kind())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		ok    bool
	}{
		{"star", StarShape{Points: 5, Outer: 10, Inner: 5}, true},
		{"star two points", StarShape{Points: 2, Outer: 10, Inner: 5}, false},
		{"star inner above outer", StarShape{Points: 5, Outer: 10, Inner: 10}, false},
		{"ngon", NGonShape{Sides: 6, Radius: 4}, true},
		{"ngon two sides", NGonShape{Sides: 2, Radius: 4}, false},
		{"flat rect", RectShape{HalfWidth: 0, HalfHeight: 4}, false},
		{"circle", CircleShape{Radius: 1}, true},
		{"round rect negative radius", RoundRectShape{HalfWidth: 1, HalfHeight: 1, Radius: -1}, false},
		{"polygon duplicate vertices", PolygonShape{Vertices: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := New(tc.shape, geom.Point{}, DefaultStyle).Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidFigureParameters), "got %v", err)
			}
		})
	}
}

func TestVisibility(t *testing.T) {
	f := redRect()
	assert.True(t, f.HasFill())
	assert.True(t, f.HasStroke())

	f.ApplyStyle(Style{Fill: None, Edge: MustPaint("Red"), LineType: LineNone, LineWidth: 1})
	assert.False(t, f.HasStroke())
	assert.False(t, f.Visible())
	assert.True(t, f.Contains(geom.Pt(30, 25)), "containment ignores paint")
}

func TestApplyStyleClampsWidth(t *testing.T) {
	f := redRect()
	f.ApplyStyle(Style{Fill: MustPaint("Green"), Edge: MustPaint("Black"), LineType: LineDashed, LineWidth: 99})
	assert.Equal(t, MaxLineWidth, f.LineWidth())
	assert.Equal(t, LineDashed, f.LineType())
}

func TestPaletteNames(t *testing.T) {
	for _, name := range FillPaintNames {
		if name == PaintOthers {
			continue
		}
		p, ok := LookupPaint(name)
		require.True(t, ok, name)
		got, ok := PaintName(p)
		require.True(t, ok)
		assert.Equal(t, name, got)
	}
	_, ok := LookupPaint(PaintOthers)
	assert.False(t, ok)
	assert.True(t, None.IsNone())
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "Orange", MustPaint("Orange").String())
}

func TestParseNames(t *testing.T) {
	k, err := ParseKind("roundedrectangle")
	require.NoError(t, err)
	assert.Equal(t, RoundedRectangle, k)
	_, err = ParseKind("hexagon")
	assert.Error(t, err)

	lt, err := ParseLineType("Dashed")
	require.NoError(t, err)
	assert.Equal(t, LineDashed, lt)
}
