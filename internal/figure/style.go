package figure

// Style is the paint state applied to a figure.
type Style struct {
	Fill      Paint
	Edge      Paint
	LineType  LineType
	LineWidth int
}

// DefaultStyle is the style in effect when the editor starts.
var DefaultStyle = Style{
	Fill:      MustPaint("Black"),
	Edge:      MustPaint("Blue"),
	LineType:  LineSolid,
	LineWidth: 4,
}

// ClampLineWidth bounds w to [MinLineWidth, MaxLineWidth].
func ClampLineWidth(w int) int {
	if w < MinLineWidth {
		return MinLineWidth
	}
	if w > MaxLineWidth {
		return MaxLineWidth
	}
	return w
}

// Normalized returns s with an in-range line width and a known line type.
func (s Style) Normalized() Style {
	s.LineWidth = ClampLineWidth(s.LineWidth)
	if !s.LineType.Valid() {
		s.LineType = LineSolid
	}
	return s
}
