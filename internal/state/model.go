package state

import (
	"math"

	"github.com/pkg/errors"

	"FigureEditor/internal/figure"
)

// ErrInvalidStyle is returned when a current-style value is out of range.
var ErrInvalidStyle = errors.New("invalid style")

// Change identifies the notification channel of a drawing mutation.
type Change int

const (
	// ChangeFigures fires when the figure list or a figure changes.
	ChangeFigures Change = iota
	// ChangeSelection fires when the selection changes.
	ChangeSelection
	// ChangeStyle fires when the current style changes.
	ChangeStyle
	// ChangeFilter fires when the filter chain changes.
	ChangeFilter
	// ChangeRepaint asks for a repaint without any data change.
	ChangeRepaint
)

func (c Change) String() string {
	switch c {
	case ChangeFigures:
		return "figures"
	case ChangeSelection:
		return "selection"
	case ChangeStyle:
		return "style"
	case ChangeFilter:
		return "filter"
	case ChangeRepaint:
		return "repaint"
	}
	return "unknown"
}

// Listener is called after a change on the channel it was registered for.
type Listener func(Change)

// CurrentStyle is the style given to newly created figures.
type CurrentStyle struct {
	Kind figure.Kind
	figure.Style

	NGonSides    int
	StarPoints   int
	StarRatio    float64 // inner radius over outer radius
	CornerRadius float64
}

// DefaultCurrentStyle is the current style at startup.
var DefaultCurrentStyle = CurrentStyle{
	Kind:         figure.Ellipse,
	Style:        figure.DefaultStyle,
	NGonSides:    6,
	StarPoints:   5,
	StarRatio:    0.5,
	CornerRadius: 10,
}

// Validate reports the first out-of-range field.
func (s CurrentStyle) Validate() error {
	switch {
	case s.Kind < figure.Circle || s.Kind > figure.Star:
		return errors.Wrapf(ErrInvalidStyle, "kind %d", int(s.Kind))
	case !s.LineType.Valid():
		return errors.Wrapf(ErrInvalidStyle, "line type %d", int(s.LineType))
	case s.LineWidth < figure.MinLineWidth || s.LineWidth > figure.MaxLineWidth:
		return errors.Wrapf(ErrInvalidStyle, "line width %d not in [%d,%d]",
			s.LineWidth, figure.MinLineWidth, figure.MaxLineWidth)
	case s.NGonSides < 3:
		return errors.Wrapf(ErrInvalidStyle, "ngon sides %d", s.NGonSides)
	case s.StarPoints < 3:
		return errors.Wrapf(ErrInvalidStyle, "star points %d", s.StarPoints)
	case !(s.StarRatio > 0 && s.StarRatio < 1):
		return errors.Wrapf(ErrInvalidStyle, "star ratio %g not in (0,1)", s.StarRatio)
	case math.IsNaN(s.CornerRadius) || s.CornerRadius < 0:
		return errors.Wrapf(ErrInvalidStyle, "corner radius %g", s.CornerRadius)
	}
	return nil
}
