package figure

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies the shape of a figure.
type Kind int

const (
	Circle Kind = iota
	Ellipse
	Rectangle
	RoundedRectangle
	Polygon
	NGon
	Star
)

// Kinds lists every figure kind in menu order.
var Kinds = []Kind{Circle, Ellipse, Rectangle, RoundedRectangle, Polygon, NGon, Star}

var kindNames = map[Kind]string{
	Circle:           "Circle",
	Ellipse:          "Ellipse",
	Rectangle:        "Rectangle",
	RoundedRectangle: "RoundedRectangle",
	Polygon:          "Polygon",
	NGon:             "NGon",
	Star:             "Star",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind returns the kind with the given name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown figure kind %q", name)
}

// LineType is the edge pattern of a figure.
type LineType int

const (
	LineNone LineType = iota
	LineSolid
	LineDashed
)

// LineTypes lists every line type in menu order.
var LineTypes = []LineType{LineNone, LineSolid, LineDashed}

func (lt LineType) String() string {
	switch lt {
	case LineNone:
		return "None"
	case LineSolid:
		return "Solid"
	case LineDashed:
		return "Dashed"
	}
	return "Unknown"
}

// ParseLineType returns the line type with the given name, ignoring case.
func ParseLineType(name string) (LineType, error) {
	for _, lt := range LineTypes {
		if strings.EqualFold(lt.String(), name) {
			return lt, nil
		}
	}
	return 0, errors.Errorf("unknown line type %q", name)
}

// Valid reports whether lt is one of the known line types.
func (lt LineType) Valid() bool {
	return lt >= LineNone && lt <= LineDashed
}

// Line width bounds, in pixels.
const (
	MinLineWidth = 1
	MaxLineWidth = 30
)
