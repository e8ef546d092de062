// Package tool implements the pointer state machines of the editor: one
// creation controller per figure kind and the transform controller that
// selects, moves, rotates and scales figures.
package tool

import (
	"github.com/hashicorp/go-hclog"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/geom"
	"FigureEditor/internal/history"
	"FigureEditor/internal/state"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonTertiary
)

// Modifier is a set of keyboard modifiers held during a pointer event.
type Modifier uint

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether every modifier of m is held.
func (mods Modifier) Has(m Modifier) bool { return mods&m == m }

// Event is a pointer event in world coordinates. Clicks is 2 for the second
// press of a double click.
type Event struct {
	Pos    geom.Point
	Button Button
	Mods   Modifier
	Clicks int
}

// Controller consumes the pointer events of one interaction mode.
type Controller interface {
	Press(e Event)
	Drag(e Event)
	Release(e Event)
	Move(e Event)
	// Cancel abandons the interaction in progress and reports whether there
	// was one.
	Cancel() bool
	// Active reports whether an interaction is in progress.
	Active() bool
	// Hint is the status text for the current state.
	Hint() string
}

// Env is what controllers work on.
type Env struct {
	Drawing *state.Drawing
	History *history.Manager[*figure.Figure]
	// Status receives error and progress messages. It may be nil.
	Status func(string)
	Log    hclog.Logger
}

func (env *Env) status(msg string) {
	if env.Status != nil {
		env.Status(msg)
	}
}

func (env *Env) logger() hclog.Logger {
	if env.Log == nil {
		return hclog.NewNullLogger()
	}
	return env.Log
}

// ForKind returns the creation controller for kind.
func ForKind(kind figure.Kind, env *Env) Controller {
	if kind == figure.Polygon {
		return NewPolygonCreator(env)
	}
	return NewDragCreator(kind, env)
}
