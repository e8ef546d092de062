// Package editor ties the drawing, its history and the pointer controllers
// together behind named actions, independent of any widget toolkit.
package editor

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/filter"
	"FigureEditor/internal/geom"
	"FigureEditor/internal/history"
	"FigureEditor/internal/state"
	"FigureEditor/internal/tool"
)

// AboutText is shown by the About action.
const AboutText = "Figure Editor v5.2"

// Mode is the operation mode of the pointer.
type Mode int

const (
	// ModeCreation builds new figures of the current kind.
	ModeCreation Mode = iota
	// ModeTransformation selects, moves, rotates and scales figures.
	ModeTransformation
)

func (m Mode) String() string {
	if m == ModeTransformation {
		return "transformation"
	}
	return "creation"
}

// Sinks receive the editor output. Nil sinks are skipped.
type Sinks struct {
	Status func(text string)
	// Info gets the figure under the pointer, or ok=false when there is
	// none.
	Info func(info figure.Info, ok bool)
	// Coordinates gets the pointer position, three digits per axis.
	Coordinates func(x, y string)
	About       func(text string)
	Quit        func()
}

// Option configures an Editor.
type Option func(*Editor)

func WithSinks(s Sinks) Option {
	return func(e *Editor) { e.sinks = s }
}

func WithLogger(l hclog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithHistoryCapacity sets the depth of the undo and redo rings.
func WithHistoryCapacity(n int) Option {
	return func(e *Editor) { e.capacity = n }
}

// Editor dispatches pointer events and actions to the drawing.
type Editor struct {
	drawing  *state.Drawing
	history  *history.Manager[*figure.Figure]
	env      *tool.Env
	sinks    Sinks
	log      hclog.Logger
	capacity int

	edit        *Toggle
	filters     []*Toggle
	kind        figure.Kind
	creator     tool.Controller
	transformer *tool.Transformer
	actions     registry

	// posted is set when a controller reported something during the
	// current event, so its hint does not overwrite the message.
	posted bool
}

// New returns an editor in creation mode over d.
func New(d *state.Drawing, opts ...Option) *Editor {
	e := &Editor{
		drawing:  d,
		log:      hclog.NewNullLogger(),
		capacity: history.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history = history.New[*figure.Figure](d,
		history.WithCapacity[*figure.Figure](e.capacity),
		history.WithLogger[*figure.Figure](e.log.Named("history")))
	e.env = &tool.Env{
		Drawing: d,
		History: e.history,
		Status:  e.post,
		Log:     e.log.Named("tool"),
	}
	e.kind = d.Current().Kind
	e.creator = tool.ForKind(e.kind, e.env)
	e.transformer = tool.NewTransformer(e.env)
	e.registerActions()

	d.On(state.ChangeStyle, func(state.Change) {
		if k := d.Current().Kind; k != e.kind {
			e.installCreator(k)
		}
	})
	return e
}

func (e *Editor) Drawing() *state.Drawing                   { return e.drawing }
func (e *Editor) History() *history.Manager[*figure.Figure] { return e.history }

func (e *Editor) Mode() Mode {
	if e.edit.On() {
		return ModeTransformation
	}
	return ModeCreation
}

// SetMode switches the operation mode. Any interaction in progress is
// cancelled; entering creation mode clears the selection.
func (e *Editor) SetMode(m Mode) {
	e.edit.Set(m == ModeTransformation)
}

func (e *Editor) switchMode(transform bool) {
	e.creator.Cancel()
	e.transformer.Cancel()
	if !transform {
		e.drawing.ClearSelection()
	}
	e.log.Debug("mode", "mode", e.Mode())
	e.showHint()
}

// SetKind selects the kind of the figures to create. An unfinished figure
// is cancelled.
func (e *Editor) SetKind(k figure.Kind) error {
	return e.drawing.SetCurrentKind(k)
}

func (e *Editor) installCreator(k figure.Kind) {
	if e.creator.Cancel() {
		e.log.Debug("creation cancelled by kind change", "from", e.kind, "to", k)
	}
	e.kind = k
	e.creator = tool.ForKind(k, e.env)
	e.showHint()
}

// Controller returns the controller receiving pointer events in the current
// mode.
func (e *Editor) Controller() tool.Controller {
	if e.Mode() == ModeTransformation {
		return e.transformer
	}
	return e.creator
}

func (e *Editor) post(text string) {
	e.posted = true
	if e.sinks.Status != nil {
		e.sinks.Status(text)
	}
}

func (e *Editor) showHint() {
	if e.sinks.Status != nil {
		e.sinks.Status(e.Controller().Hint())
	}
}

// dispatch runs fn on the current controller and then shows its hint,
// unless the controller posted a message of its own.
func (e *Editor) dispatch(fn func(tool.Controller)) {
	e.posted = false
	fn(e.Controller())
	if !e.posted {
		e.showHint()
	}
	e.posted = false
}

func (e *Editor) Press(ev tool.Event) {
	e.dispatch(func(c tool.Controller) { c.Press(ev) })
}

func (e *Editor) Drag(ev tool.Event) {
	e.dispatch(func(c tool.Controller) { c.Drag(ev) })
	e.coordinates(ev.Pos)
}

func (e *Editor) Release(ev tool.Event) {
	e.dispatch(func(c tool.Controller) { c.Release(ev) })
}

// DoubleClick delivers the second press of a double click. Only creation
// controllers use it.
func (e *Editor) DoubleClick(ev tool.Event) {
	if e.Mode() != ModeCreation {
		return
	}
	ev.Clicks = 2
	e.Press(ev)
}

// Move reports hover: the pointer position and the figure under it.
func (e *Editor) Move(ev tool.Event) {
	e.Controller().Move(ev)
	e.coordinates(ev.Pos)
	if e.sinks.Info == nil {
		return
	}
	if f, ok := e.drawing.FigureAt(ev.Pos); ok {
		e.sinks.Info(f.Info(), true)
	} else {
		e.sinks.Info(figure.Info{}, false)
	}
}

func (e *Editor) coordinates(p geom.Point) {
	if e.sinks.Coordinates != nil {
		e.sinks.Coordinates(FormatCoordinate(p.X), FormatCoordinate(p.Y))
	}
}

// FormatCoordinate rounds v to an integer with at least three digits.
func FormatCoordinate(v float64) string {
	return fmt.Sprintf("%03d", int(math.Round(v)))
}

// Escape cancels the interaction in progress.
func (e *Editor) Escape() {
	if e.Controller().Cancel() {
		e.log.Debug("interaction cancelled", "mode", e.Mode())
	}
	e.showHint()
}

// HandleKey runs the action bound to s, or cancels on Escape. It reports
// whether the key was used.
func (e *Editor) HandleKey(s Shortcut) bool {
	if s == (Shortcut{Key: "Escape"}) {
		e.Escape()
		return true
	}
	a, ok := e.actions.byShortcut(s)
	if !ok {
		return false
	}
	if err := a.Run(); err != nil {
		e.post(err.Error())
	}
	return true
}

// Action returns the action with the given name.
func (e *Editor) Action(name string) (*Action, error) {
	return e.actions.get(name)
}

// Actions lists every action in registration order.
func (e *Editor) Actions() []*Action {
	return append([]*Action(nil), e.actions.order...)
}

// Run performs the named action.
func (e *Editor) Run(name string) error {
	a, err := e.actions.get(name)
	if err != nil {
		return err
	}
	e.log.Trace("action", "name", name)
	return a.Run()
}

// finishInteraction cancels an unfinished creation or drag so an action
// sees a settled drawing.
func (e *Editor) finishInteraction() {
	e.creator.Cancel()
	e.transformer.Cancel()
}

// record snapshots the drawing and runs mutate.
func (e *Editor) record(mutate func()) error {
	e.finishInteraction()
	e.history.Record()
	mutate()
	return nil
}

func (e *Editor) undo() error {
	e.finishInteraction()
	if err := e.history.Undo(); err != nil && !errors.Is(err, history.ErrEmptyHistory) {
		return err
	}
	return nil
}

func (e *Editor) redo() error {
	e.finishInteraction()
	if err := e.history.Redo(); err != nil && !errors.Is(err, history.ErrEmptyHistory) {
		return err
	}
	return nil
}

func (e *Editor) quit() error {
	if e.sinks.Quit != nil {
		e.sinks.Quit()
	}
	return nil
}

func (e *Editor) about() error {
	if e.sinks.About != nil {
		e.sinks.About(AboutText)
	}
	return nil
}

func (e *Editor) registerActions() {
	commands := []struct {
		name, label, desc, icon string
		shortcut                Shortcut
		run                     func() error
		enabled                 func() bool
	}{
		{"Quit", "Quit", "Quit the editor", "quit",
			Shortcut{Key: "Q", Ctrl: true}, e.quit, nil},
		{"Undo", "Undo", "Undo the last change", "undo",
			Shortcut{Key: "Z", Ctrl: true}, e.undo, e.history.CanUndo},
		{"Redo", "Redo", "Redo the last undone change", "redo",
			Shortcut{Key: "Z", Ctrl: true, Shift: true}, e.redo, e.history.CanRedo},
		{"Clear", "Clear", "Remove every figure", "clear",
			Shortcut{Key: "X", Ctrl: true}, func() error { return e.record(e.drawing.Clear) }, nil},
		{"About", "About", "About the editor", "about",
			Shortcut{Key: "I", Ctrl: true}, e.about, nil},
		{"Delete", "Delete", "Delete the selected figures", "delete",
			Shortcut{Key: "X"}, func() error { return e.record(func() { e.drawing.RemoveSelected() }) }, e.drawing.HasSelection},
		{"MoveUp", "Move up", "Move the selected figures one step to the front", "up",
			Shortcut{Key: "Up", Ctrl: true}, func() error { return e.record(func() { e.drawing.Raise() }) }, e.drawing.HasSelection},
		{"MoveDown", "Move down", "Move the selected figures one step to the back", "down",
			Shortcut{Key: "Down", Ctrl: true}, func() error { return e.record(func() { e.drawing.Lower() }) }, e.drawing.HasSelection},
		{"Style", "Style", "Apply the current style to the selected figures", "style",
			Shortcut{Key: "S"}, func() error { return e.record(func() { e.drawing.ApplyCurrentStyleToSelected() }) }, e.drawing.HasSelection},
		{"MagicDraw", "Magic draw", "Add one figure of each kind", "magic",
			Shortcut{Key: "M", Ctrl: true}, func() error { return e.record(e.magicDraw) }, nil},
		{"SelectAll", "Select all", "Select every shown figure", "select",
			Shortcut{Key: "A", Ctrl: true}, e.selectAll, func() bool { return e.drawing.Len() > 0 }},
	}
	for _, c := range commands {
		e.actions.add(&Action{
			Name:        c.name,
			Label:       c.label,
			Description: c.desc,
			Icon:        c.icon,
			Shortcut:    c.shortcut,
			run:         c.run,
			enabled:     c.enabled,
		})
	}

	e.edit = &Toggle{apply: e.switchMode}
	e.actions.add(&Action{
		Name:        "ToggleEdit",
		Label:       "Edit",
		Description: "Switch between creating and transforming figures",
		Icon:        "edit",
		Shortcut:    Shortcut{Key: "Tab", Alt: true},
		Toggle:      e.edit,
	})
	e.actions.add(&Action{
		Name:        "Filter",
		Label:       "Filter",
		Description: "Show only the figures admitted by the filters",
		Icon:        "filter",
		Shortcut:    Shortcut{Key: "F", Ctrl: true},
		Toggle:      e.trackFilter(&Toggle{on: e.drawing.Filtering(), apply: e.drawing.SetFiltering}),
	})
	e.actions.add(&Action{
		Name:        "Filter.Reset",
		Label:       "Reset filters",
		Description: "Remove every filter and show all figures",
		Icon:        "reset",
		run:         e.resetFilters,
	})
	for _, k := range figure.Kinds {
		e.actions.add(&Action{
			Name:        "Filter." + k.String(),
			Label:       kindLabel(k),
			Description: "Show " + kindLabel(k) + " figures",
			Icon:        "kind." + k.String(),
			Toggle:      e.filterToggle(filter.ByKind(k)),
		})
	}
	for _, lt := range figure.LineTypes {
		e.actions.add(&Action{
			Name:        "Filter." + lt.String(),
			Label:       lt.String() + " line",
			Description: "Show figures with " + lt.String() + " edges",
			Icon:        "line." + lt.String(),
			Toggle:      e.filterToggle(filter.ByLineType(lt)),
		})
	}
	e.actions.add(&Action{
		Name:        "Filter.FillColor",
		Label:       "Fill color",
		Description: "Show figures filled with the current fill paint",
		Icon:        "fill",
		Toggle: e.colorToggle(func(p *figure.Paint) {
			if p != nil {
				*p = e.drawing.Current().Fill
			}
			e.drawing.SetFillColorFilter(p)
		}),
	})
	e.actions.add(&Action{
		Name:        "Filter.EdgeColor",
		Label:       "Edge color",
		Description: "Show figures edged with the current edge paint",
		Icon:        "edge",
		Toggle: e.colorToggle(func(p *figure.Paint) {
			if p != nil {
				*p = e.drawing.Current().Edge
			}
			e.drawing.SetEdgeColorFilter(p)
		}),
	})
}

// colorToggle filters on the current paint while on. set receives a paint
// to fill in, or nil to remove the filter.
func (e *Editor) colorToggle(set func(p *figure.Paint)) *Toggle {
	return e.trackFilter(&Toggle{apply: func(on bool) {
		if on {
			set(new(figure.Paint))
		} else {
			set(nil)
		}
	}})
}

func (e *Editor) filterToggle(f filter.Filter) *Toggle {
	return e.trackFilter(&Toggle{
		on: e.drawing.HasFilter(f.Category(), f.Key()),
		apply: func(on bool) {
			if on {
				e.drawing.AddFilter(f)
			} else {
				e.drawing.RemoveFilter(f.Category(), f.Key())
			}
		},
	})
}

func (e *Editor) trackFilter(t *Toggle) *Toggle {
	e.filters = append(e.filters, t)
	return t
}

// resetFilters clears the filter chain and turns every filter toggle off.
func (e *Editor) resetFilters() error {
	e.drawing.ResetFilters()
	for _, t := range e.filters {
		t.Set(false)
	}
	return nil
}

// selectAll switches to transformation mode and selects every shown
// figure.
func (e *Editor) selectAll() error {
	e.SetMode(ModeTransformation)
	e.drawing.SelectAll()
	e.showHint()
	return nil
}

func kindLabel(k figure.Kind) string {
	switch k {
	case figure.NGon:
		return "N-gon"
	case figure.RoundedRectangle:
		return "Rounded rectangle"
	}
	return k.String()
}
