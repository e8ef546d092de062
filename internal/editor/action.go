package editor

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownAction is returned when no action has the requested name.
var ErrUnknownAction = errors.New("unknown action")

// Shortcut is a key with modifiers. Ctrl stands for the platform shortcut
// modifier, Command on macOS.
type Shortcut struct {
	Key   string
	Ctrl  bool
	Shift bool
	Alt   bool
}

func (s Shortcut) String() string {
	if s.Key == "" {
		return ""
	}
	var parts []string
	if s.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if s.Alt {
		parts = append(parts, "Alt")
	}
	if s.Shift {
		parts = append(parts, "Shift")
	}
	return strings.Join(append(parts, s.Key), "+")
}

// Toggle is an on/off state shared by every widget bound to an action.
// Widgets never change each other; they listen to the toggle.
type Toggle struct {
	on        bool
	apply     func(on bool)
	listeners []func(on bool)
}

func (t *Toggle) On() bool { return t.on }

// Set changes the state, applies it and notifies the listeners. Setting the
// current state does nothing.
func (t *Toggle) Set(on bool) {
	if t.on == on {
		return
	}
	t.on = on
	if t.apply != nil {
		t.apply(on)
	}
	for _, fn := range t.listeners {
		fn(on)
	}
}

// Flip inverts the state.
func (t *Toggle) Flip() { t.Set(!t.on) }

// Listen registers fn to run after every change of state.
func (t *Toggle) Listen(fn func(on bool)) {
	t.listeners = append(t.listeners, fn)
}

// Action is a named user command. Menus, toolbar buttons and shortcuts are
// bound to actions by name.
type Action struct {
	Name        string
	Label       string
	Description string
	Icon        string
	Shortcut    Shortcut
	// Toggle is set for actions that flip a shared state.
	Toggle *Toggle

	run     func() error
	enabled func() bool
}

// Enabled reports whether running the action can have an effect.
func (a *Action) Enabled() bool {
	return a.enabled == nil || a.enabled()
}

// Run performs the action. Toggle actions flip their state.
func (a *Action) Run() error {
	if a.Toggle != nil {
		a.Toggle.Flip()
		return nil
	}
	return a.run()
}

type registry struct {
	byName map[string]*Action
	order  []*Action
}

func (r *registry) add(a *Action) *Action {
	if r.byName == nil {
		r.byName = make(map[string]*Action)
	}
	if _, dup := r.byName[a.Name]; dup {
		panic("editor: duplicate action " + a.Name)
	}
	r.byName[a.Name] = a
	r.order = append(r.order, a)
	return a
}

func (r *registry) get(name string) (*Action, error) {
	a, ok := r.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAction, "%q", name)
	}
	return a, nil
}

func (r *registry) byShortcut(s Shortcut) (*Action, bool) {
	if s.Key == "" {
		return nil, false
	}
	for _, a := range r.order {
		if a.Shortcut == s {
			return a, true
		}
	}
	return nil, false
}
