// Package history implements bounded undo/redo over memento snapshots.
package history

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// DefaultCapacity is the depth of the undo and redo rings.
const DefaultCapacity = 32

// ErrEmptyHistory is returned by Undo and Redo when there is nothing to
// restore. Callers treat it as a silent no-op.
var ErrEmptyHistory = errors.New("empty history")

// Memento is an immutable snapshot of an originator's state.
type Memento[T any] struct {
	items []T
}

// NewMemento wraps items. The originator must hand over copies it will not
// mutate afterwards.
func NewMemento[T any](items []T) Memento[T] {
	return Memento[T]{items: items}
}

// Len returns the number of items in the snapshot.
func (m Memento[T]) Len() int { return len(m.items) }

// Items returns the snapshot content. Callers must copy before mutating.
func (m Memento[T]) Items() []T { return m.items }

// Originator is the state managed by a Manager.
type Originator[T any] interface {
	// Snapshot returns a memento that later mutations cannot alter.
	Snapshot() Memento[T]
	// Restore replaces the current state with the content of m without
	// altering m.
	Restore(m Memento[T])
}

// ring is a bounded LIFO stack that evicts its oldest entry when full.
type ring[T any] struct {
	items []Memento[T]
	cap   int
}

func (r *ring[T]) push(m Memento[T]) (evicted bool) {
	if len(r.items) == r.cap {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
		evicted = true
	}
	r.items = append(r.items, m)
	return evicted
}

func (r *ring[T]) pop() (Memento[T], bool) {
	if len(r.items) == 0 {
		return Memento[T]{}, false
	}
	last := len(r.items) - 1
	m := r.items[last]
	r.items[last] = Memento[T]{}
	r.items = r.items[:last]
	return m, true
}

func (r *ring[T]) clear() {
	clear(r.items)
	r.items = r.items[:0]
}

// take empties the ring and returns its entries.
func (r *ring[T]) take() []Memento[T] {
	items := r.items
	r.items = nil
	return items
}

// Manager keeps the undo and redo rings of one originator.
// Callers record before mutating the originator.
type Manager[T any] struct {
	origin Originator[T]
	undo   ring[T]
	redo   ring[T]
	// shelved holds the redo entries the last Record cleared, until the
	// record is discarded or rolled back.
	shelved   []Memento[T]
	listeners []func()
	log       hclog.Logger
}

// Option configures a Manager.
type Option[T any] func(*Manager[T])

// WithCapacity sets the depth of both rings.
func WithCapacity[T any](n int) Option[T] {
	return func(m *Manager[T]) {
		if n > 0 {
			m.undo.cap = n
			m.redo.cap = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger[T any](l hclog.Logger) Option[T] {
	return func(m *Manager[T]) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns a manager over origin with empty rings.
func New[T any](origin Originator[T], opts ...Option[T]) *Manager[T] {
	m := &Manager[T]{
		origin: origin,
		undo:   ring[T]{cap: DefaultCapacity},
		redo:   ring[T]{cap: DefaultCapacity},
		log:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnChange registers fn to run whenever the rings change.
func (m *Manager[T]) OnChange(fn func()) {
	m.listeners = append(m.listeners, fn)
}

func (m *Manager[T]) changed() {
	for _, fn := range m.listeners {
		fn()
	}
}

// Record pushes a snapshot of the current state onto the undo ring and
// clears the redo ring. Discard and Rollback bring the redo entries back.
func (m *Manager[T]) Record() {
	if m.undo.push(m.origin.Snapshot()) {
		m.log.Debug("undo ring full, oldest snapshot evicted", "capacity", m.undo.cap)
	}
	m.shelved = m.redo.take()
	m.log.Trace("recorded", "undo", len(m.undo.items))
	m.changed()
}

// Undo restores the last recorded state, saving the current one for Redo.
func (m *Manager[T]) Undo() error {
	snap, ok := m.undo.pop()
	if !ok {
		return ErrEmptyHistory
	}
	m.shelved = nil
	m.redo.push(m.origin.Snapshot())
	m.origin.Restore(snap)
	m.log.Debug("undo", "undo", len(m.undo.items), "redo", len(m.redo.items))
	m.changed()
	return nil
}

// Redo restores the last undone state, saving the current one for Undo.
func (m *Manager[T]) Redo() error {
	snap, ok := m.redo.pop()
	if !ok {
		return ErrEmptyHistory
	}
	m.shelved = nil
	m.undo.push(m.origin.Snapshot())
	m.origin.Restore(snap)
	m.log.Debug("redo", "undo", len(m.undo.items), "redo", len(m.redo.items))
	m.changed()
	return nil
}

// Discard drops the last record without restoring it, for an action that
// was abandoned before it changed anything visible to history.
func (m *Manager[T]) Discard() error {
	if _, ok := m.undo.pop(); !ok {
		return ErrEmptyHistory
	}
	m.unshelve()
	m.changed()
	return nil
}

// Rollback restores the last record and drops it, without saving the
// current state for Redo. It undoes a failed action.
func (m *Manager[T]) Rollback() error {
	snap, ok := m.undo.pop()
	if !ok {
		return ErrEmptyHistory
	}
	m.origin.Restore(snap)
	m.unshelve()
	m.log.Debug("rolled back", "undo", len(m.undo.items))
	m.changed()
	return nil
}

// unshelve puts back the redo entries cleared by the dropped record.
func (m *Manager[T]) unshelve() {
	if m.shelved != nil {
		m.redo.items = m.shelved
		m.shelved = nil
	}
}

func (m *Manager[T]) CanUndo() bool { return len(m.undo.items) > 0 }
func (m *Manager[T]) CanRedo() bool { return len(m.redo.items) > 0 }

// Depth returns the sizes of the undo and redo rings.
func (m *Manager[T]) Depth() (undo, redo int) {
	return len(m.undo.items), len(m.redo.items)
}

// Clear empties both rings.
func (m *Manager[T]) Clear() {
	m.undo.clear()
	m.redo.clear()
	m.shelved = nil
	m.changed()
}
