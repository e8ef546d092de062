// Package state holds the drawing: the ordered figures, the style given to
// new figures, the filter chain, and the listeners notified of changes.
package state

import (
	"iter"
	"slices"

	"github.com/hashicorp/go-hclog"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/filter"
	"FigureEditor/internal/geom"
	"FigureEditor/internal/history"
)

// Drawing is the editable document. It is not safe for concurrent use; all
// calls happen on the UI goroutine.
type Drawing struct {
	figures   []*figure.Figure
	current   CurrentStyle
	chain     *filter.Chain
	listeners map[Change][]Listener
	clock     Clock
	log       hclog.Logger
}

// Option configures a Drawing.
type Option func(*Drawing)

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(d *Drawing) {
		if l != nil {
			d.log = l
		}
	}
}

// WithCurrentStyle sets the initial current style. Invalid styles are
// ignored and the default is kept.
func WithCurrentStyle(s CurrentStyle) Option {
	return func(d *Drawing) {
		if err := s.Validate(); err != nil {
			d.log.Warn("initial style rejected", "error", err)
			return
		}
		d.current = s
	}
}

// NewDrawing returns an empty drawing with the default current style and a
// disabled filter chain.
func NewDrawing(opts ...Option) *Drawing {
	d := &Drawing{
		current:   DefaultCurrentStyle,
		chain:     filter.NewChain(),
		listeners: make(map[Change][]Listener),
		log:       hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// On registers fn on channel ch. Listeners run in registration order.
func (d *Drawing) On(ch Change, fn Listener) {
	d.listeners[ch] = append(d.listeners[ch], fn)
}

func (d *Drawing) emit(ch Change) {
	if ch != ChangeStyle {
		d.clock.Tick()
	}
	for _, fn := range d.listeners[ch] {
		fn(ch)
	}
}

// Revision changes whenever the rendered image of the drawing may change.
func (d *Drawing) Revision() uint64 { return d.clock.Now() }

// Len returns the number of figures, filtered or not.
func (d *Drawing) Len() int { return len(d.figures) }

// At returns the figure at index i, 0 being the back.
func (d *Drawing) At(i int) *figure.Figure { return d.figures[i] }

// Figures returns the figures back to front. The slice is a copy; the
// figures are live.
func (d *Drawing) Figures() []*figure.Figure {
	return slices.Clone(d.figures)
}

// IndexOf returns the index of f, or -1.
func (d *Drawing) IndexOf(f *figure.Figure) int {
	return slices.Index(d.figures, f)
}

// Add appends f in front of every other figure. A figure already in the
// drawing is not added twice.
func (d *Drawing) Add(f *figure.Figure) {
	if f == nil || d.IndexOf(f) >= 0 {
		return
	}
	d.figures = append(d.figures, f)
	d.log.Debug("figure added", "kind", f.Kind(), "id", f.ID(), "count", len(d.figures))
	d.emit(ChangeFigures)
}

// AddAll appends figs in order, skipping nil figures and figures already
// in the drawing, and notifies once.
func (d *Drawing) AddAll(figs ...*figure.Figure) {
	n := len(d.figures)
	for _, f := range figs {
		if f != nil && d.IndexOf(f) < 0 {
			d.figures = append(d.figures, f)
		}
	}
	if added := len(d.figures) - n; added > 0 {
		d.log.Debug("figures added", "added", added, "count", len(d.figures))
		d.emit(ChangeFigures)
	}
}

// Remove takes f out of the drawing and reports whether it was present.
func (d *Drawing) Remove(f *figure.Figure) bool {
	i := d.IndexOf(f)
	if i < 0 {
		return false
	}
	d.figures = slices.Delete(d.figures, i, i+1)
	d.log.Debug("figure removed", "kind", f.Kind(), "id", f.ID())
	d.emit(ChangeFigures)
	if f.Selected() {
		f.SetSelected(false)
		d.emit(ChangeSelection)
	}
	return true
}

// RemoveSelected deletes every selected figure and returns how many were
// removed.
func (d *Drawing) RemoveSelected() int {
	n := len(d.figures)
	d.figures = slices.DeleteFunc(d.figures, (*figure.Figure).Selected)
	removed := n - len(d.figures)
	if removed == 0 {
		return 0
	}
	d.log.Debug("selected figures removed", "count", removed)
	d.emit(ChangeFigures)
	d.emit(ChangeSelection)
	return removed
}

// Clear removes every figure.
func (d *Drawing) Clear() {
	if len(d.figures) == 0 {
		return
	}
	sel := len(d.Selected()) > 0
	clear(d.figures)
	d.figures = d.figures[:0]
	d.log.Debug("drawing cleared")
	d.emit(ChangeFigures)
	if sel {
		d.emit(ChangeSelection)
	}
}

// Raise moves each selected figure one slot toward the front, past an
// unselected neighbour. Selected figures keep their relative order and a
// figure already at the front stays there. It reports whether the order
// changed.
func (d *Drawing) Raise() bool {
	moved := false
	for i := len(d.figures) - 2; i >= 0; i-- {
		if d.figures[i].Selected() && !d.figures[i+1].Selected() {
			d.figures[i], d.figures[i+1] = d.figures[i+1], d.figures[i]
			moved = true
		}
	}
	if moved {
		d.emit(ChangeFigures)
	}
	return moved
}

// Lower is Raise toward the back.
func (d *Drawing) Lower() bool {
	moved := false
	for i := 1; i < len(d.figures); i++ {
		if d.figures[i].Selected() && !d.figures[i-1].Selected() {
			d.figures[i], d.figures[i-1] = d.figures[i-1], d.figures[i]
			moved = true
		}
	}
	if moved {
		d.emit(ChangeFigures)
	}
	return moved
}

// FilteredView yields the figures admitted by the filter chain back to
// front, with their index in the full list.
func (d *Drawing) FilteredView() iter.Seq2[int, *figure.Figure] {
	return func(yield func(int, *figure.Figure) bool) {
		for i, f := range d.figures {
			if !d.chain.Accept(f) {
				continue
			}
			if !yield(i, f) {
				return
			}
		}
	}
}

// FigureAt returns the front-most admitted, visible figure whose interior
// contains p.
func (d *Drawing) FigureAt(p geom.Point) (*figure.Figure, bool) {
	for _, f := range slices.Backward(d.figures) {
		if !f.Visible() || !d.chain.Accept(f) {
			continue
		}
		if f.Contains(p) {
			return f, true
		}
	}
	return nil, false
}

// Update asks for a repaint without changing anything.
func (d *Drawing) Update() {
	d.emit(ChangeRepaint)
}

// Touch reports that figures were mutated in place, by a transform for
// instance.
func (d *Drawing) Touch() {
	d.emit(ChangeFigures)
}

// Select makes f the only selected figure. It reports whether the selection
// changed.
func (d *Drawing) Select(f *figure.Figure) bool {
	changed := false
	for _, g := range d.figures {
		want := g == f
		if g.Selected() != want {
			g.SetSelected(want)
			changed = true
		}
	}
	if changed {
		d.emit(ChangeSelection)
	}
	return changed
}

// Toggle flips the selection of f and leaves the other figures alone.
func (d *Drawing) Toggle(f *figure.Figure) {
	if d.IndexOf(f) < 0 {
		return
	}
	f.SetSelected(!f.Selected())
	d.emit(ChangeSelection)
}

// SelectAll selects every admitted figure.
func (d *Drawing) SelectAll() bool {
	changed := false
	for _, f := range d.FilteredView() {
		if !f.Selected() {
			f.SetSelected(true)
			changed = true
		}
	}
	if changed {
		d.emit(ChangeSelection)
	}
	return changed
}

// ClearSelection deselects every figure and reports whether any was
// selected.
func (d *Drawing) ClearSelection() bool {
	return d.Select(nil)
}

// Selected returns the selected figures back to front.
func (d *Drawing) Selected() []*figure.Figure {
	var sel []*figure.Figure
	for _, f := range d.figures {
		if f.Selected() {
			sel = append(sel, f)
		}
	}
	return sel
}

// HasSelection reports whether any figure is selected.
func (d *Drawing) HasSelection() bool {
	return slices.ContainsFunc(d.figures, (*figure.Figure).Selected)
}

// ApplyCurrentStyleToSelected gives every selected figure the current fill,
// edge, line type and line width, and returns how many were restyled.
func (d *Drawing) ApplyCurrentStyleToSelected() int {
	n := 0
	for _, f := range d.figures {
		if f.Selected() {
			f.ApplyStyle(d.current.Style)
			n++
		}
	}
	if n > 0 {
		d.emit(ChangeFigures)
	}
	return n
}

// Snapshot captures a deep copy of the figure list.
func (d *Drawing) Snapshot() history.Memento[*figure.Figure] {
	items := make([]*figure.Figure, len(d.figures))
	for i, f := range d.figures {
		c := f.Clone()
		c.SetSelected(false)
		items[i] = c
	}
	return history.NewMemento(items)
}

// Restore replaces the figure list with copies of the snapshot content. The
// selection is cleared; current style and filters are left alone.
func (d *Drawing) Restore(m history.Memento[*figure.Figure]) {
	sel := d.HasSelection()
	figs := make([]*figure.Figure, m.Len())
	for i, f := range m.Items() {
		figs[i] = f.Clone()
	}
	d.figures = figs
	d.log.Trace("restored", "count", len(figs))
	d.emit(ChangeFigures)
	if sel {
		d.emit(ChangeSelection)
	}
}
