package state

import (
	"FigureEditor/internal/figure"
	"FigureEditor/internal/filter"
)

// Current returns the style given to new figures.
func (d *Drawing) Current() CurrentStyle { return d.current }

// SetCurrentStyle replaces the whole current style. An invalid style is
// rejected with ErrInvalidStyle and the current one is kept.
func (d *Drawing) SetCurrentStyle(s CurrentStyle) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == d.current {
		return nil
	}
	d.current = s
	d.log.Trace("current style", "kind", s.Kind, "fill", s.Fill, "edge", s.Edge,
		"line", s.LineType, "width", s.LineWidth)
	d.emit(ChangeStyle)
	return nil
}

func (d *Drawing) SetCurrentKind(k figure.Kind) error {
	s := d.current
	s.Kind = k
	return d.SetCurrentStyle(s)
}

func (d *Drawing) SetCurrentFill(p figure.Paint) error {
	s := d.current
	s.Fill = p
	return d.SetCurrentStyle(s)
}

func (d *Drawing) SetCurrentEdge(p figure.Paint) error {
	s := d.current
	s.Edge = p
	return d.SetCurrentStyle(s)
}

func (d *Drawing) SetCurrentLineType(lt figure.LineType) error {
	s := d.current
	s.LineType = lt
	return d.SetCurrentStyle(s)
}

func (d *Drawing) SetCurrentLineWidth(w int) error {
	s := d.current
	s.LineWidth = w
	return d.SetCurrentStyle(s)
}

func (d *Drawing) SetNGonSides(n int) error {
	s := d.current
	s.NGonSides = n
	return d.SetCurrentStyle(s)
}

func (d *Drawing) SetStarPoints(n int) error {
	s := d.current
	s.StarPoints = n
	return d.SetCurrentStyle(s)
}

func (d *Drawing) SetStarRatio(r float64) error {
	s := d.current
	s.StarRatio = r
	return d.SetCurrentStyle(s)
}

func (d *Drawing) SetCornerRadius(r float64) error {
	s := d.current
	s.CornerRadius = r
	return d.SetCurrentStyle(s)
}

// Filtering reports the master switch of the filter chain.
func (d *Drawing) Filtering() bool { return d.chain.Enabled() }

// SetFiltering turns the filter chain on or off.
func (d *Drawing) SetFiltering(on bool) {
	if d.chain.SetEnabled(on) {
		d.log.Debug("filtering", "enabled", on)
		d.emit(ChangeFilter)
	}
}

// AddFilter inserts f; adding a filter twice has no effect.
func (d *Drawing) AddFilter(f filter.Filter) {
	if d.chain.Add(f) {
		d.log.Debug("filter added", "category", f.Category(), "key", f.Key())
		d.emit(ChangeFilter)
	}
}

// RemoveFilter deletes the filter with the given category and key.
func (d *Drawing) RemoveFilter(cat filter.Category, key string) {
	if d.chain.Remove(cat, key) {
		d.log.Debug("filter removed", "category", cat, "key", key)
		d.emit(ChangeFilter)
	}
}

// HasFilter reports whether a filter with the given category and key is set.
func (d *Drawing) HasFilter(cat filter.Category, key string) bool {
	return d.chain.Has(cat, key)
}

// FilterKeys returns the sorted keys of the filters in cat.
func (d *Drawing) FilterKeys(cat filter.Category) []string {
	return d.chain.Keys(cat)
}

// SetFillColorFilter admits only figures filled with p. A nil paint removes
// the fill color filter.
func (d *Drawing) SetFillColorFilter(p *figure.Paint) {
	d.setColorFilter(filter.FillPaint, p, func(p figure.Paint) filter.Filter { return filter.ByFill(p) })
}

// SetEdgeColorFilter admits only figures edged with p. A nil paint removes
// the edge color filter.
func (d *Drawing) SetEdgeColorFilter(p *figure.Paint) {
	d.setColorFilter(filter.EdgePaint, p, func(p figure.Paint) filter.Filter { return filter.ByEdge(p) })
}

func (d *Drawing) setColorFilter(cat filter.Category, p *figure.Paint, build func(figure.Paint) filter.Filter) {
	if p == nil {
		if d.chain.ClearCategory(cat) {
			d.emit(ChangeFilter)
		}
		return
	}
	f := build(*p)
	keys := d.chain.Keys(cat)
	if len(keys) == 1 && keys[0] == f.Key() {
		return
	}
	d.chain.ClearCategory(cat)
	d.chain.Add(f)
	d.log.Debug("color filter", "category", cat, "key", f.Key())
	d.emit(ChangeFilter)
}

// ResetFilters removes every filter and turns filtering off.
func (d *Drawing) ResetFilters() {
	if d.chain.Len() == 0 && !d.chain.Enabled() {
		return
	}
	d.chain.Reset()
	d.emit(ChangeFilter)
}
