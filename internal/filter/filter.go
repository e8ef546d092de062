// Package filter implements the chain of predicates that hides figures from
// the drawing view without removing them.
package filter

import (
	"fmt"
	"sort"

	"FigureEditor/internal/figure"
)

// Category groups filters. Filters of one category are OR-ed together and
// categories are AND-ed.
type Category int

const (
	ShapeKind Category = iota
	LineType
	FillPaint
	EdgePaint
)

var categoryNames = [...]string{"shape-kind", "line-type", "fill-paint", "edge-paint"}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Filter is a predicate over figures identified by its category and a key
// unique within that category.
type Filter interface {
	Category() Category
	Key() string
	Accept(f *figure.Figure) bool
}

// ByKind admits figures of one kind.
type ByKind figure.Kind

func (k ByKind) Category() Category           { return ShapeKind }
func (k ByKind) Key() string                  { return figure.Kind(k).String() }
func (k ByKind) Accept(f *figure.Figure) bool { return f.Kind() == figure.Kind(k) }

// ByLineType admits figures with one line type.
type ByLineType figure.LineType

func (lt ByLineType) Category() Category           { return LineType }
func (lt ByLineType) Key() string                  { return figure.LineType(lt).String() }
func (lt ByLineType) Accept(f *figure.Figure) bool { return f.LineType() == figure.LineType(lt) }

// ByFill admits figures filled with one paint.
type ByFill figure.Paint

func (p ByFill) Category() Category           { return FillPaint }
func (p ByFill) Key() string                  { return figure.Paint(p).String() }
func (p ByFill) Accept(f *figure.Figure) bool { return f.Fill() == figure.Paint(p) }

// ByEdge admits figures edged with one paint.
type ByEdge figure.Paint

func (p ByEdge) Category() Category           { return EdgePaint }
func (p ByEdge) Key() string                  { return figure.Paint(p).String() }
func (p ByEdge) Accept(f *figure.Figure) bool { return f.Edge() == figure.Paint(p) }

// Chain holds filters keyed by category and key, gated by a master switch.
// The zero value is an empty, disabled chain.
type Chain struct {
	enabled bool
	filters map[Category]map[string]Filter
}

// NewChain returns an empty, disabled chain.
func NewChain() *Chain {
	return &Chain{filters: make(map[Category]map[string]Filter)}
}

// Enabled reports the master switch.
func (c *Chain) Enabled() bool { return c.enabled }

// SetEnabled sets the master switch and reports whether it changed.
func (c *Chain) SetEnabled(on bool) bool {
	if c.enabled == on {
		return false
	}
	c.enabled = on
	return true
}

// Add inserts f and reports whether it was not already present.
func (c *Chain) Add(f Filter) bool {
	if c.filters == nil {
		c.filters = make(map[Category]map[string]Filter)
	}
	byKey := c.filters[f.Category()]
	if byKey == nil {
		byKey = make(map[string]Filter)
		c.filters[f.Category()] = byKey
	}
	if _, ok := byKey[f.Key()]; ok {
		return false
	}
	byKey[f.Key()] = f
	return true
}

// Remove deletes the filter with the given category and key and reports
// whether it was present.
func (c *Chain) Remove(cat Category, key string) bool {
	byKey := c.filters[cat]
	if _, ok := byKey[key]; !ok {
		return false
	}
	delete(byKey, key)
	if len(byKey) == 0 {
		delete(c.filters, cat)
	}
	return true
}

// Has reports whether a filter with the given category and key is present.
func (c *Chain) Has(cat Category, key string) bool {
	_, ok := c.filters[cat][key]
	return ok
}

// ClearCategory removes every filter of cat and reports whether any was
// present.
func (c *Chain) ClearCategory(cat Category) bool {
	if len(c.filters[cat]) == 0 {
		return false
	}
	delete(c.filters, cat)
	return true
}

// Keys returns the sorted keys of the filters in cat.
func (c *Chain) Keys(cat Category) []string {
	keys := make([]string, 0, len(c.filters[cat]))
	for k := range c.filters[cat] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	n := 0
	for _, byKey := range c.filters {
		n += len(byKey)
	}
	return n
}

// Reset removes every filter and turns the chain off.
func (c *Chain) Reset() {
	c.enabled = false
	c.filters = make(map[Category]map[string]Filter)
}

// Accept reports whether f is admitted. With the master switch off every
// figure is admitted. Otherwise f must be accepted by at least one filter
// of every non-empty category.
func (c *Chain) Accept(f *figure.Figure) bool {
	if !c.enabled {
		return true
	}
	for _, byKey := range c.filters {
		if len(byKey) == 0 {
			continue
		}
		admitted := false
		for _, flt := range byKey {
			if flt.Accept(f) {
				admitted = true
				break
			}
		}
		if !admitted {
			return false
		}
	}
	return true
}
