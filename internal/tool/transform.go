package tool

import (
	"fmt"
	"math"

	"FigureEditor/internal/geom"
)

// MinScale is the smallest absolute scale factor a drag can reach.
const MinScale = 1e-3

type transformOp int

const (
	opNone transformOp = iota
	opMove
	opRotate
	opScale
)

func (op transformOp) String() string {
	switch op {
	case opMove:
		return "move"
	case opRotate:
		return "rotate"
	case opScale:
		return "scale"
	}
	return "none"
}

// Transformer selects figures and drags the selection. A primary drag
// moves, a secondary drag rotates around the selection centroid, and a
// tertiary or Ctrl+primary drag scales from it; holding Shift while scaling
// scales the axes independently.
//
// History is recorded when the drag first changes something, so a click
// that only selects leaves no record.
type Transformer struct {
	env      *Env
	op       transformOp
	recorded bool
	pivot    geom.Point
	start    geom.Point
	last     geom.Point
	// cumulative scale factors applied since the press
	sx, sy float64
}

func NewTransformer(env *Env) *Transformer {
	return &Transformer{env: env}
}

func (t *Transformer) Active() bool { return t.op != opNone }

func (t *Transformer) Hint() string {
	n := len(t.env.Drawing.Selected())
	switch t.op {
	case opMove:
		return fmt.Sprintf("Moving %d figure(s)", n)
	case opRotate:
		return fmt.Sprintf("Rotating %d figure(s)", n)
	case opScale:
		return fmt.Sprintf("Scaling %d figure(s), hold Shift to scale axes separately", n)
	}
	if n == 0 {
		return "Click a figure to select it, Shift-click to add it to the selection"
	}
	return "Drag to move, right-drag to rotate, Ctrl-drag to scale"
}

func (t *Transformer) Press(e Event) {
	if t.op != opNone {
		return
	}
	d := t.env.Drawing
	hit, ok := d.FigureAt(e.Pos)
	switch {
	case ok && e.Mods.Has(ModShift):
		d.Toggle(hit)
	case ok && !hit.Selected():
		d.Select(hit)
	case !ok && !e.Mods.Has(ModShift):
		d.ClearSelection()
	}
	if !ok || !hit.Selected() {
		return
	}

	switch {
	case e.Button == ButtonSecondary:
		t.op = opRotate
	case e.Button == ButtonTertiary, e.Button == ButtonPrimary && e.Mods.Has(ModCtrl):
		t.op = opScale
	case e.Button == ButtonPrimary:
		t.op = opMove
	default:
		return
	}
	t.pivot, _ = d.SelectionCentroid()
	t.start, t.last = e.Pos, e.Pos
	t.sx, t.sy = 1, 1
	t.recorded = false
}

func (t *Transformer) Drag(e Event) {
	if t.op == opNone || e.Pos == t.last {
		return
	}
	if !t.recorded {
		t.env.History.Record()
		t.recorded = true
	}
	var err error
	switch t.op {
	case opMove:
		t.move(e.Pos.Sub(t.last))
	case opRotate:
		t.rotate(e.Pos.Sub(t.pivot).Angle() - t.last.Sub(t.pivot).Angle())
	case opScale:
		err = t.scale(e.Pos, e.Mods.Has(ModShift))
	}
	if err != nil {
		t.rollback(err)
		return
	}
	t.last = e.Pos
	t.env.Drawing.Touch()
}

func (t *Transformer) Release(e Event) {
	if t.op == opNone {
		return
	}
	t.Drag(e)
	if t.op != opNone {
		t.env.logger().Debug("transform done", "op", t.op, "recorded", t.recorded)
	}
	t.op = opNone
}

func (t *Transformer) Move(Event) {}

// Cancel undoes the drag in progress.
func (t *Transformer) Cancel() bool {
	if t.op == opNone {
		return false
	}
	if t.recorded {
		_ = t.env.History.Rollback()
	}
	t.op = opNone
	return true
}

func (t *Transformer) move(delta geom.Point) {
	for _, f := range t.env.Drawing.Selected() {
		f.Translate(delta.X, delta.Y)
	}
}

func (t *Transformer) rotate(angle float64) {
	for _, f := range t.env.Drawing.Selected() {
		f.RotateAbout(angle, t.pivot)
	}
}

// scale computes the cumulative factor from the distance to the pivot at
// p over the distance at press, clamped to MinScale, and applies the part
// not applied yet. A press on the pivot is re-based on the first point off
// it.
func (t *Transformer) scale(p geom.Point, anisotropic bool) error {
	var sx, sy float64
	if anisotropic {
		sx = ratio(p.X-t.pivot.X, t.start.X-t.pivot.X)
		sy = ratio(p.Y-t.pivot.Y, t.start.Y-t.pivot.Y)
	} else {
		if t.start.Distance(t.pivot) < 1 {
			// Pressed on the pivot: measure from where the pointer leaves it.
			if p.Distance(t.pivot) >= 1 {
				t.start = p
			}
			return nil
		}
		sx = p.Distance(t.pivot) / t.start.Distance(t.pivot)
		sy = sx
	}
	sx, sy = math.Max(sx, MinScale), math.Max(sy, MinScale)
	for _, f := range t.env.Drawing.Selected() {
		if err := f.ScaleAbout(sx/t.sx, sy/t.sy, t.pivot); err != nil {
			return err
		}
	}
	t.sx, t.sy = sx, sy
	return nil
}

// ratio is |num/den|, or 1 along an axis the press gave no extent on.
func ratio(num, den float64) float64 {
	if math.Abs(den) < 1 {
		return 1
	}
	return math.Abs(num / den)
}

// rollback restores the drawing as it was at press and ends the drag.
func (t *Transformer) rollback(err error) {
	if t.recorded {
		_ = t.env.History.Rollback()
	}
	t.env.logger().Debug("transform rolled back", "op", t.op, "error", err)
	t.env.status(fmt.Sprintf("Cannot %s: %v", t.op, err))
	t.op = opNone
}
