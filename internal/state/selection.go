package state

import (
	"FigureEditor/internal/geom"
)

// SelectionBounds returns the union of the bounding boxes of the selected
// figures, or an empty rectangle.
func (d *Drawing) SelectionBounds() geom.Rect {
	r := geom.EmptyRect()
	for _, f := range d.figures {
		if f.Selected() {
			r = r.Union(f.BoundingBox())
		}
	}
	return r
}

// SelectionCentroid returns the average center of the selected figures. It
// is the pivot of group rotation and scaling.
func (d *Drawing) SelectionCentroid() (geom.Point, bool) {
	var centers []geom.Point
	for _, f := range d.figures {
		if f.Selected() {
			centers = append(centers, f.Center())
		}
	}
	if len(centers) == 0 {
		return geom.Point{}, false
	}
	return geom.Centroid(centers), true
}
