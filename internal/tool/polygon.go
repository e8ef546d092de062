package tool

import (
	"fmt"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/geom"
)

const (
	// CloseDistance is how near the first vertex a click closes the polygon.
	CloseDistance = 8.0
	// minVertexGap merges clicks that land on the previous vertex, such as
	// the second press of a double click.
	minVertexGap = 1.0
)

// PolygonCreator builds a polygon one clicked vertex at a time. A rubber
// band vertex follows the pointer until the polygon is closed by a double
// click or a click on the first vertex.
type PolygonCreator struct {
	env     *Env
	state   createState
	origin  geom.Point
	placed  []geom.Point
	working *figure.Figure
}

func NewPolygonCreator(env *Env) *PolygonCreator {
	return &PolygonCreator{env: env}
}

func (c *PolygonCreator) Active() bool { return c.state != idle }

func (c *PolygonCreator) Hint() string {
	switch {
	case c.state == idle:
		return "Click to set first vertex"
	case len(c.placed) < 3:
		return "Click to add a vertex"
	}
	return "Click to add a vertex, double-click or click the first vertex to close"
}

func (c *PolygonCreator) Press(e Event) {
	if e.Button != ButtonPrimary {
		return
	}
	if c.state == idle {
		c.begin(e.Pos)
		return
	}
	closing := e.Clicks >= 2 || (len(c.placed) >= 3 && e.Pos.Distance(c.placed[0]) <= CloseDistance)
	if closing {
		c.commit()
		return
	}
	if e.Pos.Distance(c.placed[len(c.placed)-1]) > minVertexGap {
		c.placed = append(c.placed, e.Pos)
	}
	c.follow(e.Pos)
}

func (c *PolygonCreator) Drag(e Event) {
	if c.state == awaitVertex {
		c.follow(e.Pos)
	}
}

func (c *PolygonCreator) Move(e Event) {
	if c.state == awaitVertex {
		c.follow(e.Pos)
	}
}

func (c *PolygonCreator) Release(Event) {}

func (c *PolygonCreator) begin(p geom.Point) {
	c.env.History.Record()
	c.origin = p
	c.placed = []geom.Point{p}
	c.working = figure.New(figure.PolygonShape{Vertices: []geom.Point{{}, {}}}, p, c.env.Drawing.Current().Style)
	c.env.Drawing.Add(c.working)
	c.state = awaitVertex
}

// follow reshapes the working figure with the placed vertices and a rubber
// band vertex at p. While building, the figure center stays on the first
// vertex.
func (c *PolygonCreator) follow(p geom.Point) {
	c.setVertices(append(c.placed[:len(c.placed):len(c.placed)], p), c.origin)
	c.env.Drawing.Touch()
}

func (c *PolygonCreator) setVertices(world []geom.Point, center geom.Point) {
	local := make([]geom.Point, len(world))
	for i, v := range world {
		local[i] = v.Sub(center)
	}
	_ = c.working.Reshape(figure.PolygonShape{Vertices: local})
	c.working.MoveTo(center)
}

// commit closes the polygon on its placed vertices, centered on their
// centroid.
func (c *PolygonCreator) commit() {
	c.setVertices(c.placed, geom.Centroid(c.placed))
	f := c.working
	if err := f.Validate(); err != nil {
		c.abandon()
		c.env.logger().Debug("creation refused", "kind", figure.Polygon, "error", err)
		c.env.status(fmt.Sprintf("Cannot create polygon: %v", err))
		return
	}
	c.working = nil
	c.placed = nil
	c.state = idle
	c.env.Drawing.Touch()
	c.env.logger().Debug("figure created", "kind", figure.Polygon, "vertices", len(f.Shape().(figure.PolygonShape).Vertices))
}

func (c *PolygonCreator) Cancel() bool {
	if c.state == idle {
		return false
	}
	c.abandon()
	return true
}

func (c *PolygonCreator) abandon() {
	c.env.Drawing.Remove(c.working)
	_ = c.env.History.Discard()
	c.working = nil
	c.placed = nil
	c.state = idle
}
