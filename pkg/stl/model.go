package stl

import (
	"github.com/1cedsoda/cubegen/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new empty STL model
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// ModelFrom creates a model holding the given triangles. The slice is
// taken over, not copied; triangle order determines output order.
func ModelFrom(name string, triangles []geometry.Triangle) *Model {
	return &Model{Name: name, Triangles: triangles}
}

// AddTriangle appends a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the axis-aligned bounding box of the model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		for _, vertex := range triangle.Vertices() {
			bbox.Extend(vertex)
		}
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, triangle := range m.Triangles {
		total += triangle.Area()
	}
	return total
}
