package geometry

// Triangle represents a triangular facet in 3D space.
// The vertex order establishes the outward direction: viewed from
// outside the solid, V1, V2, V3 appear counter-clockwise, and Normal
// points along (V2-V1) x (V3-V1).
type Triangle struct {
	Normal Vector3
	V1     Vector3
	V2     Vector3
	V3     Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Vertices returns the three vertices in winding order
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.V1, t.V2, t.V3}
}

// ComputedNormal derives the unit normal from the vertex winding
func (t Triangle) ComputedNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// IsDegenerate reports whether the triangle has (near-)zero area,
// i.e. its vertices are collinear or coincident
func (t Triangle) IsDegenerate(epsilon float64) bool {
	return t.Area() < epsilon
}

// WindingMatchesNormal reports whether the stored normal agrees with
// the vertex winding: the cross product of the first two edges must be
// a positive multiple of Normal. Degenerate triangles never match.
func (t Triangle) WindingMatchesNormal(epsilon float64) bool {
	if t.IsDegenerate(epsilon) {
		return false
	}
	return t.ComputedNormal().Dot(t.Normal) > epsilon
}

// EdgeLengths returns the lengths of the three edges in winding order
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}
