package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize is returned when a cube edge length is not a positive
// finite number
var ErrInvalidSize = errors.New("cube size must be a positive finite number")

// Cube builds the 12 triangles of an axis-aligned cube with edge length
// size. The cube is centered on the X and Y axes and rests on the build
// plate: x and y span [-size/2, size/2], z spans [0, size]. Each face is
// two triangles whose winding is counter-clockwise seen from outside,
// consistent with the outward face normal.
func Cube(size float64) ([]Triangle, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	half := size / 2.0

	v := [8]Vector3{
		{X: -half, Y: -half, Z: 0},    // 0: bottom front left
		{X: half, Y: -half, Z: 0},     // 1: bottom front right
		{X: half, Y: half, Z: 0},      // 2: bottom back right
		{X: -half, Y: half, Z: 0},     // 3: bottom back left
		{X: -half, Y: -half, Z: size}, // 4: top front left
		{X: half, Y: -half, Z: size},  // 5: top front right
		{X: half, Y: half, Z: size},   // 6: top back right
		{X: -half, Y: half, Z: size},  // 7: top back left
	}

	down := NewVector3(0, 0, -1)
	up := NewVector3(0, 0, 1)
	front := NewVector3(0, -1, 0)
	back := NewVector3(0, 1, 0)
	left := NewVector3(-1, 0, 0)
	right := NewVector3(1, 0, 0)

	return []Triangle{
		// bottom face (z=0)
		NewTriangle(down, v[0], v[2], v[1]),
		NewTriangle(down, v[0], v[3], v[2]),
		// top face (z=size)
		NewTriangle(up, v[4], v[5], v[6]),
		NewTriangle(up, v[4], v[6], v[7]),
		// front face (y=-half)
		NewTriangle(front, v[0], v[1], v[5]),
		NewTriangle(front, v[0], v[5], v[4]),
		// back face (y=half)
		NewTriangle(back, v[3], v[6], v[2]),
		NewTriangle(back, v[3], v[7], v[6]),
		// left face (x=-half)
		NewTriangle(left, v[0], v[4], v[7]),
		NewTriangle(left, v[0], v[7], v[3]),
		// right face (x=half)
		NewTriangle(right, v[1], v[2], v[6]),
		NewTriangle(right, v[1], v[6], v[5]),
	}, nil
}
