package analysis

import (
	"fmt"

	"github.com/1cedsoda/cubegen/pkg/stl"
)

// Epsilon is the tolerance used by the structural checks
const Epsilon = 1e-9

// Issue describes a structural problem found in a model
type Issue struct {
	Triangle int
	Problem  string
}

func (i Issue) String() string {
	return fmt.Sprintf("triangle %d: %s", i.Triangle, i.Problem)
}

// ValidateModel runs structural checks over every triangle and returns
// the issues found, in triangle order. An empty result means the model
// passed. Checked per triangle:
//   - all coordinates are finite
//   - the triangle has nonzero area
//   - the stored normal agrees with the vertex winding
func ValidateModel(model *stl.Model) []Issue {
	var issues []Issue

	for i, triangle := range model.Triangles {
		finite := triangle.Normal.IsFinite()
		for _, vertex := range triangle.Vertices() {
			finite = finite && vertex.IsFinite()
		}
		if !finite {
			issues = append(issues, Issue{Triangle: i, Problem: "non-finite coordinate"})
			continue
		}

		if triangle.IsDegenerate(Epsilon) {
			issues = append(issues, Issue{Triangle: i, Problem: "degenerate (zero area)"})
			continue
		}

		if !triangle.WindingMatchesNormal(Epsilon) {
			issues = append(issues, Issue{
				Triangle: i,
				Problem:  "normal disagrees with vertex winding",
			})
		}
	}

	return issues
}
