package materials

import (
	"github.com/notargets/gomate/tensors"
)

// ElmtInfo describes the quadrature point being evaluated. It is an input
// snapshot owned by the caller.
type ElmtInfo struct {
	Dim          int
	T, Dt        float64
	ElmtID       int
	ElmtsNum     int
	QPointID     int
	QPointsNum   int
	QPointCoords tensors.Vector
}

// Solution holds the interpolated fields at a quadrature point, indexed by
// field id: values U, rates V and gradients GradU
type Solution struct {
	U     []float64
	V     []float64
	GradU []tensors.Vector
}

func NewSolution(nFields int) *Solution {
	return &Solution{
		U:     make([]float64, nFields),
		V:     make([]float64, nFields),
		GradU: make([]tensors.Vector, nFields),
	}
}

// Clone returns a deep copy
func (s *Solution) Clone() *Solution {
	r := &Solution{
		U:     append([]float64(nil), s.U...),
		V:     append([]float64(nil), s.V...),
		GradU: append([]tensors.Vector(nil), s.GradU...),
	}
	return r
}

func (s *Solution) checkFields(model string, nFields int) error {
	if len(s.U) < nFields || len(s.GradU) < nFields {
		return configErrorf(model, "needs %d fields at the point, solution carries %d values and %d gradients",
			nFields, len(s.U), len(s.GradU))
	}
	return nil
}

func checkDim(model string, dim int) error {
	if dim != 2 && dim != 3 {
		return configErrorf(model, "works only for 2d and 3d cases, dim = %d, please check your input file", dim)
	}
	return nil
}
