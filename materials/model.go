// Package materials implements the per quadrature point constitutive models
// and the property containers that carry their results between time steps
// and into element assembly.
//
// Every model follows the same two phase protocol:
//
//	Init     once per point before time stepping, seeds history properties
//	Compute  once per point per nonlinear iteration, reads the previous
//	         step's container and writes every provided property into the
//	         current one
//
// Compute is a pure function of its arguments, so a single model value may be
// shared by goroutines evaluating different points.
package materials

import (
	"fmt"
	"strings"
)

type Model interface {
	Init(prms Params, info ElmtInfo, soln *Solution, out *Container) error
	Compute(prms Params, info ElmtInfo, soln *Solution, old, cur *Container) error
	Provides() PropertyNames // names written by every successful Compute
}

// PropertyNames lists property names by kind
type PropertyNames map[Kind][]string

// Missing returns "kind:name" for every listed property absent from c
func (pn PropertyNames) Missing(c *Container) (missing []string) {
	for _, kind := range []Kind{ScalarKind, VectorKind, Rank2Kind, Rank4Kind, BooleanKind} {
		for _, name := range pn[kind] {
			if !c.Has(kind, name) {
				missing = append(missing, kind.String()+":"+name)
			}
		}
	}
	return
}

type ModelType uint8

const (
	M_MieheFracture ModelType = iota
	M_LinearElastic
	M_ConstantDiffusivity
	M_PolynomialDiffusivity
	M_User1
)

var (
	ModelNames = map[string]ModelType{
		"miehe-fracture":         M_MieheFracture,
		"linear-elastic":         M_LinearElastic,
		"constant-diffusivity":   M_ConstantDiffusivity,
		"polynomial-diffusivity": M_PolynomialDiffusivity,
		"user1":                  M_User1,
	}
	ModelPrintNames = []string{"Miehe Fracture", "Linear Elastic", "Constant Diffusivity",
		"Polynomial Diffusivity", "User1"}
)

// NewModelType resolves a model name from an input deck
func NewModelType(label string) (mt ModelType, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if mt, ok = ModelNames[label]; !ok {
		err = configErrorf(label, "unknown material model, available models are %s", availableNames())
	}
	return
}

func availableNames() string {
	names := make([]string, len(ModelNames))
	for name, mt := range ModelNames {
		names[mt] = name
	}
	return strings.Join(names, ", ")
}

func (mt ModelType) Print() (txt string) {
	if int(mt) < len(ModelPrintNames) {
		txt = ModelPrintNames[mt]
	}
	return
}

func (mt ModelType) String() string {
	for name, t := range ModelNames {
		if t == mt {
			return name
		}
	}
	return fmt.Sprintf("ModelType(%d)", uint8(mt))
}

// New allocates the model for a tag. Resolve the tag once at setup and keep
// the returned model, there is no lookup on the evaluation path.
func New(mt ModelType) (model Model, err error) {
	allocator, ok := allocators[mt]
	if !ok {
		return nil, fmt.Errorf("model %v is not available in 'materials' database", mt)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[ModelType]func() Model{}
