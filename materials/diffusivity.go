package materials

import (
	"github.com/notargets/gomate/utils"
)

// ConcentrationField is the primary unknown of the diffusion element
const ConcentrationField = 0

// ConstantDiffusivity publishes a constant diffusion coefficient D
type ConstantDiffusivity struct{}

// PolynomialDiffusivity implements a concentration dependent coefficient
//
//	D(c) = a0 + a1 c + a2 c² + a3 c³
type PolynomialDiffusivity struct{}

func init() {
	allocators[M_ConstantDiffusivity] = func() Model { return new(ConstantDiffusivity) }
	allocators[M_PolynomialDiffusivity] = func() Model { return new(PolynomialDiffusivity) }
}

func diffusivityProvides() PropertyNames {
	return PropertyNames{
		ScalarKind: {"D", "dDdc"},
		VectorKind: {"gradc"},
	}
}

func checkScalarField(model string, info ElmtInfo, soln *Solution) (err error) {
	if info.Dim < 1 || info.Dim > 3 {
		return configErrorf(model, "unsupported dimension %d", info.Dim)
	}
	return soln.checkFields(model, ConcentrationField+1)
}

func (o *ConstantDiffusivity) Init(prms Params, info ElmtInfo, soln *Solution, out *Container) error {
	return nil
}

func (o *ConstantDiffusivity) Compute(prms Params, info ElmtInfo, soln *Solution, old, cur *Container) (err error) {
	const name = "constant-diffusivity"
	if err = checkScalarField(name, info, soln); err != nil {
		return
	}
	var vals []float64
	if vals, err = prms.Require(name, "D"); err != nil {
		return
	}
	cur.SetScalar("D", vals[0])
	cur.SetScalar("dDdc", 0)
	cur.SetVector("gradc", soln.GradU[ConcentrationField])
	return
}

func (o *ConstantDiffusivity) Provides() PropertyNames {
	return diffusivityProvides()
}

// Coefficients reads a0 (required) and a1..a3 (default zero)
func (o *PolynomialDiffusivity) Coefficients(prms Params) (a [4]float64, err error) {
	var vals []float64
	if vals, err = prms.Require("polynomial-diffusivity", "a0"); err != nil {
		return
	}
	a[0] = vals[0]
	a[1] = prms.Default("a1", 0)
	a[2] = prms.Default("a2", 0)
	a[3] = prms.Default("a3", 0)
	return
}

func (o *PolynomialDiffusivity) Dval(a [4]float64, c float64) float64 {
	return a[0] + a[1]*c + a[2]*utils.POW(c, 2) + a[3]*utils.POW(c, 3)
}

func (o *PolynomialDiffusivity) DdDc(a [4]float64, c float64) float64 {
	return a[1] + 2.0*a[2]*c + 3.0*a[3]*c*c
}

func (o *PolynomialDiffusivity) Init(prms Params, info ElmtInfo, soln *Solution, out *Container) error {
	return nil
}

func (o *PolynomialDiffusivity) Compute(prms Params, info ElmtInfo, soln *Solution, old, cur *Container) (err error) {
	if err = checkScalarField("polynomial-diffusivity", info, soln); err != nil {
		return
	}
	var a [4]float64
	if a, err = o.Coefficients(prms); err != nil {
		return
	}
	c := soln.U[ConcentrationField]
	cur.SetScalar("D", o.Dval(a, c))
	cur.SetScalar("dDdc", o.DdDc(a, c))
	cur.SetVector("gradc", soln.GradU[ConcentrationField])
	return
}

func (o *PolynomialDiffusivity) Provides() PropertyNames {
	return diffusivityProvides()
}
