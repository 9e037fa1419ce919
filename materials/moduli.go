package materials

import (
	"github.com/notargets/gomate/tensors"
)

// ElasticModuli are the isotropic moduli of a small strain solid
type ElasticModuli struct {
	K    float64 // bulk modulus
	G    float64 // shear modulus
	Lame float64 // first Lamé parameter
}

// NewElasticModuli reads the first complete pair among (E, nu), (K, G),
// (Lame, mu) and (Lame, G), in that order
func NewElasticModuli(model string, p Params) (em ElasticModuli, err error) {
	switch {
	case p.Has("E", "nu"):
		E, nu := p.Values["E"], p.Values["nu"]
		if nu <= -1 || nu >= 0.5 {
			err = configErrorf(model, "Poisson ratio nu = %g is outside (-1, 0.5)", nu)
			return
		}
		em.Lame = E * nu / ((1 + nu) * (1 - 2*nu))
		em.K = E / (3. * (1. - 2.*nu))
		em.G = 0.5 * E / (1. + nu)
	case p.Has("K", "G"):
		em.K, em.G = p.Values["K"], p.Values["G"]
		em.Lame = em.K - 2.*em.G/3.
	case p.Has("Lame", "mu"):
		em.Lame, em.G = p.Values["Lame"], p.Values["mu"]
		em.K = em.Lame + 2.*em.G/3.
	case p.Has("Lame", "G"):
		em.Lame, em.G = p.Values["Lame"], p.Values["G"]
		em.K = em.Lame + 2.*em.G/3.
	default:
		err = configErrorf(model, "invalid parameters, you should give either E,nu or K,G or Lame,mu or Lame,G")
	}
	return
}

// Stiffness is the isotropic operator Lame I⊗I + 2G I4sym
func (em ElasticModuli) Stiffness(dim int) tensors.Rank4Tensor {
	I := tensors.Identity(dim)
	return tensors.Outer(I, I).Scale(em.Lame).Add(tensors.Identity4Sym(dim).Scale(2 * em.G))
}

// Stress is K tr(ε) I + 2G dev(ε)
func (em ElasticModuli) Stress(strain tensors.Rank2Tensor) tensors.Rank2Tensor {
	return tensors.Identity(strain.Dim).Scale(em.K * strain.Trace()).Add(strain.Dev().Scale(2 * em.G))
}
