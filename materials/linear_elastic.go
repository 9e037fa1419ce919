package materials

import (
	"github.com/notargets/gomate/tensors"
)

// LinearElastic is small strain isotropic elasticity for a pure mechanics
// element, displacement fields 0..dim-1
type LinearElastic struct{}

func init() {
	allocators[M_LinearElastic] = func() Model { return new(LinearElastic) }
}

const linearElasticName = "linear-elastic"

func (o *LinearElastic) Init(prms Params, info ElmtInfo, soln *Solution, out *Container) error {
	return checkDim(linearElasticName, info.Dim)
}

func (o *LinearElastic) Compute(prms Params, info ElmtInfo, soln *Solution, old, cur *Container) (err error) {
	if fs, found := prms.Flag("finite-strain"); found && fs {
		return configErrorf(linearElasticName, "works only in the small strain case, please set 'finite-strain' to false")
	}
	if err = checkDim(linearElasticName, info.Dim); err != nil {
		return
	}
	if err = soln.checkFields(linearElasticName, info.Dim); err != nil {
		return
	}
	var em ElasticModuli
	if em, err = NewElasticModuli(linearElasticName, prms); err != nil {
		return
	}
	strain := tensors.NewRank2FromGradU(info.Dim, soln.GradU[:info.Dim]...).Sym()
	stress := em.Stress(strain)
	cur.SetRank2("strain", strain)
	cur.SetRank2("stress", stress)
	cur.SetRank4("jacobian", em.Stiffness(info.Dim))
	cur.SetScalar("psi", 0.5*stress.DoubleDot(strain))
	cur.SetScalar("vonMises-stress", stress.VonMises())
	cur.SetScalar("hydrostatic-stress", stress.Trace()/3.)
	return
}

func (o *LinearElastic) Provides() PropertyNames {
	return PropertyNames{
		ScalarKind: {"psi", "vonMises-stress", "hydrostatic-stress"},
		Rank2Kind:  {"strain", "stress"},
		Rank4Kind:  {"jacobian"},
	}
}
