package materials

// User1 is the user extension slot, here a Poisson problem
//
//	div(sigma grad(phi)) = f
//
// with constant sigma and f taken from the parameters
type User1 struct{}

func init() {
	allocators[M_User1] = func() Model { return new(User1) }
}

func (o *User1) Init(prms Params, info ElmtInfo, soln *Solution, out *Container) error {
	return nil
}

func (o *User1) Compute(prms Params, info ElmtInfo, soln *Solution, old, cur *Container) (err error) {
	const name = "user1"
	if err = checkScalarField(name, info, soln); err != nil {
		return
	}
	var vals []float64
	if vals, err = prms.Require(name, "sigma", "f"); err != nil {
		return
	}
	cur.SetScalar("sigma", vals[0])
	cur.SetScalar("dsigmadu", 0)
	cur.SetScalar("f", vals[1])
	cur.SetScalar("dfdu", 0)
	cur.SetVector("gradu", soln.GradU[0])
	return
}

func (o *User1) Provides() PropertyNames {
	return PropertyNames{
		ScalarKind: {"sigma", "dsigmadu", "f", "dfdu"},
		VectorKind: {"gradu"},
	}
}
