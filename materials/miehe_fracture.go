package materials

import (
	"github.com/notargets/gomate/tensors"
	"github.com/notargets/gomate/utils"
)

// Field layout of the phase-field fracture element
const (
	DamageField = 0
	DispXField  = 1 // followed by uy, uz
)

// MieheFracture implements the small strain phase-field fracture model with
// a spectral tension/compression split of the elastic energy:
//
//	ψ± = 1/2 λ <tr ε>±² + G tr(ε±·ε±)
//	σ  = (g(d) + k) σ+ + σ-,   σ± = λ <tr ε>± I + 2G ε±
//	g(d) = (1-d)²
//	H  = max(H_old, ψ+)
//
// with k the stabilizer. Ref: Miehe, Hofacker, Welschinger, CMAME 199 (2010).
type MieheFracture struct {
	Split tensors.SplitFunc
}

func init() {
	allocators[M_MieheFracture] = func() Model { return &MieheFracture{Split: tensors.SpectralSplit} }
}

const mieheName = "miehe-fracture"

type mieheParams struct {
	ElasticModuli
	Gc, Eps, Viscosity, Stabilizer float64
}

func (o *MieheFracture) params(prms Params, info ElmtInfo, soln *Solution) (mp mieheParams, err error) {
	if fs, found := prms.Flag("finite-strain"); found && fs {
		err = configErrorf(mieheName, "works only in the small strain case, please set 'finite-strain' to false")
		return
	}
	// decks may write the flag as 0 or 1
	if fs, found := prms.Value("finite-strain"); found && fs != 0 {
		err = configErrorf(mieheName, "works only in the small strain case, please set 'finite-strain' to false")
		return
	}
	if err = checkDim(mieheName, info.Dim); err != nil {
		return
	}
	if err = soln.checkFields(mieheName, DispXField+info.Dim); err != nil {
		return
	}
	if mp.ElasticModuli, err = NewElasticModuli(mieheName, prms); err != nil {
		return
	}
	var vals []float64
	if vals, err = prms.Require(mieheName, "Gc", "eps"); err != nil {
		return
	}
	mp.Gc, mp.Eps = vals[0], vals[1]
	if mp.Eps <= 0 {
		err = configErrorf(mieheName, "regularization length eps = %g must be positive", mp.Eps)
		return
	}
	mp.Viscosity = prms.Default("viscosity", 0)
	mp.Stabilizer = prms.Default("stabilizer", 0)
	return
}

// Degradation returns g(d) = (1-d)² and g'(d) = -2(1-d)
func Degradation(d float64) (g, dg float64) {
	g = (1 - d) * (1 - d)
	dg = -2 * (1 - d)
	return
}

// CrackSurfaceEnergy returns F = 1/2 Gc/eps d² and its first two derivatives
func CrackSurfaceEnergy(Gc, eps, d float64) (F, dF, d2F float64) {
	F = 0.5 * Gc / eps * d * d
	dF = Gc / eps * d
	d2F = Gc / eps
	return
}

func (o *MieheFracture) split(strain tensors.Rank2Tensor) tensors.Split {
	if o.Split == nil {
		return tensors.SpectralSplit(strain)
	}
	return o.Split(strain)
}

func (o *MieheFracture) Init(prms Params, info ElmtInfo, soln *Solution, out *Container) (err error) {
	if err = checkDim(mieheName, info.Dim); err != nil {
		return
	}
	out.SetScalar("H", 0)
	out.SetRank2("dHdstrain", tensors.Zeros(info.Dim))
	return
}

func (o *MieheFracture) Compute(prms Params, info ElmtInfo, soln *Solution, old, cur *Container) (err error) {
	var mp mieheParams
	if mp, err = o.params(prms, info, soln); err != nil {
		return
	}
	var (
		dim    = info.Dim
		lame   = mp.Lame
		G      = mp.G
		I      = tensors.Identity(dim)
		gradU  = tensors.NewRank2FromGradU(dim, soln.GradU[DispXField:DispXField+dim]...)
		strain = gradU.Sym()
		d      = soln.U[DamageField]
		Hold   = old.Scalar("H")
	)
	F, dFdD, d2FdD2 := CrackSurfaceEnergy(mp.Gc, mp.Eps, d)

	split := o.split(strain)
	trEps := strain.Trace()
	trPos, trNeg := utils.BracketPos(trEps), utils.BracketNeg(trEps)

	// the volumetric coefficient is Lame's λ, not the bulk modulus K, so that
	// ψ+ + ψ- is the linear elastic energy and d = 0 recovers Hooke's law
	psiPos := 0.5*lame*trPos*trPos + G*split.Pos.Mul(split.Pos).Trace()
	psiNeg := 0.5*lame*trNeg*trNeg + G*split.Neg.Mul(split.Neg).Trace()
	g, dg := Degradation(d)
	psi := g*psiPos + psiNeg

	stressPos := I.Scale(lame * trPos).Add(split.Pos.Scale(2 * G))
	stressNeg := I.Scale(lame * trNeg).Add(split.Neg.Scale(2 * G))
	gs := g + mp.Stabilizer
	stress := stressPos.Scale(gs).Add(stressNeg)
	dstressdD := stressPos.Scale(dg)

	II := tensors.Outer(I, I)
	jacobian := II.Scale(lame * utils.SignPos(trEps)).Add(split.PPos.Scale(2 * G)).Scale(gs).
		Add(II.Scale(lame * utils.SignNeg(trEps))).
		Add(split.PNeg.Scale(2 * G))

	cur.SetBoolean("finite-strain", false)
	cur.SetScalar("viscosity", mp.Viscosity)
	cur.SetScalar("Gc", mp.Gc)
	cur.SetScalar("eps", mp.Eps)

	cur.SetScalar("F", F)
	cur.SetScalar("dFdD", dFdD)
	cur.SetScalar("d2FdD2", d2FdD2)

	cur.SetScalar("psi", psi)
	cur.SetScalar("psi-pos", psiPos)
	cur.SetScalar("psi-neg", psiNeg)
	cur.SetScalar("vonMises-stress", stress.VonMises())
	cur.SetScalar("hydrostatic-stress", stress.Trace()/3.)

	cur.SetRank2("strain", strain)
	cur.SetRank2("stress", stress)
	cur.SetRank2("dstressdD", dstressdD)
	cur.SetRank4("jacobian", jacobian)

	// irreversibility: the crack driving force never decreases
	if psiPos > Hold {
		cur.SetScalar("H", psiPos)
		cur.SetRank2("dHdstrain", stressPos)
	} else {
		cur.SetScalar("H", Hold)
		cur.SetRank2("dHdstrain", tensors.Zeros(dim))
	}
	return
}

func (o *MieheFracture) Provides() PropertyNames {
	return PropertyNames{
		ScalarKind: {"viscosity", "Gc", "eps", "F", "dFdD", "d2FdD2", "psi", "psi-pos", "psi-neg",
			"vonMises-stress", "hydrostatic-stress", "H"},
		Rank2Kind:   {"strain", "stress", "dstressdD", "dHdstrain"},
		Rank4Kind:   {"jacobian"},
		BooleanKind: {"finite-strain"},
	}
}
