package materials

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomate/tensors"
)

func TestModelType(t *testing.T) {
	for name, mt := range ModelNames {
		got, err := NewModelType("  " + name + " ")
		require.NoError(t, err)
		assert.Equal(t, mt, got)
		assert.Equal(t, name, mt.String())
		assert.NotEmpty(t, mt.Print())
		mdl, err := New(mt)
		require.NoError(t, err)
		assert.NotNil(t, mdl)
		assert.NotEmpty(t, mdl.Provides())
	}
	mt, err := NewModelType("Linear-Elastic")
	require.NoError(t, err)
	assert.Equal(t, M_LinearElastic, mt)
	assert.Equal(t, "Linear Elastic", mt.Print())

	_, err = NewModelType("neo-hookean")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
	assert.Contains(t, err.Error(), "miehe-fracture, linear-elastic")

	_, err = New(ModelType(99))
	assert.Error(t, err)
	assert.Equal(t, "ModelType(99)", ModelType(99).String())
}

func TestLinearElastic(t *testing.T) {
	mdl, err := New(M_LinearElastic)
	require.NoError(t, err)
	prms := NewParams(map[string]float64{"K": 10, "G": 3})
	soln := NewSolution(3)
	soln.GradU[0] = tensors.Vector{0.01, 0.004}
	soln.GradU[1] = tensors.Vector{0, -0.002}
	info := ElmtInfo{Dim: 2}
	old, cur := NewContainer(), NewContainer()
	require.NoError(t, mdl.Init(prms, info, soln, old))
	require.NoError(t, mdl.Compute(prms, info, soln, old, cur))
	assert.Empty(t, mdl.Provides().Missing(cur))

	strain := cur.Rank2("strain")
	assert.Equal(t, 0.002, strain.At(0, 1))
	assert.Equal(t, 0.002, strain.At(1, 0))
	stress := cur.Rank2("stress")
	// σ = C:ε with the published tangent
	assertRank2InDelta(t, cur.Rank4("jacobian").DoubleDot(strain), stress, 1.e-15, "stress")
	assert.InDelta(t, 10*0.008, stress.Trace()/3, 1.e-15)
	assert.InDelta(t, 0.5*stress.DoubleDot(strain), cur.Scalar("psi"), 1.e-18)

	assert.True(t, errors.Is(mdl.Init(prms, ElmtInfo{Dim: 1}, soln, old), ErrConfig))
	assert.True(t, errors.Is(mdl.Compute(prms.WithFlag("finite-strain", true), info, soln, old, cur), ErrConfig))
	assert.True(t, errors.Is(mdl.Compute(NewParams(map[string]float64{"K": 1}), info, soln, old, cur), ErrConfig))
	assert.True(t, errors.Is(mdl.Compute(prms, ElmtInfo{Dim: 3}, NewSolution(2), old, cur), ErrConfig))
}

func TestDiffusivity(t *testing.T) {
	soln := NewSolution(1)
	soln.U[ConcentrationField] = 2
	soln.GradU[ConcentrationField] = tensors.Vector{0.5, -1}
	info := ElmtInfo{Dim: 2}
	{ // constant
		mdl, err := New(M_ConstantDiffusivity)
		require.NoError(t, err)
		cur := NewContainer()
		require.NoError(t, mdl.Compute(NewParams(map[string]float64{"D": 1.5}), info, soln, nil, cur))
		assert.Empty(t, mdl.Provides().Missing(cur))
		assert.Equal(t, 1.5, cur.Scalar("D"))
		assert.Equal(t, 0., cur.Scalar("dDdc"))
		assert.Equal(t, tensors.Vector{0.5, -1}, cur.Vector("gradc"))
		err = mdl.Compute(NewParams(nil), info, soln, nil, NewContainer())
		assert.True(t, errors.Is(err, ErrConfig))
	}
	{ // polynomial, D = 1 + 2c + 3c² + 4c³ at c = 2
		mdl, err := New(M_PolynomialDiffusivity)
		require.NoError(t, err)
		cur := NewContainer()
		prms := NewParams(map[string]float64{"a0": 1, "a1": 2, "a2": 3, "a3": 4})
		require.NoError(t, mdl.Compute(prms, info, soln, nil, cur))
		assert.Empty(t, mdl.Provides().Missing(cur))
		assert.InDelta(t, 49., cur.Scalar("D"), 1.e-13)
		assert.InDelta(t, 62., cur.Scalar("dDdc"), 1.e-13)
		// missing higher coefficients are zero
		require.NoError(t, mdl.Compute(NewParams(map[string]float64{"a0": 1, "a1": 2}), info, soln, nil, cur))
		assert.InDelta(t, 5., cur.Scalar("D"), 1.e-14)
		assert.InDelta(t, 2., cur.Scalar("dDdc"), 1.e-14)
		err = mdl.Compute(NewParams(map[string]float64{"a1": 2}), info, soln, nil, NewContainer())
		assert.True(t, errors.Is(err, ErrConfig))
		err = mdl.Compute(prms, ElmtInfo{Dim: 0}, soln, nil, NewContainer())
		assert.True(t, errors.Is(err, ErrConfig))
	}
}

func TestUser1(t *testing.T) {
	mdl, err := New(M_User1)
	require.NoError(t, err)
	soln := NewSolution(1)
	soln.GradU[0] = tensors.Vector{1, 2, 3}
	cur := NewContainer()
	require.NoError(t, mdl.Init(NewParams(nil), ElmtInfo{Dim: 3}, soln, cur))
	require.NoError(t, mdl.Compute(NewParams(map[string]float64{"sigma": 2, "f": -1}), ElmtInfo{Dim: 3}, soln, nil, cur))
	assert.Empty(t, mdl.Provides().Missing(cur))
	assert.Equal(t, 2., cur.Scalar("sigma"))
	assert.Equal(t, -1., cur.Scalar("f"))
	assert.Equal(t, 0., cur.Scalar("dfdu"))
	assert.Equal(t, tensors.Vector{1, 2, 3}, cur.Vector("gradu"))
	err = mdl.Compute(NewParams(map[string]float64{"sigma": 2}), ElmtInfo{Dim: 3}, soln, nil, NewContainer())
	assert.True(t, errors.Is(err, ErrConfig))
}
