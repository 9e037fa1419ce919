package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomate/materials"
	"github.com/notargets/gomate/tensors"
)

var deck = []byte(`
Title: "Notched bar, two points"
Model: Miehe-Fracture
Dim: 2
Dt: 0.1
Threads: 2
Params:
  E: 210
  nu: 0.3
  Gc: 2.7e-3
  eps: 0.015
  finite-strain: false
Points:
  - Steps:
      - U: [0, 0, 0]
        GradU: [[0, 0], [0.001, 0], [0, 0]]
      - U: [0.1, 0, 0]
        GradU: [[0, 0], [0.002, 0.0005], [0, -0.0004]]
  - Ramp:
      U: [0.2]
      GradU: [[], [0.004, 0], [0, 0.001]]
      NSteps: 2
`)

func TestPointDeck(t *testing.T) {
	var ip PointDeck
	require.NoError(t, ip.Parse(deck))
	ip.Print()
	assert.Equal(t, "Notched bar, two points", ip.Title)
	assert.Equal(t, 2, ip.Dim)
	assert.Equal(t, 0.1, ip.Dt)
	assert.Equal(t, 2, ip.Threads)
	assert.Equal(t, 210., ip.Params.Values["E"])
	assert.Equal(t, 2.7e-3, ip.Params.Values["Gc"])
	fs, found := ip.Params.Flag("finite-strain")
	assert.True(t, found)
	assert.False(t, fs)
	require.NoError(t, ip.Validate())
	mt, err := ip.ModelType()
	require.NoError(t, err)
	assert.Equal(t, materials.M_MieheFracture, mt)

	paths, err := ip.Paths()
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.Len(t, paths[0].Steps, 2)
	assert.Equal(t, tensors.Vector{0.002, 0.0005, 0}, paths[0].Steps[1].GradU[1])
	assert.Equal(t, 0.1, paths[0].Steps[1].U[0])
	// the ramp is scaled and padded to the gradient count
	require.Len(t, paths[1].Steps, 2)
	first := paths[1].Steps[0]
	assert.Equal(t, []float64{0.1, 0, 0}, first.U)
	assert.Equal(t, tensors.Vector{0.002, 0, 0}, first.GradU[1])
	assert.Equal(t, tensors.Vector{0, 0.001, 0}, paths[1].Steps[1].GradU[2])
}

func TestPointDeckValidate(t *testing.T) {
	parse := func(txt string) (ip PointDeck) {
		require.NoError(t, ip.Parse([]byte(txt)))
		return
	}
	ip := parse("Model: neo-hookean\nDim: 2\nDt: 1\nPoints: [{Steps: [{U: [0]}]}]")
	err := ip.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, materials.ErrConfig))

	ip = parse("Model: user1\nDim: 4\nDt: 1\nPoints: [{Steps: [{U: [0]}]}]")
	assert.Error(t, ip.Validate())
	ip = parse("Model: user1\nDim: 2\nDt: 0\nPoints: [{Steps: [{U: [0]}]}]")
	assert.Error(t, ip.Validate())
	ip = parse("Model: user1\nDim: 2\nDt: 1")
	assert.Error(t, ip.Validate())
	ip = parse("Model: user1\nDim: 2\nDt: 1\nPoints: [{Ramp: {U: [1], NSteps: 0}}]")
	assert.Error(t, ip.Validate())
	ip = parse("Model: user1\nDim: 2\nDt: 1\nPoints: [{Steps: [{GradU: [[1, 2, 3, 4]]}]}]")
	assert.Error(t, ip.Validate())
	ip = parse("Model: user1\nDim: 2\nDt: 1\nPoints: [{Steps: [{U: [0]}], Ramp: {U: [1], NSteps: 2}}]")
	assert.Error(t, ip.Validate())

	var bad PointDeck
	assert.Error(t, bad.Parse([]byte("Params: {E: stiff}")))
}
