package driver

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomate/materials"
	"github.com/notargets/gomate/tensors"
)

type memRecorder struct {
	mu      sync.Mutex
	records []Record
	closed  bool
}

func (m *memRecorder) Record(r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

func (m *memRecorder) Close() error {
	m.closed = true
	return nil
}

// cyclicPaths loads each point in uniaxial tension with a different
// amplitude, unloads it into compression and reloads
func cyclicPaths(nPoints int) (points []Path) {
	loads := []float64{0.2, 0.6, 1, 0.4, -0.5, 0.8, 1.2, 0.1}
	points = make([]Path, nPoints)
	for k := range points {
		amp := 0.001 * float64(k+1)
		for s, load := range loads {
			step := Step{
				U:     make([]float64, 3),
				GradU: make([]tensors.Vector, 3),
			}
			step.U[materials.DamageField] = 0.05 * float64(s)
			step.GradU[materials.DispXField] = tensors.Vector{amp * load, 0.1 * amp * load}
			step.GradU[materials.DispXField+1] = tensors.Vector{0, -0.2 * amp * load}
			points[k].Steps = append(points[k].Steps, step)
		}
	}
	return
}

func mieheParams() materials.Params {
	return materials.NewParams(map[string]float64{"E": 210, "nu": 0.3, "Gc": 2.7e-3, "eps": 0.015})
}

func TestDriverHistory(t *testing.T) {
	points := cyclicPaths(7)
	d, err := New(materials.M_MieheFracture, mieheParams(), 2, 0.1, 3)
	require.NoError(t, err)
	rec := &memRecorder{}
	require.NoError(t, d.Run(points, rec))
	require.Len(t, rec.records, 7*8)

	Hmax := make([]float64, 7)
	for _, r := range rec.records {
		Hmax[r.Point] = math.Max(Hmax[r.Point], r.Scalars["psi-pos"])
		assert.Equal(t, Hmax[r.Point], r.Scalars["H"], "step %d point %d", r.Step, r.Point)
		assert.InDelta(t, float64(r.Step+1)*0.1, r.Time, 1.e-15)
	}
	for k := range points {
		assert.Equal(t, Hmax[k], d.Final(k).Scalar("H"))
		assert.Greater(t, Hmax[k], 0.)
	}
	// larger amplitudes drive larger history
	for k := 1; k < 7; k++ {
		assert.Greater(t, Hmax[k], Hmax[k-1])
	}
}

func TestDriverParallelMatchesSerial(t *testing.T) {
	points := cyclicPaths(11)
	run := func(threads int) map[[2]int]map[string]float64 {
		d, err := New(materials.M_MieheFracture, mieheParams(), 2, 0.1, threads)
		require.NoError(t, err)
		rec := &memRecorder{}
		require.NoError(t, d.Run(points, rec))
		out := make(map[[2]int]map[string]float64)
		for _, r := range rec.records {
			out[[2]int{r.Step, r.Point}] = r.Scalars
		}
		return out
	}
	serial := run(1)
	assert.Equal(t, serial, run(4))
	assert.Equal(t, serial, run(20))
	assert.Equal(t, serial, run(0))
}

func TestDriverErrors(t *testing.T) {
	d, err := New(materials.M_MieheFracture, mieheParams(), 2, 0.1, 2)
	require.NoError(t, err)
	assert.Error(t, d.Run(nil, nil))

	points := cyclicPaths(3)
	points[1].Steps = points[1].Steps[:2]
	assert.Error(t, d.Run(points, nil))

	points = cyclicPaths(2)
	points[0].Steps[0].GradU = points[0].Steps[0].GradU[:1]
	assert.Error(t, d.Run(points, nil))

	// configuration errors surface from the model
	d, err = New(materials.M_MieheFracture, mieheParams().WithFlag("finite-strain", true), 2, 0.1, 2)
	require.NoError(t, err)
	err = d.Run(cyclicPaths(2), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, materials.ErrConfig))

	d, err = New(materials.M_MieheFracture, mieheParams(), 4, 0.1, 2)
	require.NoError(t, err)
	assert.True(t, errors.Is(d.Run(cyclicPaths(2), nil), materials.ErrConfig))

	_, err = New(materials.ModelType(42), mieheParams(), 2, 0.1, 2)
	assert.Error(t, err)
}

func TestDriverOtherModels(t *testing.T) {
	step := Step{U: []float64{0.5}, GradU: []tensors.Vector{{1, 0, 0}}}
	d, err := New(materials.M_PolynomialDiffusivity, materials.NewParams(map[string]float64{"a0": 1, "a1": 2}), 1, 1, 1)
	require.NoError(t, err)
	rec := &memRecorder{}
	require.NoError(t, d.Run([]Path{{Steps: []Step{step, step}}}, rec))
	require.Len(t, rec.records, 2)
	assert.InDelta(t, 2., rec.records[1].Scalars["D"], 1.e-15)
	assert.Equal(t, tensors.Vector{1, 0, 0}, d.Final(0).Vector("gradc"))
}
