package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomate/InputParameters"
	"github.com/notargets/gomate/materials"
	"github.com/notargets/gomate/results"
)

func TestRunPoint(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Model: miehe-fracture
Dim: 2
Dt: 0.5
Threads: 2
Params: {E: 210, nu: 0.3, Gc: 1, eps: 0.1}
Points:
  - Ramp:
      U: [0, 0, 0]
      GradU: [[], [0.01, 0], [0, 0]]
      NSteps: 4
  - Ramp:
      U: [0.5, 0, 0]
      GradU: [[], [-0.01, 0], [0, -0.01]]
      NSteps: 4
`)
	var input InputParameters.PointDeck
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	dbFile := filepath.Join(t.TempDir(), "point.sqlite")
	var out bytes.Buffer
	pr := &PointRun{DBFile: dbFile, Columns: []string{"H", "psi-pos"}}
	require.NoError(t, RunPoint(pr, &input, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+4*2)
	assert.Equal(t, "step\ttime\tpoint\tH\tpsi-pos", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0\t0.5\t0\t"))
	// the compressed point never builds history
	assert.Equal(t, "3\t2\t1\t0\t0", lines[8])

	db, err := results.NewSQLiteRecorder(dbFile)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, int64(2), db.RunID)

	// all scalars by default
	out.Reset()
	require.NoError(t, RunPoint(&PointRun{}, &input, &out))
	header := strings.SplitN(out.String(), "\n", 2)[0]
	assert.Contains(t, header, "hydrostatic-stress")
	assert.Contains(t, header, "vonMises-stress")
}

func TestRunPointErrors(t *testing.T) {
	var input InputParameters.PointDeck
	require.NoError(t, input.Parse([]byte(`
Model: miehe-fracture
Dim: 2
Dt: 1
Params: {E: 210, nu: 0.3, Gc: 1, eps: 0.1, finite-strain: true}
Points:
  - Steps: [{U: [0, 0, 0], GradU: [[], [0.01, 0], [0, 0]]}]
`)))
	err := RunPoint(&PointRun{}, &input, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, materials.ErrConfig))

	input.Model = "von-mises-plasticity"
	err = RunPoint(&PointRun{}, &input, &bytes.Buffer{})
	assert.True(t, errors.Is(err, materials.ErrConfig))

	input.Model = "miehe-fracture"
	assert.Error(t, RunPoint(&PointRun{Profile: "block"}, &input, &bytes.Buffer{}))
}

func TestPrintQuadrature(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintQuadrature(&out, "lobatto", 2, "quad"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+9+1)
	assert.Equal(t, "Gauss-Lobatto, order 2, Quadrilateral, 9 points", lines[0])
	var sum float64
	_, err := fmt.Sscanf(lines[10], "sum of weights = %g", &sum)
	require.NoError(t, err)
	assert.InDelta(t, 4., sum, 1.e-14)
	assert.Error(t, PrintQuadrature(&out, "radau", 2, "quad"))
	assert.Error(t, PrintQuadrature(&out, "legendre", 2, "prism"))
	assert.Error(t, PrintQuadrature(&out, "legendre", -2, "line"))
}
