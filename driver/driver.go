// Package driver runs a material model over prescribed loading paths, one
// path per material point, the way an element loop would call it: Init once
// per point, then one Compute per step with the previous step's properties
// copied forward.
package driver

import (
	"fmt"
	"log"
	"time"

	"github.com/notargets/gomate/materials"
	"github.com/notargets/gomate/tensors"
	"github.com/notargets/gomate/utils"
)

// Step is the solution at one point for one time step
type Step struct {
	U     []float64
	V     []float64 // optional rates, zero when nil
	GradU []tensors.Vector
}

// Path is the loading history of one material point
type Path struct {
	Steps []Step
}

// Record carries the scalar outputs of one point after one step
type Record struct {
	Step    int
	Time    float64
	Point   int
	Scalars map[string]float64
}

type Recorder interface {
	Record(Record) error
	Close() error
}

type Driver struct {
	ModelType materials.ModelType
	Model     materials.Model
	Params    materials.Params
	Dim       int
	Dt        float64
	Threads   int // number of buckets, all CPUs when < 1
	Verbose   bool
	old, cur  []*materials.Container
}

func New(mt materials.ModelType, prms materials.Params, dim int, dt float64, threads int) (d *Driver, err error) {
	var mdl materials.Model
	if mdl, err = materials.New(mt); err != nil {
		return
	}
	d = &Driver{
		ModelType: mt,
		Model:     mdl,
		Params:    prms,
		Dim:       dim,
		Dt:        dt,
		Threads:   threads,
	}
	return
}

func checkPaths(points []Path) (nSteps int, err error) {
	if len(points) == 0 {
		err = fmt.Errorf("no material points to evaluate")
		return
	}
	nSteps = len(points[0].Steps)
	for k, path := range points {
		if len(path.Steps) != nSteps {
			err = fmt.Errorf("point %d has %d steps, point 0 has %d", k, len(path.Steps), nSteps)
			return
		}
		for s, step := range path.Steps {
			if len(step.GradU) != len(step.U) || (step.V != nil && len(step.V) != len(step.U)) {
				err = fmt.Errorf("point %d step %d: field counts of U, V and GradU differ", k, s)
				return
			}
		}
	}
	return
}

func (d *Driver) info(k, nPoints, step int) materials.ElmtInfo {
	return materials.ElmtInfo{
		Dim:        d.Dim,
		T:          float64(step+1) * d.Dt,
		Dt:         d.Dt,
		ElmtsNum:   1,
		QPointID:   k,
		QPointsNum: nPoints,
	}
}

func solution(step Step) *materials.Solution {
	soln := &materials.Solution{U: step.U, V: step.V, GradU: step.GradU}
	if soln.V == nil {
		soln.V = make([]float64, len(step.U))
	}
	return soln
}

// Run evaluates every point over its path. Points of one step are evaluated
// concurrently, and the properties of the step become the old state of the
// next one only after all points are done. rec may be nil.
func (d *Driver) Run(points []Path, rec Recorder) (err error) {
	var nSteps int
	if nSteps, err = checkPaths(points); err != nil {
		return
	}
	nPoints := len(points)
	d.old = make([]*materials.Container, nPoints)
	d.cur = make([]*materials.Container, nPoints)
	for k := range points {
		d.old[k], d.cur[k] = materials.NewContainer(), materials.NewContainer()
		var first Step
		if nSteps > 0 {
			first = points[k].Steps[0]
		}
		if err = d.Model.Init(d.Params, d.info(k, nPoints, -1), solution(first), d.old[k]); err != nil {
			return fmt.Errorf("point %d: %w", k, err)
		}
	}
	var (
		pm    = utils.NewPartitionMap(d.Threads, nPoints)
		errs  = make([]error, nPoints)
		start = time.Now()
	)
	for s := 0; s < nSteps; s++ {
		pm.ForEachBucket(func(bn, kMin, kMax int) {
			for k := kMin; k < kMax; k++ {
				d.cur[k].Reset()
				errs[k] = d.Model.Compute(d.Params, d.info(k, nPoints, s), solution(points[k].Steps[s]),
					d.old[k], d.cur[k])
			}
		})
		for k, e := range errs {
			if e != nil {
				return fmt.Errorf("step %d, point %d: %w", s, k, e)
			}
		}
		for k := 0; k < nPoints; k++ {
			r := d.record(k, s)
			if utils.IsNan(r.Scalars) {
				log.Printf("step %d, point %d: NaN in scalar properties", s, k)
			}
			if rec == nil {
				continue
			}
			if err = rec.Record(r); err != nil {
				return
			}
		}
		// copy forward
		pm.ForEachBucket(func(bn, kMin, kMax int) {
			for k := kMin; k < kMax; k++ {
				d.old[k].CopyFrom(d.cur[k])
			}
		})
		if d.Verbose {
			fmt.Printf("step %d of %d, t = %8.5f, elapsed %v, %s\n", s+1, nSteps, float64(s+1)*d.Dt,
				time.Since(start), utils.GetMemUsage())
		}
	}
	return
}

func (d *Driver) record(k, step int) (r Record) {
	cur := d.cur[k]
	r = Record{
		Step:    step,
		Time:    float64(step+1) * d.Dt,
		Point:   k,
		Scalars: make(map[string]float64, cur.Count(materials.ScalarKind)),
	}
	for _, name := range cur.Names(materials.ScalarKind) {
		r.Scalars[name] = cur.Scalar(name)
	}
	return
}

// Final returns the committed properties of point k after Run
func (d *Driver) Final(k int) *materials.Container {
	return d.old[k]
}
