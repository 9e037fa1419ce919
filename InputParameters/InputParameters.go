package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gomate/driver"
	"github.com/notargets/gomate/materials"
	"github.com/notargets/gomate/tensors"
)

// Parameters obtained from the YAML input file
type PointDeck struct {
	Title   string           `json:"Title"`
	Model   string           `json:"Model"`
	Dim     int              `json:"Dim"`
	Dt      float64          `json:"Dt"`
	Threads int              `json:"Threads"`
	Params  materials.Params `json:"Params"`
	Points  []PointInput     `json:"Points"`
}

// PointInput is the loading path of one point, either listed step by step or
// as a linear ramp from zero
type PointInput struct {
	Steps []StepInput `json:"Steps"`
	Ramp  *RampInput  `json:"Ramp"`
}

type StepInput struct {
	U     []float64   `json:"U"`
	GradU [][]float64 `json:"GradU"` // one gradient per field
}

// RampInput scales the final U and GradU by (s+1)/NSteps at step s
type RampInput struct {
	StepInput
	NSteps int `json:"NSteps"`
}

func (ip *PointDeck) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *PointDeck) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t= Model\n", ip.Model)
	fmt.Printf("[%d]\t\t\t\t= Dimension\n", ip.Dim)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("[%d]\t\t\t\t= Threads\n", ip.Threads)
	fmt.Printf("[%d]\t\t\t\t= Points\n", len(ip.Points))
	keys := make([]string, 0, len(ip.Params.Values))
	for k := range ip.Params.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Params[%s] = %v\n", key, ip.Params.Values[key])
	}
	keys = keys[:0]
	for k := range ip.Params.Flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Params[%s] = %v\n", key, ip.Params.Flags[key])
	}
}

// Validate checks the deck without evaluating any model
func (ip *PointDeck) Validate() (err error) {
	if _, err = ip.ModelType(); err != nil {
		return
	}
	switch {
	case ip.Dim < 1 || ip.Dim > 3:
		err = fmt.Errorf("Dim must be 1, 2 or 3, have %d", ip.Dim)
	case ip.Dt <= 0:
		err = fmt.Errorf("Dt must be positive, have %g", ip.Dt)
	case len(ip.Points) == 0:
		err = fmt.Errorf("no Points in input deck")
	default:
		_, err = ip.Paths()
	}
	return
}

func (ip *PointDeck) ModelType() (materials.ModelType, error) {
	return materials.NewModelType(ip.Model)
}

// Paths expands the point inputs into driver paths
func (ip *PointDeck) Paths() (paths []driver.Path, err error) {
	paths = make([]driver.Path, len(ip.Points))
	for k, pt := range ip.Points {
		switch {
		case pt.Ramp != nil && len(pt.Steps) != 0:
			return nil, fmt.Errorf("point %d: give either Steps or Ramp, not both", k)
		case pt.Ramp != nil:
			if pt.Ramp.NSteps < 1 {
				return nil, fmt.Errorf("point %d: Ramp needs NSteps >= 1", k)
			}
			for s := 0; s < pt.Ramp.NSteps; s++ {
				var step driver.Step
				if step, err = pt.Ramp.StepInput.scaled(float64(s+1) / float64(pt.Ramp.NSteps)); err != nil {
					return nil, fmt.Errorf("point %d: %w", k, err)
				}
				paths[k].Steps = append(paths[k].Steps, step)
			}
		default:
			for s, si := range pt.Steps {
				var step driver.Step
				if step, err = si.scaled(1); err != nil {
					return nil, fmt.Errorf("point %d step %d: %w", k, s, err)
				}
				paths[k].Steps = append(paths[k].Steps, step)
			}
		}
	}
	return
}

func (si StepInput) scaled(fac float64) (step driver.Step, err error) {
	nFields := len(si.U)
	if len(si.GradU) > nFields {
		nFields = len(si.GradU)
	}
	step.U = make([]float64, nFields)
	step.GradU = make([]tensors.Vector, nFields)
	for i, u := range si.U {
		step.U[i] = fac * u
	}
	for i, grad := range si.GradU {
		if len(grad) > 3 {
			err = fmt.Errorf("gradient of field %d has %d components", i, len(grad))
			return
		}
		for j, val := range grad {
			step.GradU[i][j] = fac * val
		}
	}
	return
}
