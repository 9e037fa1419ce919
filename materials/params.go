package materials

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Params holds the material parameters of one material instance, numbers and
// booleans keyed by name. Params are read-only during evaluation.
type Params struct {
	Values map[string]float64
	Flags  map[string]bool
}

func NewParams(values map[string]float64) Params {
	return Params{Values: values, Flags: map[string]bool{}}
}

// WithFlag returns a copy of p with the boolean parameter set
func (p Params) WithFlag(name string, val bool) (r Params) {
	r = Params{Values: make(map[string]float64, len(p.Values)), Flags: make(map[string]bool, len(p.Flags)+1)}
	for k, v := range p.Values {
		r.Values[k] = v
	}
	for k, v := range p.Flags {
		r.Flags[k] = v
	}
	r.Flags[name] = val
	return
}

// Has is true when all names are present as numeric parameters
func (p Params) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := p.Values[name]; !ok {
			return false
		}
	}
	return true
}

func (p Params) Value(name string) (val float64, found bool) {
	val, found = p.Values[name]
	return
}

// Default returns the named value, or def when absent
func (p Params) Default(name string, def float64) float64 {
	if val, ok := p.Values[name]; ok {
		return val
	}
	return def
}

func (p Params) Flag(name string) (val, found bool) {
	val, found = p.Flags[name]
	return
}

// Require returns the values of all names in order, or a ConfigError naming
// every missing one
func (p Params) Require(model string, names ...string) (vals []float64, err error) {
	var missing []string
	vals = make([]float64, len(names))
	for i, name := range names {
		val, ok := p.Values[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		vals[i] = val
	}
	if len(missing) != 0 {
		err = configErrorf(model, "missing required parameter(s) %s, please check your input file",
			strings.Join(missing, ", "))
	}
	return
}

// UnmarshalJSON sorts a flat JSON object into numbers and booleans. The YAML
// decks reach this through ghodss/yaml.
func (p *Params) UnmarshalJSON(data []byte) (err error) {
	var raw map[string]interface{}
	if err = json.Unmarshal(data, &raw); err != nil {
		return
	}
	p.Values = make(map[string]float64)
	p.Flags = make(map[string]bool)
	for key, val := range raw {
		switch v := val.(type) {
		case float64:
			p.Values[key] = v
		case bool:
			p.Flags[key] = v
		default:
			return fmt.Errorf("material parameter %q must be a number or a boolean, have %v", key, val)
		}
	}
	return
}

func (p Params) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(p.Values)+len(p.Flags))
	for k, v := range p.Values {
		raw[k] = v
	}
	for k, v := range p.Flags {
		raw[k] = v
	}
	return json.Marshal(raw)
}

func (p Params) String() string {
	var (
		b    strings.Builder
		keys = make([]string, 0, len(p.Values)+len(p.Flags))
	)
	for k := range p.Values {
		keys = append(keys, k)
	}
	for k := range p.Flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if val, ok := p.Values[key]; ok {
			fmt.Fprintf(&b, "%12.5g\t= %s\n", val, key)
		} else {
			fmt.Fprintf(&b, "%12v\t= %s\n", p.Flags[key], key)
		}
	}
	return b.String()
}
