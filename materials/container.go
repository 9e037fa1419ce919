package materials

import (
	"sort"

	"github.com/notargets/gomate/tensors"
)

type Kind uint8

const (
	ScalarKind Kind = iota
	VectorKind
	Rank2Kind
	Rank4Kind
	BooleanKind
)

var KindPrintNames = []string{"scalar", "vector", "rank-2", "rank-4", "boolean"}

func (k Kind) String() string {
	if int(k) < len(KindPrintNames) {
		return KindPrintNames[k]
	}
	return "unknown"
}

// Container holds the named properties of one quadrature point, one map per
// value kind. Values are stored by value, so a Clone never aliases its source.
// A Container is owned by a single point and is not safe for concurrent writes.
type Container struct {
	scalars  map[string]float64
	vectors  map[string]tensors.Vector
	rank2    map[string]tensors.Rank2Tensor
	rank4    map[string]tensors.Rank4Tensor
	booleans map[string]bool
}

func NewContainer() (c *Container) {
	c = &Container{}
	c.alloc()
	return
}

func (c *Container) alloc() {
	if c.scalars == nil {
		c.scalars = make(map[string]float64)
		c.vectors = make(map[string]tensors.Vector)
		c.rank2 = make(map[string]tensors.Rank2Tensor)
		c.rank4 = make(map[string]tensors.Rank4Tensor)
		c.booleans = make(map[string]bool)
	}
}

func (c *Container) Scalar(name string) float64 {
	val, ok := c.scalars[name]
	if !ok {
		panic(&MissingPropertyError{Kind: ScalarKind, Name: name})
	}
	return val
}

func (c *Container) SetScalar(name string, val float64) {
	c.alloc()
	c.scalars[name] = val
}

func (c *Container) Vector(name string) tensors.Vector {
	val, ok := c.vectors[name]
	if !ok {
		panic(&MissingPropertyError{Kind: VectorKind, Name: name})
	}
	return val
}

func (c *Container) SetVector(name string, val tensors.Vector) {
	c.alloc()
	c.vectors[name] = val
}

func (c *Container) Rank2(name string) tensors.Rank2Tensor {
	val, ok := c.rank2[name]
	if !ok {
		panic(&MissingPropertyError{Kind: Rank2Kind, Name: name})
	}
	return val
}

func (c *Container) SetRank2(name string, val tensors.Rank2Tensor) {
	c.alloc()
	c.rank2[name] = val
}

func (c *Container) Rank4(name string) tensors.Rank4Tensor {
	val, ok := c.rank4[name]
	if !ok {
		panic(&MissingPropertyError{Kind: Rank4Kind, Name: name})
	}
	return val
}

func (c *Container) SetRank4(name string, val tensors.Rank4Tensor) {
	c.alloc()
	c.rank4[name] = val
}

func (c *Container) Boolean(name string) bool {
	val, ok := c.booleans[name]
	if !ok {
		panic(&MissingPropertyError{Kind: BooleanKind, Name: name})
	}
	return val
}

func (c *Container) SetBoolean(name string, val bool) {
	c.alloc()
	c.booleans[name] = val
}

func (c *Container) Has(kind Kind, name string) (ok bool) {
	switch kind {
	case ScalarKind:
		_, ok = c.scalars[name]
	case VectorKind:
		_, ok = c.vectors[name]
	case Rank2Kind:
		_, ok = c.rank2[name]
	case Rank4Kind:
		_, ok = c.rank4[name]
	case BooleanKind:
		_, ok = c.booleans[name]
	}
	return
}

// Count is meant for diagnostics and dimension checks
func (c *Container) Count(kind Kind) int {
	switch kind {
	case ScalarKind:
		return len(c.scalars)
	case VectorKind:
		return len(c.vectors)
	case Rank2Kind:
		return len(c.rank2)
	case Rank4Kind:
		return len(c.rank4)
	case BooleanKind:
		return len(c.booleans)
	}
	return 0
}

// Names returns the sorted property names of a kind
func (c *Container) Names(kind Kind) (names []string) {
	switch kind {
	case ScalarKind:
		names = sortedKeys(c.scalars)
	case VectorKind:
		names = sortedKeys(c.vectors)
	case Rank2Kind:
		names = sortedKeys(c.rank2)
	case Rank4Kind:
		names = sortedKeys(c.rank4)
	case BooleanKind:
		names = sortedKeys(c.booleans)
	}
	return
}

func sortedKeys[T any](m map[string]T) (keys []string) {
	keys = make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

func copyMap[T any](m map[string]T) (r map[string]T) {
	r = make(map[string]T, len(m))
	for k, v := range m {
		r[k] = v
	}
	return
}

// Clone returns a deep copy
func (c *Container) Clone() (r *Container) {
	r = &Container{
		scalars:  copyMap(c.scalars),
		vectors:  copyMap(c.vectors),
		rank2:    copyMap(c.rank2),
		rank4:    copyMap(c.rank4),
		booleans: copyMap(c.booleans),
	}
	return
}

// CopyFrom replaces the contents of c with a deep copy of other. This is the
// copy-forward between steps: the finished current store becomes the old one.
func (c *Container) CopyFrom(other *Container) {
	if other == c {
		return
	}
	c.Reset()
	for k, v := range other.scalars {
		c.scalars[k] = v
	}
	for k, v := range other.vectors {
		c.vectors[k] = v
	}
	for k, v := range other.rank2 {
		c.rank2[k] = v
	}
	for k, v := range other.rank4 {
		c.rank4[k] = v
	}
	for k, v := range other.booleans {
		c.booleans[k] = v
	}
}

func (c *Container) Reset() {
	c.alloc()
	clear(c.scalars)
	clear(c.vectors)
	clear(c.rank2)
	clear(c.rank4)
	clear(c.booleans)
}
