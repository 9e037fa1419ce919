// Package quadrature generates tensor product integration rules on the
// reference cube [-1,1]^dim.
package quadrature

import (
	"fmt"
	"strings"

	"github.com/notargets/gomate/tensors"
)

type GeometryKind uint8

const (
	Line GeometryKind = iota
	Quad
	Hex
)

var (
	GeometryNames = map[string]GeometryKind{
		"line": Line,
		"quad": Quad,
		"hex":  Hex,
	}
	GeometryPrintNames = []string{"Line", "Quadrilateral", "Hexahedron"}
)

func NewGeometryKind(label string) (gk GeometryKind, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if gk, ok = GeometryNames[label]; !ok {
		err = fmt.Errorf("unable to use geometry named %s", label)
	}
	return
}

func (gk GeometryKind) Dimension() int {
	return int(gk) + 1
}

func (gk GeometryKind) String() string {
	if int(gk) < len(GeometryPrintNames) {
		return GeometryPrintNames[gk]
	}
	return fmt.Sprintf("GeometryKind(%d)", uint8(gk))
}

// Point is a quadrature point in reference coordinates with its weight.
// Unused coordinates are zero.
type Point struct {
	X tensors.Vector
	W float64
}

type Generator interface {
	Generate(order int, kind GeometryKind) ([]Point, error)
}

type GeneratorType uint8

const (
	Legendre GeneratorType = iota
	Lobatto
)

var (
	GeneratorNames = map[string]GeneratorType{
		"legendre": Legendre,
		"gauss":    Legendre,
		"lobatto":  Lobatto,
	}
	GeneratorPrintNames = []string{"Gauss-Legendre", "Gauss-Lobatto"}
)

func NewGeneratorType(label string) (gt GeneratorType, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if gt, ok = GeneratorNames[label]; !ok {
		err = fmt.Errorf("unable to use quadrature rule named %s", label)
	}
	return
}

func (gt GeneratorType) String() string {
	if int(gt) < len(GeneratorPrintNames) {
		return GeneratorPrintNames[gt]
	}
	return fmt.Sprintf("GeneratorType(%d)", uint8(gt))
}

func NewGenerator(gt GeneratorType) (g Generator, err error) {
	switch gt {
	case Legendre:
		g = GaussLegendre{}
	case Lobatto:
		g = GaussLobatto{}
	default:
		err = fmt.Errorf("quadrature rule %v is not available", gt)
	}
	return
}

// GaussLegendre integrates polynomials of degree 2n-1 exactly with n points
// per direction
type GaussLegendre struct{}

func (GaussLegendre) NumPoints(order int) int {
	return order/2 + 1
}

func (g GaussLegendre) Generate(order int, kind GeometryKind) (pts []Point, err error) {
	if err = checkRequest(order, kind); err != nil {
		return
	}
	x, w := JacobiGQ(0, 0, g.NumPoints(order)-1)
	symmetrize(x, w)
	return tensorProduct(x, w, kind.Dimension()), nil
}

// GaussLobatto includes the end points and integrates polynomials of degree
// 2n-3 exactly with n >= 2 points per direction
type GaussLobatto struct{}

func (GaussLobatto) NumPoints(order int) int {
	return (order + 4) / 2
}

func (g GaussLobatto) Generate(order int, kind GeometryKind) (pts []Point, err error) {
	if err = checkRequest(order, kind); err != nil {
		return
	}
	x, w := JacobiGL(g.NumPoints(order) - 1)
	symmetrize(x, w)
	return tensorProduct(x, w, kind.Dimension()), nil
}

func checkRequest(order int, kind GeometryKind) error {
	if order < 0 {
		return fmt.Errorf("quadrature order must be non negative, have %d", order)
	}
	if kind > Hex {
		return fmt.Errorf("unsupported geometry %v", kind)
	}
	return nil
}

// tensorProduct orders points with x fastest
func tensorProduct(x, w []float64, dim int) (pts []Point) {
	n := len(x)
	nk, nj := 1, 1
	if dim > 1 {
		nj = n
	}
	if dim > 2 {
		nk = n
	}
	pts = make([]Point, 0, n*nj*nk)
	for k := 0; k < nk; k++ {
		for j := 0; j < nj; j++ {
			for i := 0; i < n; i++ {
				var pt Point
				pt.X[0], pt.W = x[i], w[i]
				if dim > 1 {
					pt.X[1] = x[j]
					pt.W *= w[j]
				}
				if dim > 2 {
					pt.X[2] = x[k]
					pt.W *= w[k]
				}
				pts = append(pts, pt)
			}
		}
	}
	return
}
