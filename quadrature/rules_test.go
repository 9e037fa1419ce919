package quadrature

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func near(a, b float64, tolI ...float64) (l bool) {
	tol := 1.e-12
	if len(tolI) != 0 {
		tol = tolI[0]
	}
	return math.Abs(a-b) <= tol*math.Max(1, math.Abs(a))
}

// exact integral of x^a y^b z^c over the reference cube
func monomialIntegral(powers ...int) (val float64) {
	val = 1
	for _, p := range powers {
		if p%2 == 1 {
			return 0
		}
		val *= 2 / float64(p+1)
	}
	return
}

func integrate(pts []Point, a, b, c int) (sum float64) {
	for _, pt := range pts {
		sum += pt.W * math.Pow(pt.X[0], float64(a)) * math.Pow(pt.X[1], float64(b)) * math.Pow(pt.X[2], float64(c))
	}
	return
}

func TestJacobiGQ(t *testing.T) {
	x, w := JacobiGQ(0, 0, 1)
	assert.True(t, near(x[0], -1/math.Sqrt(3)))
	assert.True(t, near(x[1], 1/math.Sqrt(3)))
	assert.True(t, near(w[0], 1))
	assert.True(t, near(w[1], 1))
	x, w = JacobiGQ(0, 0, 2)
	assert.True(t, near(x[0], -math.Sqrt(0.6)))
	assert.True(t, near(x[1], 0))
	assert.True(t, near(w[0], 5./9))
	assert.True(t, near(w[1], 8./9))
}

func TestJacobiGL(t *testing.T) {
	x, w := JacobiGL(1)
	assert.Equal(t, []float64{-1, 1}, x)
	assert.True(t, near(w[0], 1))
	x, w = JacobiGL(2)
	assert.True(t, near(x[1], 0))
	assert.True(t, near(w[0], 1./3))
	assert.True(t, near(w[1], 4./3))
	x, w = JacobiGL(4)
	assert.True(t, near(x[1], -math.Sqrt(3./7)))
	assert.True(t, near(w[0], 0.1))
	assert.True(t, near(w[2], 32./45))
	for _, xi := range x[1:4] {
		_, dp := LegendreP(4, xi)
		assert.True(t, near(dp, 0, 1.e-10))
	}
}

func TestGenerators(t *testing.T) {
	rules := []struct {
		gt     GeneratorType
		counts map[int]int // order -> points per direction
	}{
		{Legendre, map[int]int{0: 1, 1: 1, 2: 2, 3: 2, 4: 3, 7: 4, 9: 5}},
		{Lobatto, map[int]int{0: 2, 1: 2, 2: 3, 3: 3, 4: 4, 7: 5, 9: 6}},
	}
	for _, rule := range rules {
		g, err := NewGenerator(rule.gt)
		require.NoError(t, err)
		for order, n := range rule.counts {
			for _, kind := range []GeometryKind{Line, Quad, Hex} {
				dim := kind.Dimension()
				pts, err := g.Generate(order, kind)
				require.NoError(t, err)
				msg := fmt.Sprintf("%v order %d %v", rule.gt, order, kind)
				require.Equal(t, int(math.Pow(float64(n), float64(dim))), len(pts), msg)
				// weights sum to the reference volume
				var sum float64
				for _, pt := range pts {
					assert.Greater(t, pt.W, 0., msg)
					sum += pt.W
				}
				assert.True(t, near(sum, math.Pow(2, float64(dim))), msg)
				// exact symmetry: reversing the point list mirrors every coordinate
				for i, pt := range pts {
					mirror := pts[len(pts)-1-i]
					for d := 0; d < dim; d++ {
						assert.Equal(t, pt.X[d], -mirror.X[d], msg)
					}
					assert.Equal(t, pt.W, mirror.W, msg)
				}
				// all monomials up to the order integrate exactly
				for a := 0; a <= order; a++ {
					b, c := 0, 0
					if dim > 1 {
						b = order - a
					}
					if dim > 2 {
						c = a / 2
					}
					powers := []int{a, b, c}[:dim]
					assert.True(t, near(integrate(pts, a, b, c), monomialIntegral(powers...)), msg)
				}
				// determinism
				again, _ := g.Generate(order, kind)
				assert.Equal(t, pts, again)
			}
		}
	}
}

func TestLobattoEndpoints(t *testing.T) {
	pts, err := GaussLobatto{}.Generate(5, Line)
	require.NoError(t, err)
	assert.Equal(t, -1., pts[0].X[0])
	assert.Equal(t, 1., pts[len(pts)-1].X[0])
	pts, err = GaussLobatto{}.Generate(2, Quad)
	require.NoError(t, err)
	assert.Equal(t, -1., pts[0].X[0])
	assert.Equal(t, -1., pts[0].X[1])
	// x fastest
	assert.Equal(t, 0., pts[1].X[0])
	assert.Equal(t, -1., pts[1].X[1])
	assert.Equal(t, 1., pts[8].X[0])
	assert.Equal(t, 1., pts[8].X[1])
}

func TestGeneratorErrors(t *testing.T) {
	for _, g := range []Generator{GaussLegendre{}, GaussLobatto{}} {
		_, err := g.Generate(-1, Quad)
		assert.Error(t, err)
		_, err = g.Generate(2, GeometryKind(7))
		assert.Error(t, err)
	}
	_, err := NewGenerator(GeneratorType(9))
	assert.Error(t, err)
	gt, err := NewGeneratorType(" Lobatto")
	require.NoError(t, err)
	assert.Equal(t, Lobatto, gt)
	_, err = NewGeneratorType("radau")
	assert.Error(t, err)
	gk, err := NewGeometryKind("HEX")
	require.NoError(t, err)
	assert.Equal(t, 3, gk.Dimension())
	_, err = NewGeometryKind("tet")
	assert.Error(t, err)
}
