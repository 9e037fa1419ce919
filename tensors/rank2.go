// Package tensors implements the second and fourth order tensor algebra used
// by the constitutive models.
//
// Components are always stored on a 3x3 (3x3x3x3) grid. Two dimensional
// problems are treated as plane strain: kinematic tensors built from in-plane
// gradients carry zero out-of-plane components, while the identity keeps its
// out-of-plane diagonal so that trace(dev(T)) vanishes in both dimensions.
package tensors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector holds a spatial vector, for instance the gradient of a field at a point
type Vector [3]float64

func (v Vector) Dot(w Vector) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

func (v Vector) Scale(a float64) (r Vector) {
	for i := range v {
		r[i] = a * v[i]
	}
	return
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

type Rank2Tensor struct {
	Dim int
	C   [3][3]float64
}

func checkDim(dim int) {
	if dim != 2 && dim != 3 {
		panic(fmt.Errorf("unsupported tensor dimension %d, must be 2 or 3", dim))
	}
}

func sameDim(a, b int) {
	if a != b {
		panic(fmt.Errorf("tensor dimension mismatch: %d and %d", a, b))
	}
}

func Zeros(dim int) (T Rank2Tensor) {
	checkDim(dim)
	T.Dim = dim
	return
}

// Identity returns the Kronecker delta
func Identity(dim int) (I Rank2Tensor) {
	I = Zeros(dim)
	for i := 0; i < 3; i++ {
		I.C[i][i] = 1
	}
	return
}

// NewRank2 builds a tensor from a row-major component array, rows and columns
// beyond the third are ignored
func NewRank2(dim int, comps [][]float64) (T Rank2Tensor) {
	T = Zeros(dim)
	for i := 0; i < len(comps) && i < 3; i++ {
		for j := 0; j < len(comps[i]) && j < 3; j++ {
			T.C[i][j] = comps[i][j]
		}
	}
	return
}

// NewRank2FromGradU assembles the displacement gradient, row i being the
// gradient of displacement component i. Only the first dim rows and columns
// are used.
func NewRank2FromGradU(dim int, grads ...Vector) (T Rank2Tensor) {
	T = Zeros(dim)
	if len(grads) < dim {
		panic(fmt.Errorf("need %d displacement gradients, have %d", dim, len(grads)))
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			T.C[i][j] = grads[i][j]
		}
	}
	return
}

func (T Rank2Tensor) At(i, j int) float64 {
	return T.C[i][j]
}

func (T *Rank2Tensor) Set(i, j int, val float64) {
	T.C[i][j] = val
}

func (T Rank2Tensor) Add(B Rank2Tensor) (R Rank2Tensor) {
	sameDim(T.Dim, B.Dim)
	R.Dim = T.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.C[i][j] = T.C[i][j] + B.C[i][j]
		}
	}
	return
}

func (T Rank2Tensor) Sub(B Rank2Tensor) (R Rank2Tensor) {
	sameDim(T.Dim, B.Dim)
	R.Dim = T.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.C[i][j] = T.C[i][j] - B.C[i][j]
		}
	}
	return
}

func (T Rank2Tensor) Scale(a float64) (R Rank2Tensor) {
	R.Dim = T.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.C[i][j] = a * T.C[i][j]
		}
	}
	return
}

// Mul is the single contraction (matrix product) T·B
func (T Rank2Tensor) Mul(B Rank2Tensor) (R Rank2Tensor) {
	sameDim(T.Dim, B.Dim)
	R.Dim = T.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += T.C[i][k] * B.C[k][j]
			}
			R.C[i][j] = sum
		}
	}
	return
}

func (T Rank2Tensor) Transpose() (R Rank2Tensor) {
	R.Dim = T.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.C[i][j] = T.C[j][i]
		}
	}
	return
}

func (T Rank2Tensor) Trace() float64 {
	return T.C[0][0] + T.C[1][1] + T.C[2][2]
}

// Dev returns the deviator T - tr(T)/3 I
func (T Rank2Tensor) Dev() (R Rank2Tensor) {
	checkDim(T.Dim)
	R = T
	tr := T.Trace() / 3.
	for i := 0; i < 3; i++ {
		R.C[i][i] -= tr
	}
	return
}

// DoubleDot is the full contraction sum(T_ij B_ij)
func (T Rank2Tensor) DoubleDot(B Rank2Tensor) (sum float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += T.C[i][j] * B.C[i][j]
		}
	}
	return
}

// Norm is the Frobenius norm
func (T Rank2Tensor) Norm() float64 {
	return math.Sqrt(T.DoubleDot(T))
}

// Sym returns (T + Tᵀ)/2
func (T Rank2Tensor) Sym() Rank2Tensor {
	return T.Add(T.Transpose()).Scale(0.5)
}

// Outer is the dyadic product (T⊗B)_ijkl = T_ij B_kl
func (T Rank2Tensor) Outer(B Rank2Tensor) (R Rank4Tensor) {
	sameDim(T.Dim, B.Dim)
	R.Dim = T.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if T.C[i][j] == 0 {
				continue
			}
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					R.C[i][j][k][l] = T.C[i][j] * B.C[k][l]
				}
			}
		}
	}
	return
}

// Outer is the free-function form of A⊗B
func Outer(A, B Rank2Tensor) Rank4Tensor {
	return A.Outer(B)
}

// VonMises returns sqrt(3/2 dev(T):dev(T))
func (T Rank2Tensor) VonMises() float64 {
	dev := T.Dev()
	return math.Sqrt(1.5 * dev.DoubleDot(dev))
}

// Dense copies the components into a gonum matrix
func (T Rank2Tensor) Dense() (M *mat.Dense) {
	M = mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		M.SetRow(i, T.C[i][:])
	}
	return
}

func (T Rank2Tensor) String() string {
	return fmt.Sprintf("Rank2Tensor(dim=%d)\n%v", T.Dim, mat.Formatted(T.Dense(), mat.Squeeze()))
}
