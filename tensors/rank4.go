package tensors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rank4Tensor is a stiffness-like operator acting on Rank2Tensors by double
// contraction
type Rank4Tensor struct {
	Dim int
	C   [3][3][3][3]float64
}

func Zeros4(dim int) (R Rank4Tensor) {
	checkDim(dim)
	R.Dim = dim
	return
}

func delta(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

// Identity4 is δ_ik δ_jl, so that I4:T = T
func Identity4(dim int) (R Rank4Tensor) {
	R = Zeros4(dim)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.C[i][j][i][j] = 1
		}
	}
	return
}

// Identity4Sym is 1/2(δ_ik δ_jl + δ_il δ_jk), so that I4sym:T = sym(T)
func Identity4Sym(dim int) (R Rank4Tensor) {
	R = Zeros4(dim)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					R.C[i][j][k][l] = 0.5 * (delta(i, k)*delta(j, l) + delta(i, l)*delta(j, k))
				}
			}
		}
	}
	return
}

func (R Rank4Tensor) At(i, j, k, l int) float64 {
	return R.C[i][j][k][l]
}

func (R *Rank4Tensor) Set(i, j, k, l int, val float64) {
	R.C[i][j][k][l] = val
}

func (R Rank4Tensor) Add(B Rank4Tensor) (S Rank4Tensor) {
	sameDim(R.Dim, B.Dim)
	S.Dim = R.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					S.C[i][j][k][l] = R.C[i][j][k][l] + B.C[i][j][k][l]
				}
			}
		}
	}
	return
}

func (R Rank4Tensor) Sub(B Rank4Tensor) (S Rank4Tensor) {
	return R.Add(B.Scale(-1))
}

func (R Rank4Tensor) Scale(a float64) (S Rank4Tensor) {
	S.Dim = R.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					S.C[i][j][k][l] = a * R.C[i][j][k][l]
				}
			}
		}
	}
	return
}

// DoubleDot returns R:T, component ij = R_ijkl T_kl
func (R Rank4Tensor) DoubleDot(T Rank2Tensor) (S Rank2Tensor) {
	sameDim(R.Dim, T.Dim)
	S.Dim = R.Dim
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					sum += R.C[i][j][k][l] * T.C[k][l]
				}
			}
			S.C[i][j] = sum
		}
	}
	return
}

// Matrix flattens the operator into a 9x9 matrix, row 3i+j and column 3k+l
func (R Rank4Tensor) Matrix() (M *mat.Dense) {
	M = mat.NewDense(9, 9, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					M.Set(3*i+j, 3*k+l, R.C[i][j][k][l])
				}
			}
		}
	}
	return
}

// MaxAbsDiff is the largest componentwise difference between two operators
func (R Rank4Tensor) MaxAbsDiff(B Rank4Tensor) (diff float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					diff = math.Max(diff, math.Abs(R.C[i][j][k][l]-B.C[i][j][k][l]))
				}
			}
		}
	}
	return
}

func (R Rank4Tensor) String() string {
	return fmt.Sprintf("Rank4Tensor(dim=%d)\n%v", R.Dim, mat.Formatted(R.Matrix(), mat.Squeeze()))
}
