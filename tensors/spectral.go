package tensors

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EigenTolerance is relative to the largest eigenvalue magnitude. Eigenvalues
// within it of zero count as non-negative, and pairs closer than it are
// treated as coalesced.
const EigenTolerance = 1.e-10

// Spectrum holds the eigen decomposition of a symmetric tensor. The in-plane
// eigenvalues are in ascending order; for Dim == 2 the out-of-plane direction
// is always the last one.
type Spectrum struct {
	Dim     int
	Values  [3]float64
	Vectors [3]Vector
	Tol     float64
}

// EigenSym decomposes the symmetric part of T
func EigenSym(T Rank2Tensor) (sp Spectrum) {
	checkDim(T.Dim)
	var (
		n = T.Dim
		S = mat.NewSymDense(n, nil)
	)
	sp.Dim = n
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			S.SetSym(i, j, 0.5*(T.C[i][j]+T.C[j][i]))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(S, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	vals := eig.Values(nil)
	V := mat.NewDense(n, n, nil)
	eig.VectorsTo(V)
	for a := 0; a < n; a++ {
		sp.Values[a] = vals[a]
		for i := 0; i < n; i++ {
			sp.Vectors[a][i] = V.At(i, a)
		}
	}
	if n == 2 {
		sp.Values[2] = T.C[2][2]
		sp.Vectors[2] = Vector{0, 0, 1}
	}
	var maxAbs float64
	for _, val := range sp.Values {
		maxAbs = math.Max(maxAbs, math.Abs(val))
	}
	sp.Tol = EigenTolerance * maxAbs
	return
}

func (sp Spectrum) heaviside(a int) float64 {
	if sp.Values[a] >= -sp.Tol {
		return 1
	}
	return 0
}

// ramp is <λ_a>+, zero for eigenvalues inside the tolerance below zero
func (sp Spectrum) ramp(a int) float64 {
	return sp.heaviside(a) * math.Max(sp.Values[a], 0)
}

func (sp Spectrum) theta(a, b int) float64 {
	if a == b {
		return sp.heaviside(a)
	}
	la, lb := sp.Values[a], sp.Values[b]
	if math.Abs(la-lb) <= sp.Tol {
		return 0.5 * (sp.heaviside(a) + sp.heaviside(b))
	}
	return (sp.ramp(a) - sp.ramp(b)) / (la - lb)
}

func (sp Spectrum) weighted(weight func(a int) float64) (T Rank2Tensor) {
	T = Zeros(sp.Dim)
	for a := 0; a < 3; a++ {
		w := weight(a)
		if w == 0 {
			continue
		}
		n := sp.Vectors[a]
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				T.C[i][j] += w * n[i] * n[j]
			}
		}
	}
	return
}

// Reconstruct returns sum(λ_a n_a⊗n_a)
func (sp Spectrum) Reconstruct() Rank2Tensor {
	return sp.weighted(func(a int) float64 { return sp.Values[a] })
}

// PositivePart returns the tensile part sum(<λ_a>+ n_a⊗n_a)
func (sp Spectrum) PositivePart() Rank2Tensor {
	return sp.weighted(sp.ramp)
}

// NegativePart returns the compressive part, the complement of PositivePart
func (sp Spectrum) NegativePart() Rank2Tensor {
	return sp.weighted(func(a int) float64 { return sp.Values[a] - sp.ramp(a) })
}

// PositiveProjection returns P+ = d(T+)/dT, restricted to symmetric arguments:
//
//	P+_ijkl = sum_ab θ_ab n_a,i n_b,j 1/2(n_a,k n_b,l + n_b,k n_a,l)
func (sp Spectrum) PositiveProjection() (P Rank4Tensor) {
	P = Zeros4(sp.Dim)
	for a := 0; a < 3; a++ {
		na := sp.Vectors[a]
		for b := 0; b < 3; b++ {
			th := sp.theta(a, b)
			if th == 0 {
				continue
			}
			nb := sp.Vectors[b]
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					nij := th * na[i] * nb[j]
					if nij == 0 {
						continue
					}
					for k := 0; k < 3; k++ {
						for l := 0; l < 3; l++ {
							P.C[i][j][k][l] += nij * 0.5 * (na[k]*nb[l] + nb[k]*na[l])
						}
					}
				}
			}
		}
	}
	return
}

// Split is the tension/compression decomposition of a symmetric strain
type Split struct {
	Pos, Neg   Rank2Tensor
	PPos, PNeg Rank4Tensor
}

// SplitFunc maps a strain to its tension/compression split. Swapping the
// function swaps the decomposition algorithm without touching the models.
type SplitFunc func(strain Rank2Tensor) Split

// SpectralSplit is the default SplitFunc, P- is the complement I4sym - P+
func SpectralSplit(strain Rank2Tensor) (s Split) {
	sp := EigenSym(strain)
	s.Pos = sp.PositivePart()
	s.Neg = strain.Sub(s.Pos)
	s.PPos = sp.PositiveProjection()
	s.PNeg = Identity4Sym(strain.Dim).Sub(s.PPos)
	return
}

func PositiveProjection(T Rank2Tensor) Rank4Tensor {
	return EigenSym(T).PositiveProjection()
}

func NegativeProjection(T Rank2Tensor) Rank4Tensor {
	return Identity4Sym(T.Dim).Sub(PositiveProjection(T))
}
