package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiGQ returns the N+1 point Gauss quadrature for the Jacobi weight
// (1-x)^alpha (1+x)^beta on [-1,1]. The nodes are the eigenvalues of the
// symmetric Jacobi matrix (Golub-Welsch), ascending.
func JacobiGQ(alpha, beta float64, N int) (x, w []float64) {
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return
	}
	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}
	JJ := mat.NewSymDense(N+1, nil)
	// main diagonal: -1/2*(alpha^2-beta^2)/(h1+2)/h1
	fac := -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		JJ.SetSym(i, i, fac/(h1[i]*(h1[i]+2.)))
	}
	// Handle division by zero
	if alpha+beta < 10*1.e-16 {
		JJ.SetSym(0, 0, 0.)
	}
	// 1st upper diagonal
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1 := 2. / (val + 2.)
		d1 *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
		JJ.SetSym(i, i+1, d1)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(nil)
	VVr := mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(VVr)
	g0 := gamma0(alpha, beta)
	w = make([]float64, N+1)
	for i := range w {
		v := VVr.At(0, i)
		w[i] = v * v * g0
	}
	return
}

// JacobiGL returns the N+1 point Gauss-Lobatto-Legendre nodes and weights.
// The interior nodes are the zeros of P'_N, which are the Gauss nodes of the
// Jacobi(1,1) weight.
func JacobiGL(N int) (x, w []float64) {
	x = make([]float64, N+1)
	x[0], x[N] = -1, 1
	if N > 1 {
		xint, _ := JacobiGQ(1, 1, N-2)
		copy(x[1:N], xint)
	}
	w = make([]float64, N+1)
	fac := 2. / float64(N*(N+1))
	for i, xi := range x {
		p, _ := LegendreP(N, xi)
		w[i] = fac / (p * p)
	}
	return
}

// LegendreP evaluates the Legendre polynomial P_N and its derivative at x
func LegendreP(N int, x float64) (p, dp float64) {
	var pm1 float64
	p = 1
	for n := 1; n <= N; n++ {
		fn := float64(n)
		p, pm1 = ((2*fn-1)*x*p-(fn-1)*pm1)/fn, p
	}
	switch {
	case N == 0:
		dp = 0
	case math.Abs(x) == 1:
		dp = math.Pow(x, float64(N+1)) * 0.5 * float64(N*(N+1))
	default:
		dp = float64(N) * (x*p - pm1) / (x*x - 1)
	}
	return
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

// symmetrize averages mirrored node pairs so the rule is exactly symmetric
func symmetrize(x, w []float64) {
	n := len(x)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		m := 0.5 * (x[j] - x[i])
		x[i], x[j] = -m, m
		wm := 0.5 * (w[i] + w[j])
		w[i], w[j] = wm, wm
	}
	if n%2 == 1 {
		x[n/2] = 0
	}
}
