package quantum

import (
	"math"

	"github.com/go-faster/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/mat"
)

// Channel is a completely positive trace preserving map stored as its real
// Pauli transfer matrix R, with R_ij = Tr(P_i E(P_j)) / d.
type Channel struct {
	ptm     *mat.Dense
	nQubits int
}

// FromOperator converts a unitary into the channel ρ -> UρU†.
func FromOperator(u *Operator) *Channel {
	n := u.nQubits
	size := pow4(n)
	d := float64(u.Dim())
	paulis := make([]*mat.CDense, size)
	for k := range paulis {
		paulis[k] = pauliString(k, n)
	}
	ptm := mat.NewDense(size, size, nil)
	for j := 0; j < size; j++ {
		evolved := gemm(blas.NoTrans, blas.ConjTrans, gemm(blas.NoTrans, blas.NoTrans, u.m, paulis[j]), u.m)
		for i := 0; i < size; i++ {
			t := ctrace(gemm(blas.NoTrans, blas.NoTrans, paulis[i], evolved))
			ptm.Set(i, j, real(t)/d)
		}
	}
	return &Channel{ptm: ptm, nQubits: n}
}

// IdentityChannel is the channel that leaves every state unchanged.
func IdentityChannel(nQubits int) *Channel {
	size := pow4(nQubits)
	ptm := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		ptm.Set(i, i, 1)
	}
	return &Channel{ptm: ptm, nQubits: nQubits}
}

// Depolarizing returns E(ρ) = (1-p)ρ + p·Tr(ρ)·I/2^n. The parameter may
// range over [0, 4^n/(4^n-1)], the full completely positive interval.
func Depolarizing(p float64, nQubits int) (*Channel, error) {
	if nQubits < 1 {
		return nil, errors.Wrapf(ErrInvalidChannel, "depolarizing qubit count %d", nQubits)
	}
	size := pow4(nQubits)
	limit := float64(size) / float64(size-1)
	if math.IsNaN(p) || p < 0 || p > limit {
		return nil, errors.Wrapf(ErrInvalidChannel, "depolarizing parameter %g outside [0, %g]", p, limit)
	}
	ptm := mat.NewDense(size, size, nil)
	ptm.Set(0, 0, 1)
	for i := 1; i < size; i++ {
		ptm.Set(i, i, 1-p)
	}
	return &Channel{ptm: ptm, nQubits: nQubits}, nil
}

// ThermalRelaxation returns the single-qubit relaxation channel for an
// exposure of duration t. Populations relax toward the thermal state with
// the given excited-state population at rate 1/T1 and coherences decay at
// rate 1/T2. Requires T1, T2 > 0, T2 <= 2·T1 and t >= 0.
func ThermalRelaxation(t1, t2, t, excitedPopulation float64) (*Channel, error) {
	switch {
	case !(t1 > 0):
		return nil, errors.Wrapf(ErrInvalidChannel, "T1 must be positive, got %g", t1)
	case !(t2 > 0):
		return nil, errors.Wrapf(ErrInvalidChannel, "T2 must be positive, got %g", t2)
	case t2 > 2*t1:
		return nil, errors.Wrapf(ErrInvalidChannel, "T2 (%g) must not exceed 2*T1 (%g)", t2, 2*t1)
	case !(t >= 0):
		return nil, errors.Wrapf(ErrInvalidChannel, "duration must be non-negative, got %g", t)
	case !(excitedPopulation >= 0 && excitedPopulation <= 1):
		return nil, errors.Wrapf(ErrInvalidChannel, "excited state population %g outside [0, 1]", excitedPopulation)
	}
	e1 := math.Exp(-t / t1)
	e2 := math.Exp(-t / t2)
	ptm := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, e2, 0, 0,
		0, 0, e2, 0,
		(1 - 2*excitedPopulation) * (1 - e1), 0, 0, e1,
	})
	return &Channel{ptm: ptm, nQubits: 1}, nil
}

func (c *Channel) NumQubits() int {
	return c.nQubits
}

// PTM returns a copy of the Pauli transfer matrix.
func (c *Channel) PTM() *mat.Dense {
	return mat.DenseCopyOf(c.ptm)
}

// Tensor returns c ⊗ b, with b acting on the low qubits.
func (c *Channel) Tensor(b *Channel) *Channel {
	var k mat.Dense
	k.Kronecker(c.ptm, b.ptm)
	return &Channel{ptm: &k, nQubits: c.nQubits + b.nQubits}
}

// Compose returns the channel that applies the arguments right to left:
// Compose(a, b, c) acts on a state as a(b(c(ρ))).
func Compose(outer *Channel, inner ...*Channel) (*Channel, error) {
	acc := mat.DenseCopyOf(outer.ptm)
	for _, in := range inner {
		if in.nQubits != outer.nQubits {
			return nil, errors.Wrapf(ErrDimensionMismatch, "composing %d and %d qubit channels", outer.nQubits, in.nQubits)
		}
		var next mat.Dense
		next.Mul(acc, in.ptm)
		acc = &next
	}
	return &Channel{ptm: acc, nQubits: outer.nQubits}, nil
}

// EqualApprox reports whether both transfer matrices agree within tol.
func (c *Channel) EqualApprox(b *Channel, tol float64) bool {
	if c.nQubits != b.nQubits {
		return false
	}
	return mat.EqualApprox(c.ptm, b.ptm, tol)
}
