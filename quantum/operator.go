// Package quantum holds the operator and channel primitives the fidelity
// sweeps are built on: unitary operators, CPTP channels in their Pauli
// transfer matrix form, composition, tensor products and average gate
// fidelity.
//
// Basis states are little-endian: qubit 0 is the least significant bit of
// a basis index, so for A.Tensor(B) the operator B acts on qubit 0.
package quantum

import (
	"github.com/go-faster/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrNotUnitary        = errors.New("operator is not unitary")
	ErrInvalidChannel    = errors.New("invalid channel parameter")
	ErrNumerical         = errors.New("numerical value out of range")
)

const unitaryTolerance = 1e-9

// Operator is an immutable unitary on one or more qubits.
type Operator struct {
	m       *mat.CDense
	nQubits int
}

// NewOperator builds an operator from a row-major 2^n x 2^n matrix and
// checks that it is unitary.
func NewOperator(nQubits int, data []complex128) (*Operator, error) {
	if nQubits < 1 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "qubit count %d", nQubits)
	}
	d := 1 << nQubits
	if len(data) != d*d {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d entries for %d qubit(s)", len(data), nQubits)
	}
	buf := make([]complex128, len(data))
	copy(buf, data)
	o := &Operator{m: mat.NewCDense(d, d, buf), nQubits: nQubits}
	if !o.isUnitary() {
		return nil, ErrNotUnitary
	}
	return o, nil
}

func Identity(nQubits int) *Operator {
	d := 1 << nQubits
	m := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		m.Set(i, i, 1)
	}
	return &Operator{m: m, nQubits: nQubits}
}

func (o *Operator) NumQubits() int {
	return o.nQubits
}

// Dim is the Hilbert space dimension 2^n.
func (o *Operator) Dim() int {
	return 1 << o.nQubits
}

func (o *Operator) At(i, j int) complex128 {
	return o.m.At(i, j)
}

// Dot returns the matrix product o·b, i.e. b applied first.
func (o *Operator) Dot(b *Operator) (*Operator, error) {
	if o.nQubits != b.nQubits {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d and %d qubits", o.nQubits, b.nQubits)
	}
	return &Operator{m: gemm(blas.NoTrans, blas.NoTrans, o.m, b.m), nQubits: o.nQubits}, nil
}

// Tensor returns o ⊗ b, with b on the low qubits.
func (o *Operator) Tensor(b *Operator) *Operator {
	return &Operator{m: ckron(o.m, b.m), nQubits: o.nQubits + b.nQubits}
}

// EqualApprox compares entries with the given tolerance.
func (o *Operator) EqualApprox(b *Operator, tol float64) bool {
	if o.nQubits != b.nQubits {
		return false
	}
	return mat.CEqualApprox(o.m, b.m, tol)
}

func (o *Operator) isUnitary() bool {
	return mat.CEqualApprox(gemm(blas.ConjTrans, blas.NoTrans, o.m, o.m), Identity(o.nQubits).m, unitaryTolerance)
}

// gemm returns op(a)·op(b), where op is selected by the transpose flags.
func gemm(tA, tB blas.Transpose, a, b *mat.CDense) *mat.CDense {
	r, _ := a.Dims()
	if tA != blas.NoTrans {
		_, r = a.Dims()
	}
	_, c := b.Dims()
	if tB != blas.NoTrans {
		c, _ = b.Dims()
	}
	out := mat.NewCDense(r, c, nil)
	cblas128.Gemm(tA, tB, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())
	return out
}

func ckron(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, v*b.At(k, l))
				}
			}
		}
	}
	return out
}

func ctrace(a *mat.CDense) complex128 {
	r, _ := a.Dims()
	var t complex128
	for i := 0; i < r; i++ {
		t += a.At(i, i)
	}
	return t
}

// pauli returns the single-qubit Pauli matrix I, X, Y or Z for index 0..3.
func pauli(k int) *mat.CDense {
	switch k {
	case 1:
		return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	case 2:
		return mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0})
	case 3:
		return mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
	default:
		return mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
	}
}

// pauliString returns the n-qubit Pauli operator whose base-4 digit j
// selects the Pauli on qubit j.
func pauliString(index, nQubits int) *mat.CDense {
	var out *mat.CDense
	for q := nQubits - 1; q >= 0; q-- {
		digit := (index >> (2 * q)) & 3
		p := pauli(digit)
		if out == nil {
			out = p
			continue
		}
		out = ckron(out, p)
	}
	return out
}

func pow4(n int) int {
	return 1 << (2 * n)
}
