package quantum

import (
	"math"
	"math/cmplx"

	"github.com/go-faster/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/mat"
)

// FidelityTolerance is how far a computed fidelity may stray outside [0, 1]
// from rounding before it is reported as an error instead of clamped.
const FidelityTolerance = 1e-9

// ProcessFidelity is the entanglement fidelity Tr(R_U^T R) / d² of a
// channel against a unitary target.
func ProcessFidelity(c *Channel, target *Operator) (float64, error) {
	if c.nQubits != target.nQubits {
		return 0, errors.Wrapf(ErrDimensionMismatch, "%d qubit channel against %d qubit target", c.nQubits, target.nQubits)
	}
	rt := FromOperator(target).ptm
	var prod mat.Dense
	prod.MulElem(rt, c.ptm)
	d := float64(target.Dim())
	return clamp(mat.Sum(&prod) / (d * d))
}

// AverageGateFidelity averages the state fidelity between the channel's
// output and the target's output over all pure input states:
// F_avg = (d·F_pro + 1) / (d + 1).
func AverageGateFidelity(c *Channel, target *Operator) (float64, error) {
	fpro, err := ProcessFidelity(c, target)
	if err != nil {
		return 0, err
	}
	d := float64(target.Dim())
	return clamp((d*fpro + 1) / (d + 1))
}

// OperatorFidelity is the average gate fidelity between two unitaries,
// computed from |Tr(U†V)|² / d².
func OperatorFidelity(u, target *Operator) (float64, error) {
	if u.nQubits != target.nQubits {
		return 0, errors.Wrapf(ErrDimensionMismatch, "%d and %d qubits", u.nQubits, target.nQubits)
	}
	d := float64(u.Dim())
	overlap := ctrace(gemm(blas.ConjTrans, blas.NoTrans, target.m, u.m))
	a := cmplx.Abs(overlap)
	fpro, err := clamp(a * a / (d * d))
	if err != nil {
		return 0, err
	}
	return clamp((d*fpro + 1) / (d + 1))
}

func clamp(f float64) (float64, error) {
	switch {
	case math.IsNaN(f):
		return 0, errors.Wrap(ErrNumerical, "fidelity is NaN")
	case f < -FidelityTolerance || f > 1+FidelityTolerance:
		return 0, errors.Wrapf(ErrNumerical, "fidelity %g", f)
	case f < 0:
		return 0, nil
	case f > 1:
		return 1, nil
	}
	return f, nil
}
