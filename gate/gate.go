package gate

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/quantum"
)

type Kind string

const (
	RX   Kind = "rx"
	RZ   Kind = "rz"
	CNOT Kind = "cx"
	RZZ  Kind = "rzz"
)

var ErrInvalidGate = errors.New("invalid gate")

// Kinds lists every gate the builders understand.
func Kinds() []Kind {
	return []Kind{RX, RZ, CNOT, RZZ}
}

func (k Kind) NumParams() int {
	switch k {
	case RX, RZ, RZZ:
		return 1
	default:
		return 0
	}
}

func (k Kind) NumQubits() int {
	switch k {
	case CNOT, RZZ:
		return 2
	default:
		return 1
	}
}

// Build returns the ideal unitary for a gate kind. Angles are used as given,
// without reduction modulo 2π.
func Build(kind Kind, params ...float64) (*quantum.Operator, error) {
	if !slices.Contains(Kinds(), kind) {
		return nil, errors.Wrapf(ErrInvalidGate, "unknown gate kind %q (known: %v)", kind, Kinds())
	}
	if len(params) != kind.NumParams() {
		return nil, errors.Wrapf(ErrInvalidGate, "%s takes %d parameter(s), got %d",
			kind, kind.NumParams(), len(params))
	}
	for i, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, errors.Wrapf(ErrInvalidGate, "%s parameter %d is %g", kind, i, p)
		}
	}
	zap.L().Debug(fmt.Sprintf("building %s gate with params %v", kind, params))
	switch kind {
	case RX:
		return RXGate(params[0]), nil
	case RZ:
		return RZGate(params[0]), nil
	case RZZ:
		return RZZGate(params[0]), nil
	default:
		return CNOTGate(), nil
	}
}

// RXGate is cos(θ/2)·I - i·sin(θ/2)·X.
func RXGate(theta float64) *quantum.Operator {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return mustOperator(1, []complex128{
		c, s,
		s, c,
	})
}

// RZGate is diag(e^{-iφ/2}, e^{iφ/2}).
func RZGate(phi float64) *quantum.Operator {
	return mustOperator(1, []complex128{
		phase(-phi / 2), 0,
		0, phase(phi / 2),
	})
}

// RZZGate is exp(-i·φ/2·Z⊗Z), a conditional phase between two qubits.
func RZZGate(phi float64) *quantum.Operator {
	even, odd := phase(-phi/2), phase(phi/2)
	return mustOperator(2, []complex128{
		even, 0, 0, 0,
		0, odd, 0, 0,
		0, 0, odd, 0,
		0, 0, 0, even,
	})
}

// CNOTGate is the controlled-X with control qubit 0 and target qubit 1.
func CNOTGate() *quantum.Operator {
	op, _ := CNOTWith(0, 1)
	return op
}

// CNOTWith builds a two-qubit controlled-X for the given qubit indices.
func CNOTWith(control, target int) (*quantum.Operator, error) {
	if control == target || control < 0 || control > 1 || target < 0 || target > 1 {
		return nil, errors.Wrapf(ErrInvalidGate, "cx control %d target %d", control, target)
	}
	data := make([]complex128, 16)
	for col := 0; col < 4; col++ {
		row := col
		if col&(1<<control) != 0 {
			row = col ^ (1 << target)
		}
		data[row*4+col] = 1
	}
	return mustOperator(2, data), nil
}

func phase(angle float64) complex128 {
	return cmplx.Exp(complex(0, angle))
}

func mustOperator(nQubits int, data []complex128) *quantum.Operator {
	op, err := quantum.NewOperator(nQubits, data)
	if err != nil {
		// every matrix in this file is unitary for finite angles
		panic(err)
	}
	return op
}
