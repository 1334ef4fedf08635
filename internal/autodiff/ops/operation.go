// Package ops defines the operation kinds of the scalar autodiff engine.
//
// Every node records the Kind of operation that produced it. Forward and
// Backward dispatch on that tag, so nodes carry no per-instance closures:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a^p for a fixed exponent p (d/da = p * a^(p-1))
//   - Exp: e^a (d/da = e^a = out)
//   - Tanh: tanh(a) (d/da = 1 - out²)
//   - ReLU: max(0, a) (d/da = 1 if out > 0, else 0)
//
// Backward returns gradient contributions; the caller accumulates them into
// the operands. Contributions are never written directly, so an operand used
// twice (a * a) receives both.
package ops

import "fmt"

// Kind identifies the operation that produced a node.
type Kind uint8

// Supported operation kinds.
const (
	Leaf Kind = iota
	Add
	Mul
	Pow
	Exp
	Tanh
	ReLU
)

// String returns the op tag used for diagnostics and graph rendering.
// Leaf nodes have an empty tag.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return ""
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "**"
	case Exp:
		return "exp"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Arity returns the number of operands an operation of this kind takes.
func (k Kind) Arity() int {
	switch k {
	case Add, Mul:
		return 2
	case Pow, Exp, Tanh, ReLU:
		return 1
	default:
		return 0
	}
}

// Forward computes the output value of an operation.
//
// Unary operations read only in[0]. exponent is used by Pow only.
// Forward panics for Leaf: leaves have no operation to evaluate.
func Forward(kind Kind, in [2]float64, exponent float64) float64 {
	switch kind {
	case Add:
		return addForward(in[0], in[1])
	case Mul:
		return mulForward(in[0], in[1])
	case Pow:
		return powForward(in[0], exponent)
	case Exp:
		return expForward(in[0])
	case Tanh:
		return tanhForward(in[0])
	case ReLU:
		return reluForward(in[0])
	default:
		panic(fmt.Sprintf("ops: no forward rule for %v", kind))
	}
}

// Backward applies the local chain rule of an operation.
//
// Parameters:
//   - kind: operation that produced the node
//   - out: the node's forward value
//   - outGrad: the node's accumulated gradient (upstream gradient)
//   - in: forward values of the operands
//   - exponent: exponent of a Pow node, ignored otherwise
//
// Returns the contribution for each operand, in operand order. Entries past
// the operation's arity are zero. Leaf nodes contribute nothing.
func Backward(kind Kind, out, outGrad float64, in [2]float64, exponent float64) [2]float64 {
	switch kind {
	case Add:
		return addBackward(outGrad)
	case Mul:
		return mulBackward(in[0], in[1], outGrad)
	case Pow:
		return powBackward(in[0], exponent, outGrad)
	case Exp:
		return expBackward(out, outGrad)
	case Tanh:
		return tanhBackward(out, outGrad)
	case ReLU:
		return reluBackward(out, outGrad)
	default:
		return [2]float64{}
	}
}
