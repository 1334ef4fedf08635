package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/scalar/internal/autodiff/ops"
)

// Value is a node in the computation graph.
//
// Data, operands and op are fixed at construction. Grad is the only field the
// engine mutates, during Backward. Leaves additionally accept SetData so
// optimizers can apply parameter updates between passes; interior nodes never
// recompute, so the forward graph has to be rebuilt after an update.
type Value struct {
	data     float64
	grad     float64
	op       ops.Kind
	exponent float64  // Pow only
	prev     []*Value // Operands in order; nil for leaves
	label    string   // Diagnostics only
}

// NewValue creates a leaf node holding data.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// NewLabeled creates a leaf node with a human-readable label.
// The label never affects computation.
func NewLabeled(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// Const wraps a numeric literal in an anonymous leaf node.
func Const(k float64) *Value {
	return NewValue(k)
}

func newUnary(kind ops.Kind, a *Value, exponent float64) *Value {
	return &Value{
		data:     ops.Forward(kind, [2]float64{a.data}, exponent),
		op:       kind,
		exponent: exponent,
		prev:     []*Value{a},
	}
}

func newBinary(kind ops.Kind, a, b *Value) *Value {
	return &Value{
		data: ops.Forward(kind, [2]float64{a.data, b.data}, 0),
		op:   kind,
		prev: []*Value{a, b},
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient of the last Backward terminal
// with respect to this node.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the operation that produced this node (ops.Leaf for leaves).
func (v *Value) Op() ops.Kind {
	return v.op
}

// Exponent returns the exponent of a Pow node and 0 for any other node.
func (v *Value) Exponent() float64 {
	return v.exponent
}

// Operands returns the node's direct inputs in order.
// The returned slice is a copy; the graph itself cannot be modified through it.
func (v *Value) Operands() []*Value {
	if len(v.prev) == 0 {
		return nil
	}
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// Label returns the diagnostic label, empty if none was set.
func (v *Value) Label() string {
	return v.label
}

// SetLabel attaches a diagnostic label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return len(v.prev) == 0
}

// SetData overwrites the value of a leaf node.
//
// Panics on interior nodes: their value is a function of their operands.
func (v *Value) SetData(data float64) {
	if !v.IsLeaf() {
		panic(fmt.Sprintf("autodiff: SetData on interior %q node", v.op))
	}
	v.data = data
}

// ZeroGrad resets this node's gradient accumulator.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s, data=%g, grad=%g)", v.label, v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	return newBinary(ops.Add, v, other)
}

// AddScalar returns v + k.
func (v *Value) AddScalar(k float64) *Value {
	return v.Add(Const(k))
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	return newBinary(ops.Mul, v, other)
}

// MulScalar returns v * k.
func (v *Value) MulScalar(k float64) *Value {
	return v.Mul(Const(k))
}

// Pow returns v^p for a constant exponent p.
//
// Returns an error wrapping ErrInvalidExponent if p is NaN or ±Inf.
// A finite exponent on an unsuitable base (0^-1, (-8)^0.5) is not an error:
// the result is the IEEE-754 value math.Pow gives.
func (v *Value) Pow(p float64) (*Value, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return nil, fmt.Errorf("pow %g: %w", p, ErrInvalidExponent)
	}
	return newUnary(ops.Pow, v, p), nil
}

// MustPow is like Pow but panics on an invalid exponent.
// Intended for literal exponents.
func (v *Value) MustPow(p float64) *Value {
	out, err := v.Pow(p)
	if err != nil {
		panic(err)
	}
	return out
}

// Neg returns -v, built as v * -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, built as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// SubScalar returns v - k.
func (v *Value) SubScalar(k float64) *Value {
	return v.Sub(Const(k))
}

// Div returns v / other, built as v * other^-1.
//
// Dividing by a zero-valued node yields ±Inf or NaN rather than an error.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(newUnary(ops.Pow, other, -1))
}

// DivScalar returns v / k.
func (v *Value) DivScalar(k float64) *Value {
	return v.Div(Const(k))
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	return newUnary(ops.Exp, v, 0)
}

// Tanh returns tanh(v).
func (v *Value) Tanh() *Value {
	return newUnary(ops.Tanh, v, 0)
}

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value {
	return newUnary(ops.ReLU, v, 0)
}

// backward applies the node's local rule, accumulating into its operands.
func (v *Value) backward() {
	if len(v.prev) == 0 {
		return
	}

	var in [2]float64
	for i, p := range v.prev {
		in[i] = p.data
	}

	grads := ops.Backward(v.op, v.data, v.grad, in, v.exponent)
	for i, p := range v.prev {
		p.grad += grads[i]
	}
}

// Sum returns the left-to-right sum of values.
// Sum of no values is a zero leaf.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return Const(0)
	}
	acc := values[0]
	for _, x := range values[1:] {
		acc = acc.Add(x)
	}
	return acc
}
