// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Values are built from leaves with ordinary arithmetic methods; each result
// remembers its operands and the operation that produced it. Backward walks
// the resulting graph once and stores ∂output/∂node in every node's Grad.
//
// Example:
//
//	import "github.com/born-ml/scalar/autodiff"
//
//	func main() {
//	    x1 := autodiff.NewLabeled(2.0, "x1")
//	    w1 := autodiff.NewLabeled(-3.0, "w1")
//	    b := autodiff.NewLabeled(6.8813735870195432, "b")
//
//	    o := x1.Mul(w1).Add(b).Tanh()
//	    autodiff.Backward(o)
//
//	    fmt.Println(o.Data(), x1.Grad(), w1.Grad()) // 0.7071 -1.5 1
//	}
//
// Gradients accumulate across Backward calls; reset them with ZeroGrads or
// Value.ZeroGrad before an unrelated pass.
package autodiff

import (
	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/autodiff/ops"
)

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// Op identifies the operation that produced a Value.
type Op = ops.Kind

// Operation tags reported by Value.Op.
const (
	OpLeaf = ops.Leaf
	OpAdd  = ops.Add
	OpMul  = ops.Mul
	OpPow  = ops.Pow
	OpExp  = ops.Exp
	OpTanh = ops.Tanh
	OpReLU = ops.ReLU
)

// Edge connects an operand to the node computed from it.
type Edge = autodiff.Edge

// ErrInvalidExponent is returned by Value.Pow for NaN or infinite exponents.
var ErrInvalidExponent = autodiff.ErrInvalidExponent

// NewValue creates a leaf node.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// NewLabeled creates a leaf node with a diagnostic label.
func NewLabeled(data float64, label string) *Value {
	return autodiff.NewLabeled(data, label)
}

// Const wraps a numeric literal in an anonymous leaf.
func Const(k float64) *Value {
	return autodiff.Const(k)
}

// Sum returns the sum of values.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// Backward computes gradients via backpropagation from root.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// TopologicalOrder returns the nodes reachable from root, operands first.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// ZeroGrads resets the gradient of every node reachable from root.
func ZeroGrads(root *Value) {
	autodiff.ZeroGrads(root)
}

// Trace returns the nodes and edges of the graph rooted at root,
// for rendering by external tools.
func Trace(root *Value) ([]*Value, []Edge) {
	return autodiff.Trace(root)
}
