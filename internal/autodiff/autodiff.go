// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// A Value records a float64, the operation that produced it and the Values it
// was computed from. Composing Values builds a directed acyclic graph as a
// side effect of ordinary arithmetic. Backward walks that graph once from a
// terminal node and leaves ∂terminal/∂node in every reachable node's Grad.
//
// Architecture:
//   - Value: node with forward data, gradient accumulator and operands
//   - ops.Kind: tag of the producing operation, dispatched to its local rule
//   - Backward: topological sort + reverse sweep applying local rules
//
// Usage:
//
//	x := autodiff.NewLabeled(2.0, "x")
//	y := x.Mul(x).AddScalar(1) // y = x² + 1
//
//	autodiff.Backward(y)
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4
//
// Gradients accumulate. Calling Backward twice on the same graph doubles the
// gradient of every node in it; reset with ZeroGrads (or ZeroGrad on
// individual leaves) between independent passes.
//
// A graph must not be built or differentiated from several goroutines at once.
package autodiff
