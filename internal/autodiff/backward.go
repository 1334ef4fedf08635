package autodiff

// Backward computes ∂root/∂node for every node reachable from root.
//
// Algorithm:
//  1. Order the reachable subgraph topologically (operands before consumers)
//  2. Seed root's gradient with 1
//  3. Walk the order in reverse, applying each node's local rule once
//
// By step 3 every consumer of a node has already contributed to its gradient
// when the node propagates, so fan-in (a node used on several paths) is
// summed correctly.
//
// Gradients accumulate across calls: each node ends up with its previous
// gradient plus this pass's derivative. The sweep itself runs on zeroed
// accumulators, so stale interior gradients are never propagated again and a
// second call on the same terminal exactly doubles every gradient. Callers
// that reuse leaves across independent passes reset them with ZeroGrads or
// Value.ZeroGrad.
//
// Calling Backward on a fresh leaf sets its gradient to 1 and touches
// nothing else.
func Backward(root *Value) {
	order := TopologicalOrder(root)

	prior := make([]float64, len(order))
	for i, v := range order {
		prior[i] = v.grad
		v.grad = 0
	}

	root.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		order[i].backward()
	}

	for i, v := range order {
		v.grad += prior[i]
	}
}

// TopologicalOrder returns every node reachable from root, each appearing
// after all of its operands. root is always last.
//
// The order is that of a depth-first post-order traversal visiting operands
// left to right, with nodes deduplicated by identity (two leaves holding the
// same number are distinct nodes). An explicit stack stands in for recursion,
// so long chains cannot exhaust the goroutine stack.
func TopologicalOrder(root *Value) []*Value {
	type frame struct {
		node *Value
		next int // Index of the next operand to visit
	}

	var order []*Value
	visited := map[*Value]struct{}{root: {}}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.prev) {
			child := top.node.prev[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}

		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// ZeroGrads resets the gradient of every node reachable from root.
func ZeroGrads(root *Value) {
	for _, v := range TopologicalOrder(root) {
		v.grad = 0
	}
}
