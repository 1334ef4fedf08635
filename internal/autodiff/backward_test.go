package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalar/internal/autodiff"
)

// TestBackward_Neuron reproduces a single tanh neuron with two inputs and
// checks every gradient against the hand-derived values.
func TestBackward_Neuron(t *testing.T) {
	x1 := autodiff.NewLabeled(2.0, "x1")
	x2 := autodiff.NewLabeled(0.0, "x2")
	w1 := autodiff.NewLabeled(-3.0, "w1")
	w2 := autodiff.NewLabeled(1.0, "w2")
	b := autodiff.NewLabeled(6.8813735870195432, "b")

	n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b).SetLabel("n")
	e := n.MulScalar(2).Exp().SetLabel("e")
	o := e.SubScalar(1).Div(e.AddScalar(1)).SetLabel("o")

	autodiff.Backward(o)

	assert.InDelta(t, 0.7071067, o.Data(), 1e-6)
	assert.InDelta(t, 0.5, n.Grad(), 1e-6)
	assert.InDelta(t, -1.5, x1.Grad(), 1e-6)
	assert.InDelta(t, 1.0, w1.Grad(), 1e-6)
	assert.InDelta(t, 0.5, x2.Grad(), 1e-6)
	assert.InDelta(t, 0.0, w2.Grad(), 1e-6)
	assert.InDelta(t, 0.5, b.Grad(), 1e-6)
}

// TestBackward_NeuronTanhMatchesExpanded builds the same neuron with Tanh
// directly; gradients must agree with the exp-based expansion.
func TestBackward_NeuronTanhMatchesExpanded(t *testing.T) {
	build := func(useTanh bool) []*autodiff.Value {
		x1 := autodiff.NewValue(2.0)
		x2 := autodiff.NewValue(0.0)
		w1 := autodiff.NewValue(-3.0)
		w2 := autodiff.NewValue(1.0)
		b := autodiff.NewValue(6.8813735870195432)

		n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b)
		var o *autodiff.Value
		if useTanh {
			o = n.Tanh()
		} else {
			e := n.MulScalar(2).Exp()
			o = e.SubScalar(1).Div(e.AddScalar(1))
		}
		autodiff.Backward(o)
		return []*autodiff.Value{o, x1, x2, w1, w2, b}
	}

	direct := build(true)
	expanded := build(false)

	assert.InDelta(t, expanded[0].Data(), direct[0].Data(), 1e-12)
	for i := 1; i < len(direct); i++ {
		assert.InDelta(t, expanded[i].Grad(), direct[i].Grad(), 1e-9, "leaf %d", i)
	}
}

func TestBackward_DiamondAccumulates(t *testing.T) {
	for _, x := range []float64{-2, 0, 0.5, 3} {
		a := autodiff.NewValue(x)
		c := a.Mul(a).Add(a)

		autodiff.Backward(c)

		assert.InDelta(t, 2*x+1, a.Grad(), 1e-12, "a=%v", x)
	}
}

func TestBackward_SameNodeTwiceInAdd(t *testing.T) {
	a := autodiff.NewValue(3)
	b := a.Add(a)

	autodiff.Backward(b)

	assert.Equal(t, 2.0, a.Grad())
}

func TestBackward_SharedIntermediate(t *testing.T) {
	// d = a*b, e = a+b, f = d*e. Here d and e both reach a and b.
	a := autodiff.NewValue(-2)
	b := autodiff.NewValue(3)
	d := a.Mul(b)
	e := a.Add(b)
	f := d.Mul(e)

	autodiff.Backward(f)

	// df/da = b*e + d = 3*1 + -6 = -3; df/db = a*e + d = -2*1 + -6 = -8
	assert.InDelta(t, -3.0, a.Grad(), 1e-12)
	assert.InDelta(t, -8.0, b.Grad(), 1e-12)
	assert.InDelta(t, 1.0, d.Grad(), 1e-12)
	assert.InDelta(t, -6.0, e.Grad(), 1e-12)
}

func TestBackward_TwiceDoublesGradients(t *testing.T) {
	a := autodiff.NewValue(1.5)
	b := autodiff.NewValue(-0.5)
	mid := a.Mul(b).Add(a.Tanh())
	out := mid.Exp()

	autodiff.Backward(out)
	first := map[*autodiff.Value]float64{a: a.Grad(), b: b.Grad(), mid: mid.Grad(), out: out.Grad()}

	autodiff.Backward(out)

	for v, g := range first {
		assert.InDelta(t, 2*g, v.Grad(), 1e-12, "%v", v)
	}
}

func TestBackward_TwiceDoublesDeepGraph(t *testing.T) {
	x := autodiff.NewValue(0.7)
	y := autodiff.NewValue(-1.3)
	z := autodiff.NewValue(2.1)

	h := x.Mul(y).Tanh().Add(z.MustPow(3)).Div(x.Exp().AddScalar(1))
	for range 8 {
		h = h.Tanh().Mul(y).Add(x.Div(z)).MustPow(2).Exp().SubScalar(1)
	}

	autodiff.Backward(h)
	require.Equal(t, 1.0, h.Grad())
	leaves := []*autodiff.Value{x, y, z}
	first := make([]float64, len(leaves))
	for i, v := range leaves {
		first[i] = v.Grad()
	}

	autodiff.Backward(h)

	assert.Equal(t, 2.0, h.Grad())
	for i, v := range leaves {
		assert.InEpsilon(t, 2*first[i], v.Grad(), 1e-12, "leaf %d", i)
	}
}

func TestBackward_AddsToPriorGradient(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(5)

	autodiff.Backward(a.Mul(b)) // a.grad = 5
	autodiff.Backward(a.Add(b)) // a.grad += 1

	assert.Equal(t, 6.0, a.Grad())
	assert.Equal(t, 3.0, b.Grad())
}

func TestBackward_Leaf(t *testing.T) {
	other := autodiff.NewValue(5)
	leaf := autodiff.NewValue(2)
	_ = leaf.Add(other)

	autodiff.Backward(leaf)

	assert.Equal(t, 1.0, leaf.Grad())
	assert.Equal(t, 0.0, other.Grad())
}

func TestBackward_DoesNotTouchUnreachableNodes(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(2)
	c := autodiff.NewValue(3)
	ab := a.Mul(b)
	_ = ab.Mul(c) // consumer not involved in the terminal below

	autodiff.Backward(ab)

	assert.Equal(t, 2.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
	assert.Equal(t, 0.0, c.Grad())
}

func TestBackward_LongChain(t *testing.T) {
	x := autodiff.NewValue(1)
	y := x
	const depth = 100_000
	for range depth {
		y = y.AddScalar(0)
	}

	autodiff.Backward(y)

	assert.Equal(t, 1.0, x.Grad())
}

func TestTopologicalOrder(t *testing.T) {
	a := autodiff.NewLabeled(2, "a")
	b := autodiff.NewLabeled(3, "b")
	c := a.Mul(b).SetLabel("c")
	d := c.Add(a).SetLabel("d")

	order := autodiff.TopologicalOrder(d)
	require.Len(t, order, 4)

	// Post-order DFS visiting operands left to right.
	assert.Equal(t, []*autodiff.Value{a, b, c, d}, order)

	pos := make(map[*autodiff.Value]int)
	for i, v := range order {
		pos[v] = i
	}
	for _, v := range order {
		for _, p := range v.Operands() {
			assert.Less(t, pos[p], pos[v], "operand must precede consumer")
		}
	}
}

func TestTopologicalOrder_IdentityNotValue(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(1)
	c := a.Add(b)

	order := autodiff.TopologicalOrder(c)

	assert.Len(t, order, 3)
}

func TestTopologicalOrder_Leaf(t *testing.T) {
	a := autodiff.NewValue(1)
	assert.Equal(t, []*autodiff.Value{a}, autodiff.TopologicalOrder(a))
}

func TestZeroGrads(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(3)
	c := a.Mul(b)

	autodiff.Backward(c)
	require.NotZero(t, a.Grad())

	autodiff.ZeroGrads(c)
	assert.Zero(t, a.Grad())
	assert.Zero(t, b.Grad())
	assert.Zero(t, c.Grad())

	autodiff.Backward(c)
	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
}

func TestValue_ZeroGrad(t *testing.T) {
	a := autodiff.NewValue(2)
	autodiff.Backward(a)
	require.Equal(t, 1.0, a.Grad())

	a.ZeroGrad()
	assert.Zero(t, a.Grad())
}
