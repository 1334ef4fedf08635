// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scalar/autodiff"
)

func TestPublicAPI_Neuron(t *testing.T) {
	x1 := autodiff.NewLabeled(2.0, "x1")
	x2 := autodiff.NewLabeled(0.0, "x2")
	w1 := autodiff.NewLabeled(-3.0, "w1")
	w2 := autodiff.NewLabeled(1.0, "w2")
	b := autodiff.NewLabeled(6.8813735870195432, "b")

	o := autodiff.Sum(x1.Mul(w1), x2.Mul(w2), b).Tanh()
	autodiff.Backward(o)

	assert.InDelta(t, 0.7071067, o.Data(), 1e-6)
	assert.Equal(t, autodiff.OpTanh, o.Op())
	assert.InDelta(t, -1.5, x1.Grad(), 1e-6)
	assert.InDelta(t, 1.0, w1.Grad(), 1e-6)
	assert.InDelta(t, 0.5, x2.Grad(), 1e-6)
	assert.InDelta(t, 0.0, w2.Grad(), 1e-6)

	nodes, edges := autodiff.Trace(o)
	assert.Len(t, nodes, len(autodiff.TopologicalOrder(o)))
	assert.NotEmpty(t, edges)

	autodiff.ZeroGrads(o)
	assert.Zero(t, x1.Grad())
}

func TestPublicAPI_InvalidExponent(t *testing.T) {
	_, err := autodiff.Const(2).Pow(math.NaN())
	assert.ErrorIs(t, err, autodiff.ErrInvalidExponent)
}
