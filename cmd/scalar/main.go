// Package main provides the scalar autodiff CLI.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/born-ml/scalar/autodiff"
	"github.com/born-ml/scalar/nn"
	"github.com/born-ml/scalar/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("scalar %s\n", version)
	case "neuron":
		neuron()
	case "train":
		steps := 50
		if len(os.Args) > 2 {
			n, err := strconv.Atoi(os.Args[2])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "invalid step count %q\n", os.Args[2])
				os.Exit(2)
			}
			steps = n
		}
		if err := train(steps); err != nil {
			fmt.Fprintf(os.Stderr, "train: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("scalar - reverse-mode autodiff over scalar values")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  neuron     Differentiate a two-input tanh neuron and print its graph")
	fmt.Println("  train [N]  Fit a 3-4-4-1 MLP to the four-sample toy dataset (default 50 steps)")
}

// neuron builds o = tanh(x1*w1 + x2*w2 + b), with tanh expanded through exp,
// and prints every node with its gradient followed by the graph edges.
func neuron() {
	x1 := autodiff.NewLabeled(2.0, "x1")
	x2 := autodiff.NewLabeled(0.0, "x2")
	w1 := autodiff.NewLabeled(-3.0, "w1")
	w2 := autodiff.NewLabeled(1.0, "w2")
	b := autodiff.NewLabeled(6.8813735870195432, "b")

	n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b).SetLabel("n")
	e := n.MulScalar(2).Exp().SetLabel("e")
	o := e.SubScalar(1).Div(e.AddScalar(1)).SetLabel("o")

	autodiff.Backward(o)

	nodes, edges := autodiff.Trace(o)
	ids := make(map[*autodiff.Value]int, len(nodes))
	for i, v := range nodes {
		ids[v] = i
		tag := v.Op().String()
		if tag == "" {
			tag = "leaf"
		}
		fmt.Printf("%3d %-5s %-4s data=%-12.6f grad=%.6f\n", i, tag, v.Label(), v.Data(), v.Grad())
	}

	fmt.Println("Edges:")
	for _, edge := range edges {
		fmt.Printf("  %d -> %d\n", ids[edge.From], ids[edge.To])
	}
}

// train fits the toy dataset with plain SGD and prints the loss curve.
func train(steps int) error {
	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}

	rng := rand.New(rand.NewSource(1)) //nolint:gosec // reproducible demo
	model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(rng, -1, 1))
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})

	for step := range steps {
		preds := make([]*autodiff.Value, len(xs))
		for i, x := range xs {
			preds[i] = model.Output(nn.Inputs(x...))
		}
		loss, err := nn.SumSquaredError(preds, ys)
		if err != nil {
			return err
		}

		sgd.ZeroGrad()
		autodiff.Backward(loss)
		sgd.Step()

		if step%10 == 0 || step == steps-1 {
			fmt.Printf("step %3d  loss %.6f\n", step, loss.Data())
		}
	}
	return nil
}
