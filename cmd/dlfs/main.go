// Package main provides the DLFS command line tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/nn"
	"github.com/namdori61/DLFS/optim"
	"github.com/namdori61/DLFS/tensor"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("DLFS %s\n", version)
	case "demo":
		if err := demo(os.Args[2:]); err != nil {
			log.Fatalf("demo: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("DLFS - feed-forward neural networks from scratch")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Fit a two-layer network to a synthetic regression target")
}

// demo fits y = 2*x0 - x1 + 0.5 on a fixed synthetic batch and logs the loss.
func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	steps := fs.Int("steps", 200, "Number of gradient descent steps")
	lr := fs.Float64("lr", 0.01, "Learning rate")
	momentum := fs.Float64("momentum", 0, "SGD momentum factor")
	hidden := fs.Int("hidden", 8, "Hidden layer width")
	batch := fs.Int("batch", 32, "Number of synthetic samples")
	seed := fs.Uint64("seed", 42, "Seed for data and initialization (0 = random)")
	every := fs.Int("log-every", 20, "Log the loss every N steps")
	if err := fs.Parse(args); err != nil {
		return err
	}

	x, y := syntheticBatch(*batch, *seed)

	model := nn.NewSequential(
		nn.NewDense(*hidden, nn.DenseConfig{Activation: nn.Tanh, Seed: *seed, WeightInit: nn.Xavier}),
		nn.NewDense(1, nn.DenseConfig{Activation: nn.Linear, Seed: *seed + 1, WeightInit: nn.Xavier}),
	)
	loss := nn.NewMeanSquaredError()
	optimizer := optim.NewSGD([]optim.ParamSource{model}, optim.SGDConfig{LR: *lr, Momentum: *momentum})

	log.Printf("training: samples=%d hidden=%d lr=%g momentum=%g steps=%d", *batch, *hidden, *lr, *momentum, *steps)

	var value float64
	for step := 1; step <= *steps; step++ {
		prediction, err := model.Forward(x)
		if err != nil {
			return err
		}
		value, err = loss.Forward(prediction, y)
		if err != nil {
			return err
		}
		grad, err := loss.Backward()
		if err != nil {
			return err
		}
		if _, err := model.Backward(grad); err != nil {
			return err
		}
		if err := optimizer.Step(); err != nil {
			return err
		}

		if *every > 0 && (step == 1 || step%*every == 0) {
			log.Printf("step %4d  loss %.6f", step, value)
		}
	}

	log.Printf("done: final loss %.6f", value)
	return nil
}

func syntheticBatch(n int, seed uint64) (*mat.Dense, *mat.Dense) {
	src := tensor.NewSource(seed)
	x := tensor.Randn(n, 2, src)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		y.Set(i, 0, 2*x.At(i, 0)-x.At(i, 1)+0.5)
	}
	return x, y
}
