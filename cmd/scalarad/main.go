// Package main provides the scalarad CLI: it builds a small objective
// function, differentiates it and minimizes it with one of the optimizers.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/born-ml/scalarad/autodiff"
	"github.com/born-ml/scalarad/optim"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var (
	flagObjective = flag.String("objective", "rosenbrock", "Objective to minimize: "+strings.Join(objectiveNames(), ", "))
	flagOptimizer = flag.String("optimizer", "adam", "Optimizer: sgd or adam")
	flagX0        = flag.Float64("x0", -1.2, "Initial value of x")
	flagY0        = flag.Float64("y0", 1, "Initial value of y")
	flagLR        = flag.Float64("lr", 0.01, "Learning rate")
	flagMomentum  = flag.Float64("momentum", 0, "SGD momentum, in [0, 1)")
	flagSteps     = flag.Int("steps", 5000, "Number of optimization steps")
	flagTimeout   = flag.Duration("timeout", 0, "Stop after this duration, 0 for no limit")
	flagVersion   = flag.Bool("version", false, "Print version and exit")
)

// objectives maps names to builders of f(x, y).
var objectives = map[string]func(x, y *autodiff.Var) *autodiff.Var{
	// (1-x)² + 100(y-x²)², minimum 0 at (1, 1).
	"rosenbrock": func(x, y *autodiff.Var) *autodiff.Var {
		return autodiff.New(1).Sub(x).Square().
			Add(autodiff.New(100).Mul(y.Sub(x.Square()).Square()))
	},
	// (x-3)² + (y+1)², minimum 0 at (3, -1).
	"quadratic": func(x, y *autodiff.Var) *autodiff.Var {
		return x.Sub(autodiff.New(3)).Square().Add(y.Add(autodiff.New(1)).Square())
	},
	// sin(x) + sqrt(y²+1), minimum 0 at (-π/2, 0).
	"wave": func(x, y *autodiff.Var) *autodiff.Var {
		return x.Sin().Add(y.Square().Add(autodiff.New(1)).Sqrt())
	},
}

func objectiveNames() []string {
	names := make([]string, 0, len(objectives))
	for name := range objectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// config holds the parsed command-line configuration.
type config struct {
	Objective string
	Optimizer string
	X0, Y0    float64
	LR        float64
	Momentum  float64
	Steps     int
}

// result is what run reports.
type result struct {
	Expr       string
	X, Y, Loss float64
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagVersion {
		fmt.Printf("scalarad %s\n", version)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if *flagTimeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, *flagTimeout)
		defer cancelTimeout()
	}

	cfg := config{
		Objective: *flagObjective,
		Optimizer: *flagOptimizer,
		X0:        *flagX0,
		Y0:        *flagY0,
		LR:        *flagLR,
		Momentum:  *flagMomentum,
		Steps:     *flagSteps,
	}
	start := time.Now()
	res, err := run(ctx, cfg, os.Stdout)
	if err != nil {
		klog.Fatalf("scalarad: %+v", err)
	}
	klog.Infof("minimized %s in %s", cfg.Objective, time.Since(start))
	fmt.Printf("minimum: f(%g, %g) = %g\n", res.X, res.Y, res.Loss)
}

// run builds the objective, reports its value and gradient at the starting
// point and minimizes it.
func run(ctx context.Context, cfg config, out io.Writer) (result, error) {
	build, found := objectives[cfg.Objective]
	if !found {
		return result{}, errors.Errorf("unknown objective %q, valid values: %s",
			cfg.Objective, strings.Join(objectiveNames(), ", "))
	}
	x := autodiff.Named("x", cfg.X0)
	y := autodiff.Named("y", cfg.Y0)
	f := build(x, y)
	params := []*autodiff.Var{x, y}

	f.ZeroGrad()
	f.Backward(1)
	fmt.Fprintf(out, "f(x, y) = %s\n", f)
	fmt.Fprintf(out, "f(%g, %g) = %g, df/dx = %g, df/dy = %g\n", x.Val(), y.Val(), f.Val(), x.Grad(), y.Grad())

	var (
		opt optim.Optimizer
		err error
	)
	switch cfg.Optimizer {
	case "sgd":
		opt, err = optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum})
	case "adam":
		opt, err = optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR})
	default:
		err = errors.Errorf("unknown optimizer %q, valid values: sgd, adam", cfg.Optimizer)
	}
	if err != nil {
		return result{}, err
	}

	loss, err := optim.Minimize(ctx, f, opt, cfg.Steps)
	if err != nil {
		return result{}, errors.WithMessagef(err, "minimizing %s with %s", cfg.Objective, cfg.Optimizer)
	}
	return result{Expr: f.String(), X: x.Val(), Y: y.Val(), Loss: loss}, nil
}
