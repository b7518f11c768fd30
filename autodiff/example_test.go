package autodiff_test

import (
	"fmt"

	"github.com/born-ml/scalarad/autodiff"
)

func Example() {
	x := autodiff.Named("x", 3)
	f := x.Add(autodiff.New(2)).Mul(x.Sub(autodiff.New(1)))
	fmt.Println(f, "=", f.Val())

	f.ZeroGrad()
	f.Backward(1)
	fmt.Println("df/dx =", x.Grad())

	x.Set(4)
	fmt.Println("stale:", f.Val(), "fresh:", f.Evaluate())
	// Output:
	// (x+2)*(x-1) = 10
	// df/dx = 7
	// stale: 10 fresh: 18
}

func ExampleNewTape() {
	x := autodiff.New(5)
	tape := autodiff.NewTape(autodiff.Mul(x, x))
	tape.ZeroGrad()
	tape.Backward(1)
	fmt.Println(tape.NumOps(), x.Grad())
	// Output:
	// 1 10
}
