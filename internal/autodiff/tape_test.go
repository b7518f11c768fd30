package autodiff_test

import (
	"testing"

	"github.com/born-ml/scalarad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRosenbrock returns f = (1-x)² + 100*(y-x²)² with named leaves.
func buildRosenbrock(x0, y0 float64) (x, y, f *autodiff.Var) {
	x = autodiff.Named("x", x0)
	y = autodiff.Named("y", y0)
	one, hundred := autodiff.New(1), autodiff.New(100)
	f = one.Sub(x).Square().Add(hundred.Mul(y.Sub(x.Square()).Square()))
	return x, y, f
}

func TestTape_Order(t *testing.T) {
	x := autodiff.Named("x", 3)
	f := x.Add(autodiff.New(2)).Mul(x.Sub(autodiff.New(1)))
	tape := autodiff.NewTape(f)

	assert.Same(t, f, tape.Output())
	vars := tape.Vars()
	require.Len(t, vars, 6) // x, 2, x+2, 1, x-1, f
	assert.Same(t, f, vars[len(vars)-1])
	assert.Equal(t, 3, tape.NumOps())
	assert.Len(t, tape.Leaves(), 3)

	// Every argument precedes the Var computed from it.
	pos := make(map[*autodiff.Var]int, len(vars))
	for i, v := range vars {
		pos[v] = i
	}
	for _, v := range vars {
		if v.IsLeaf() {
			continue
		}
		for _, arg := range v.Creator().Args() {
			assert.Less(t, pos[arg], pos[v], "%s must precede %s", arg, v)
		}
	}
}

func TestTape_SharedNodesRecordedOnce(t *testing.T) {
	x := autodiff.New(2)
	s := x.Sin()
	f := s.Mul(s).Add(s)
	tape := autodiff.NewTape(f)
	assert.Len(t, tape.Vars(), 4) // x, s, s*s, f
	assert.Equal(t, 3, tape.NumOps())
}

func TestTape_MatchesRecursive(t *testing.T) {
	x1, y1, f1 := buildRosenbrock(-1.2, 1)
	x2, y2, f2 := buildRosenbrock(-1.2, 1)
	tape := autodiff.NewTape(f2)

	for _, point := range [][2]float64{{-1.2, 1}, {0.5, 0.5}, {2, 3}} {
		x1.Set(point[0])
		y1.Set(point[1])
		x2.Set(point[0])
		y2.Set(point[1])

		want := f1.Evaluate()
		got := tape.Evaluate()
		assert.InDelta(t, want, got, delta)
		assert.InDelta(t, want, f2.Val(), delta)

		f1.ZeroGrad()
		f1.Backward(1)
		tape.ZeroGrad()
		tape.Backward(1)
		assert.InDelta(t, x1.Grad(), x2.Grad(), 1e-9)
		assert.InDelta(t, y1.Grad(), y2.Grad(), 1e-9)
	}
}

func TestTape_RosenbrockGradient(t *testing.T) {
	x, y, f := buildRosenbrock(1, 1)
	tape := autodiff.NewTape(f)
	assert.InDelta(t, 0.0, tape.Evaluate(), delta)

	x.Set(0)
	y.Set(0)
	assert.InDelta(t, 1.0, tape.Evaluate(), delta)
	tape.ZeroGrad()
	tape.Backward(1)
	// df/dx = -2(1-x) - 400x(y-x²), df/dy = 200(y-x²)
	assert.InDelta(t, -2.0, x.Grad(), delta)
	assert.InDelta(t, 0.0, y.Grad(), delta)
}

func TestTape_SharedArgumentAccumulates(t *testing.T) {
	x := autodiff.New(5)
	tape := autodiff.NewTape(x.Mul(x))
	tape.ZeroGrad()
	tape.Backward(1)
	assert.InDelta(t, 10.0, x.Grad(), delta)

	// Accumulates across passes until reset.
	tape.Backward(1)
	assert.InDelta(t, 20.0, x.Grad(), delta)
	tape.ZeroGrad()
	tape.Backward(1)
	assert.InDelta(t, 10.0, x.Grad(), delta)
}

func TestTape_DeepChain(t *testing.T) {
	const depth = 200_000
	x := autodiff.New(1)
	y := x
	for range depth {
		y = y.Add(autodiff.New(1))
	}
	tape := autodiff.NewTape(y)
	assert.Equal(t, depth, tape.NumOps())

	x.Set(2)
	assert.InDelta(t, float64(depth+2), tape.Evaluate(), delta)
	tape.ZeroGrad()
	tape.Backward(1)
	assert.InDelta(t, 1.0, x.Grad(), delta)
}

func TestTape_Leaf(t *testing.T) {
	x := autodiff.New(4)
	tape := autodiff.NewTape(x)
	assert.Equal(t, 0, tape.NumOps())
	assert.Equal(t, 4.0, tape.Evaluate())
	tape.ZeroGrad()
	tape.Backward(2)
	assert.Equal(t, 2.0, x.Grad())
}
