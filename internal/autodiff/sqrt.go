package autodiff

import "math"

// SqrtOp represents the square root operation: y = sqrt(x).
//
// Backward pass:
//   - dy/dx = 0.5 / sqrt(x)
//
// x < 0 yields NaN; x == 0 yields an infinite derivative.
type SqrtOp struct {
	unary
}

// NewSqrtOp creates a new SqrtOp over x.
func NewSqrtOp(x *Var) *SqrtOp {
	return &SqrtOp{unary{[1]*Var{x}}}
}

// Compute returns sqrt(x).
func (op *SqrtOp) Compute() float64 {
	return math.Sqrt(op.x())
}

// Partials returns [0.5/sqrt(x)].
func (op *SqrtOp) Partials() []float64 {
	return []float64{0.5 / math.Sqrt(op.x())}
}

func (op *SqrtOp) String() string {
	return "sqrt(" + op.args[0].String() + ")"
}
