package autodiff

import "math"

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - dy/dx = cos(x)
type SinOp struct {
	unary
}

// NewSinOp creates a new SinOp over x.
func NewSinOp(x *Var) *SinOp {
	return &SinOp{unary{[1]*Var{x}}}
}

// Compute returns sin(x).
func (op *SinOp) Compute() float64 {
	return math.Sin(op.x())
}

// Partials returns [cos(x)].
func (op *SinOp) Partials() []float64 {
	return []float64{math.Cos(op.x())}
}

func (op *SinOp) String() string {
	return "sin(" + op.args[0].String() + ")"
}
