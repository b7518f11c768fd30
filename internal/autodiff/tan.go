package autodiff

import "math"

// TanOp represents the tangent operation: y = tan(x).
//
// Backward pass:
//   - dy/dx = 1/cos²(x)
type TanOp struct {
	unary
}

// NewTanOp creates a new TanOp over x.
func NewTanOp(x *Var) *TanOp {
	return &TanOp{unary{[1]*Var{x}}}
}

// Compute returns tan(x).
func (op *TanOp) Compute() float64 {
	return math.Tan(op.x())
}

// Partials returns [1/cos²(x)].
func (op *TanOp) Partials() []float64 {
	c := math.Cos(op.x())
	return []float64{1 / (c * c)}
}

func (op *TanOp) String() string {
	return "tan(" + op.args[0].String() + ")"
}
