package autodiff

import "math"

// PowOp raises its argument to a fixed exponent: y = x^p.
//
// The exponent is a constant chosen when the operation is built. It is not a
// Var, takes no part in the graph and never receives a gradient.
//
// Backward pass:
//   - dy/dx = p * x^(p-1)
type PowOp struct {
	unary
	p float64
}

// NewPowOp creates a new PowOp computing x^p.
func NewPowOp(x *Var, p float64) *PowOp {
	return &PowOp{unary: unary{[1]*Var{x}}, p: p}
}

// Exponent returns the fixed exponent p.
func (op *PowOp) Exponent() float64 {
	return op.p
}

// Compute returns x^p.
func (op *PowOp) Compute() float64 {
	return math.Pow(op.x(), op.p)
}

// Partials returns [p * x^(p-1)].
func (op *PowOp) Partials() []float64 {
	return []float64{op.p * math.Pow(op.x(), op.p-1)}
}

func (op *PowOp) String() string {
	return "(" + op.args[0].String() + ")^" + formatScalar(op.p)
}
