package autodiff

import "math"

// LogOp represents the natural logarithm: y = ln(x).
//
// Backward pass:
//   - dy/dx = 1/x
//
// x <= 0 yields NaN or -Inf.
type LogOp struct {
	unary
}

// NewLogOp creates a new LogOp over x.
func NewLogOp(x *Var) *LogOp {
	return &LogOp{unary{[1]*Var{x}}}
}

// Compute returns ln(x).
func (op *LogOp) Compute() float64 {
	return math.Log(op.x())
}

// Partials returns [1/x].
func (op *LogOp) Partials() []float64 {
	return []float64{1 / op.x()}
}

func (op *LogOp) String() string {
	return "log(" + op.args[0].String() + ")"
}
