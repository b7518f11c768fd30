package autodiff

// SubOp represents subtraction: y = a - b.
//
// Backward pass:
//   - dy/da = 1
//   - dy/db = -1
type SubOp struct {
	binary
}

// NewSubOp creates a new SubOp over a and b.
func NewSubOp(a, b *Var) *SubOp {
	return &SubOp{binary{[2]*Var{a, b}}}
}

// Compute returns a - b.
func (op *SubOp) Compute() float64 {
	return op.a() - op.b()
}

// Partials returns [1, -1].
func (op *SubOp) Partials() []float64 {
	return []float64{1, -1}
}

func (op *SubOp) String() string {
	return "(" + op.args[0].String() + "-" + op.args[1].String() + ")"
}
