package autodiff

// AddOp represents addition: y = a + b.
//
// Backward pass:
//   - dy/da = 1
//   - dy/db = 1
type AddOp struct {
	binary
}

// NewAddOp creates a new AddOp over a and b.
func NewAddOp(a, b *Var) *AddOp {
	return &AddOp{binary{[2]*Var{a, b}}}
}

// Compute returns a + b.
func (op *AddOp) Compute() float64 {
	return op.a() + op.b()
}

// Partials returns [1, 1].
func (op *AddOp) Partials() []float64 {
	return []float64{1, 1}
}

func (op *AddOp) String() string {
	return "(" + op.args[0].String() + "+" + op.args[1].String() + ")"
}
