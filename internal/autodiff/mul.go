package autodiff

// MulOp represents multiplication: y = a * b.
//
// Backward pass:
//   - dy/da = b
//   - dy/db = a
//
// When a and b are the same Var (y = x*x) both contributions land on it and
// add up to 2x.
type MulOp struct {
	binary
}

// NewMulOp creates a new MulOp over a and b.
func NewMulOp(a, b *Var) *MulOp {
	return &MulOp{binary{[2]*Var{a, b}}}
}

// Compute returns a * b.
func (op *MulOp) Compute() float64 {
	return op.a() * op.b()
}

// Partials returns [b, a].
func (op *MulOp) Partials() []float64 {
	return []float64{op.b(), op.a()}
}

func (op *MulOp) String() string {
	return op.args[0].String() + "*" + op.args[1].String()
}
