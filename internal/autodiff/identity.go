package autodiff

// IdentityOp passes its argument through: y = x.
//
// Backward pass:
//   - dy/dx = 1
type IdentityOp struct {
	unary
}

// NewIdentityOp creates a new IdentityOp over x.
func NewIdentityOp(x *Var) *IdentityOp {
	return &IdentityOp{unary{[1]*Var{x}}}
}

// Compute returns x.
func (op *IdentityOp) Compute() float64 {
	return op.x()
}

// Partials returns [1].
func (op *IdentityOp) Partials() []float64 {
	return []float64{1}
}

func (op *IdentityOp) String() string {
	return op.args[0].String()
}
