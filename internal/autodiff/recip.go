package autodiff

// RecipOp represents the reciprocal: y = 1/x.
//
// Backward pass:
//   - dy/dx = -1/x²
type RecipOp struct {
	unary
}

// NewRecipOp creates a new RecipOp over x.
func NewRecipOp(x *Var) *RecipOp {
	return &RecipOp{unary{[1]*Var{x}}}
}

// Compute returns 1/x.
func (op *RecipOp) Compute() float64 {
	return 1 / op.x()
}

// Partials returns [-1/x²].
func (op *RecipOp) Partials() []float64 {
	x := op.x()
	return []float64{-1 / (x * x)}
}

func (op *RecipOp) String() string {
	return "(1/" + op.args[0].String() + ")"
}
