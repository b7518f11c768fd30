package autodiff

// DivOp represents division: y = a / b.
//
// Backward pass:
//   - dy/da = 1/b
//   - dy/db = -a/b²
//
// b == 0 yields ±Inf or NaN, which propagate like any other float.
type DivOp struct {
	binary
}

// NewDivOp creates a new DivOp with numerator a and denominator b.
func NewDivOp(a, b *Var) *DivOp {
	return &DivOp{binary{[2]*Var{a, b}}}
}

// Compute returns a / b.
func (op *DivOp) Compute() float64 {
	return op.a() / op.b()
}

// Partials returns [1/b, -a/b²].
func (op *DivOp) Partials() []float64 {
	a, b := op.a(), op.b()
	return []float64{1 / b, -a / (b * b)}
}

func (op *DivOp) String() string {
	return "(" + op.args[0].String() + "/" + op.args[1].String() + ")"
}
