package autodiff

// Each factory builds its Operation over the given Vars, runs the forward
// formula once and returns the resulting Var. The methods on *Var below are
// the same factories with the receiver as first argument, so that
//
//	y := x.Mul(x).Add(autodiff.New(1))
//
// reads like ordinary arithmetic.

// Identity returns a new Var equal to a.
func Identity(a *Var) *Var { return Forward(NewIdentityOp(a)) }

// Add returns a + b.
func Add(a, b *Var) *Var { return Forward(NewAddOp(a, b)) }

// Sub returns a - b.
func Sub(a, b *Var) *Var { return Forward(NewSubOp(a, b)) }

// Mul returns a * b.
func Mul(a, b *Var) *Var { return Forward(NewMulOp(a, b)) }

// Div returns a / b.
func Div(a, b *Var) *Var { return Forward(NewDivOp(a, b)) }

// Recip returns 1/a.
func Recip(a *Var) *Var { return Forward(NewRecipOp(a)) }

// Pow returns a^p. The exponent p is a constant and is not differentiated.
func Pow(a *Var, p float64) *Var { return Forward(NewPowOp(a, p)) }

// Square returns a^2.
func Square(a *Var) *Var { return Pow(a, 2) }

// Log returns ln(a).
func Log(a *Var) *Var { return Forward(NewLogOp(a)) }

// Sin returns sin(a).
func Sin(a *Var) *Var { return Forward(NewSinOp(a)) }

// Tan returns tan(a).
func Tan(a *Var) *Var { return Forward(NewTanOp(a)) }

// Sqrt returns sqrt(a).
func Sqrt(a *Var) *Var { return Forward(NewSqrtOp(a)) }

// Identity returns a new Var equal to v.
func (v *Var) Identity() *Var { return Identity(v) }

// Add returns v + other.
func (v *Var) Add(other *Var) *Var { return Add(v, other) }

// Sub returns v - other.
func (v *Var) Sub(other *Var) *Var { return Sub(v, other) }

// Mul returns v * other.
func (v *Var) Mul(other *Var) *Var { return Mul(v, other) }

// Div returns v / other.
func (v *Var) Div(other *Var) *Var { return Div(v, other) }

// Recip returns 1/v.
func (v *Var) Recip() *Var { return Recip(v) }

// Pow returns v^p for a constant exponent p.
func (v *Var) Pow(p float64) *Var { return Pow(v, p) }

// Square returns v^2.
func (v *Var) Square() *Var { return Square(v) }

// Log returns ln(v).
func (v *Var) Log() *Var { return Log(v) }

// Sin returns sin(v).
func (v *Var) Sin() *Var { return Sin(v) }

// Tan returns tan(v).
func (v *Var) Tan() *Var { return Tan(v) }

// Sqrt returns sqrt(v).
func (v *Var) Sqrt() *Var { return Sqrt(v) }
