// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Expressions are built from Vars with ordinary-looking method calls. Each
// call runs its forward computation immediately and records how the result
// was obtained, so that the result can later be re-evaluated after its
// inputs change and differentiated with respect to every input.
//
// Example:
//
//	import "github.com/born-ml/scalarad/autodiff"
//
//	func main() {
//	    x := autodiff.Named("x", 3)
//	    f := x.Add(autodiff.New(2)).Mul(x.Sub(autodiff.New(1)))
//	    fmt.Println(f, "=", f.Val()) // (x+2)*(x-1) = 10
//
//	    f.ZeroGrad()
//	    f.Backward(1)
//	    fmt.Println(x.Grad()) // df/dx = 2x+1 = 7
//
//	    x.Set(4)
//	    f.Evaluate() // 18
//	}
package autodiff

import (
	"github.com/born-ml/scalarad/internal/autodiff"
)

// Var is a scalar node of the computation graph.
type Var = autodiff.Var

// Operation is a differentiable scalar function recorded in the graph.
type Operation = autodiff.Operation

// Tape runs evaluation and backpropagation iteratively, visiting each node
// once. Prefer it for deep expressions or graphs with much sharing.
type Tape = autodiff.Tape

// Operations
//
// The concrete operations can be recognized on a Var's Creator:
//
//	if pow, ok := v.Creator().(*autodiff.PowOp); ok {
//	    fmt.Println(pow.Exponent())
//	}

type (
	// IdentityOp passes its argument through: y = x.
	IdentityOp = autodiff.IdentityOp
	// AddOp represents y = a + b.
	AddOp = autodiff.AddOp
	// SubOp represents y = a - b.
	SubOp = autodiff.SubOp
	// MulOp represents y = a * b.
	MulOp = autodiff.MulOp
	// DivOp represents y = a / b.
	DivOp = autodiff.DivOp
	// PowOp represents y = x^p for a constant exponent p.
	PowOp = autodiff.PowOp
	// RecipOp represents y = 1/x.
	RecipOp = autodiff.RecipOp
	// LogOp represents y = ln(x).
	LogOp = autodiff.LogOp
	// SinOp represents y = sin(x).
	SinOp = autodiff.SinOp
	// TanOp represents y = tan(x).
	TanOp = autodiff.TanOp
	// SqrtOp represents y = sqrt(x).
	SqrtOp = autodiff.SqrtOp
)

// NewIdentityOp creates a new IdentityOp.
func NewIdentityOp(x *Var) *IdentityOp { return autodiff.NewIdentityOp(x) }

// NewAddOp creates a new AddOp.
func NewAddOp(a, b *Var) *AddOp { return autodiff.NewAddOp(a, b) }

// NewSubOp creates a new SubOp.
func NewSubOp(a, b *Var) *SubOp { return autodiff.NewSubOp(a, b) }

// NewMulOp creates a new MulOp.
func NewMulOp(a, b *Var) *MulOp { return autodiff.NewMulOp(a, b) }

// NewDivOp creates a new DivOp.
func NewDivOp(a, b *Var) *DivOp { return autodiff.NewDivOp(a, b) }

// NewPowOp creates a new PowOp computing x^p.
func NewPowOp(x *Var, p float64) *PowOp { return autodiff.NewPowOp(x, p) }

// NewRecipOp creates a new RecipOp.
func NewRecipOp(x *Var) *RecipOp { return autodiff.NewRecipOp(x) }

// NewLogOp creates a new LogOp.
func NewLogOp(x *Var) *LogOp { return autodiff.NewLogOp(x) }

// NewSinOp creates a new SinOp.
func NewSinOp(x *Var) *SinOp { return autodiff.NewSinOp(x) }

// NewTanOp creates a new TanOp.
func NewTanOp(x *Var) *TanOp { return autodiff.NewTanOp(x) }

// NewSqrtOp creates a new SqrtOp.
func NewSqrtOp(x *Var) *SqrtOp { return autodiff.NewSqrtOp(x) }

// New creates a leaf Var holding val.
func New(val float64) *Var {
	return autodiff.New(val)
}

// Named creates a leaf Var holding val that renders as name.
//
// Example:
//
//	x := autodiff.Named("x", 3)
//	x.Sin().String() // "sin(x)"
func Named(name string, val float64) *Var {
	return autodiff.Named(name, val)
}

// NewTape records the graph below output.
func NewTape(output *Var) *Tape {
	return autodiff.NewTape(output)
}

// Forward runs op on the current values of its arguments and returns the
// resulting Var. It is the building block for operations defined outside
// this package.
func Forward(op Operation) *Var {
	return autodiff.Forward(op)
}

// Identity returns a new Var equal to a.
func Identity(a *Var) *Var { return autodiff.Identity(a) }

// Add returns a + b.
func Add(a, b *Var) *Var { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Var) *Var { return autodiff.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Var) *Var { return autodiff.Mul(a, b) }

// Div returns a / b.
func Div(a, b *Var) *Var { return autodiff.Div(a, b) }

// Recip returns 1/a.
func Recip(a *Var) *Var { return autodiff.Recip(a) }

// Pow returns a^p. The exponent is a constant and receives no gradient.
func Pow(a *Var, p float64) *Var { return autodiff.Pow(a, p) }

// Square returns a^2.
func Square(a *Var) *Var { return autodiff.Square(a) }

// Log returns ln(a).
func Log(a *Var) *Var { return autodiff.Log(a) }

// Sin returns sin(a).
func Sin(a *Var) *Var { return autodiff.Sin(a) }

// Tan returns tan(a).
func Tan(a *Var) *Var { return autodiff.Tan(a) }

// Sqrt returns sqrt(a).
func Sqrt(a *Var) *Var { return autodiff.Sqrt(a) }
