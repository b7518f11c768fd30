// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Architecture:
//   - Var: a scalar node holding a value, an accumulated gradient and a
//     reference to the Operation that created it (nil for leaves).
//   - Operation: one type per function (AddOp, SubOp, MulOp, DivOp, RecipOp,
//     PowOp, LogOp, SinOp, TanOp, SqrtOp, IdentityOp) providing the forward
//     formula and the local partial derivatives.
//   - Factories (Add, Mul, Sin, ... and the matching methods on *Var): build
//     an Operation, run it forward and return its output Var.
//   - Tape: iterative, visit-once versions of the recursive traversals.
//
// Protocol:
//
//	x := autodiff.New(3)
//	y := x.Square()  // forward runs immediately: y.Val() == 9
//	x.Set(4)
//	y.Evaluate()     // refreshes y in place: 16
//	y.ZeroGrad()
//	y.Backward(1)
//	x.Grad()         // 8
//
// Domain errors (division by zero, log or sqrt of a negative number) are not
// reported: they produce Inf or NaN, which propagate through forward and
// backward passes. Breaking the Operation contract panics.
package autodiff
