package autodiff

import "github.com/gomlx/exceptions"

// Operation is a differentiable scalar function in the computation graph.
//
// Each concrete operation (AddOp, MulOp, SinOp, ...) stores its argument Vars
// in order and provides the forward formula and the local partial
// derivatives, both computed from the values currently stored in the
// arguments. The graph traversals (Forward, Reevaluate, ZeroGradOp,
// BackwardOp and the Tape) are written once in terms of this interface.
//
// Operations hold no gradient of their own: all derivative state lives on the
// Vars. Constants of an operation (the exponent of PowOp) are plain fields,
// not Vars, and never receive a gradient.
type Operation interface {
	// Args returns the argument Vars, in order. The order selects which
	// partial derivative applies to which argument (numerator vs
	// denominator for DivOp).
	Args() []*Var

	// Compute evaluates the forward formula on the arguments' stored values.
	// It must not modify the arguments.
	Compute() float64

	// Partials returns the local partial derivative of the forward formula
	// with respect to each argument, evaluated on the arguments' stored
	// values. The result has one entry per argument.
	//
	// Example for MulOp(a, b): [b, a].
	Partials() []float64

	// String renders the operation with its arguments expanded.
	String() string
}

// Forward computes op on the current argument values and returns a new Var
// holding the result, with op as its creator.
func Forward(op Operation) *Var {
	checkOp(op)
	return &Var{val: op.Compute(), creator: op}
}

// Reevaluate refreshes every argument of op (recursively down to the leaves)
// and then recomputes op. It returns the scalar result; storing it is left to
// the Var that op created.
func Reevaluate(op Operation) float64 {
	checkOp(op)
	for _, arg := range op.Args() {
		arg.Evaluate()
	}
	return op.Compute()
}

// ZeroGradOp zeroes the gradients of every Var below op.
func ZeroGradOp(op Operation) {
	checkOp(op)
	for _, arg := range op.Args() {
		arg.ZeroGrad()
	}
}

// BackwardOp propagates seed, the derivative of the output with respect to
// op's result, into op's arguments.
//
// All local derivatives are computed before recursing, so the values seen by
// the formulas are the ones that produced op's result even when an argument
// is reachable from another argument.
func BackwardOp(op Operation, seed float64) {
	args, partials := localGradients(op)
	for i, arg := range args {
		arg.Backward(seed * partials[i])
	}
}

// localGradients returns the arguments of op together with their local
// partial derivatives, panicking if op breaks the Operation contract.
func localGradients(op Operation) ([]*Var, []float64) {
	checkOp(op)
	args := op.Args()
	partials := op.Partials()
	if len(partials) != len(args) {
		exceptions.Panicf("autodiff: %T returned %d partial derivatives for %d arguments",
			op, len(partials), len(args))
	}
	return args, partials
}

// checkOp panics if op is nil or has a missing argument.
func checkOp(op Operation) {
	if op == nil {
		exceptions.Panicf("autodiff: nil Operation")
	}
	for i, arg := range op.Args() {
		if arg == nil {
			exceptions.Panicf("autodiff: %T has nil argument #%d", op, i)
		}
	}
}

// unary and binary hold the arguments of the concrete operations.
type unary struct {
	args [1]*Var
}

func (op *unary) Args() []*Var { return op.args[:] }

func (op *unary) x() float64 { return op.args[0].val }

type binary struct {
	args [2]*Var
}

func (op *binary) Args() []*Var { return op.args[:] }

func (op *binary) a() float64 { return op.args[0].val }

func (op *binary) b() float64 { return op.args[1].val }
