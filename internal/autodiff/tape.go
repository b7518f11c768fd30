package autodiff

// Tape records, in topological order, every Var reachable from an output and
// runs the graph traversals iteratively instead of recursively.
//
// Var.Evaluate, Var.ZeroGrad and Var.Backward recurse once per path, so their
// stack depth grows with the depth of the expression and shared
// sub-expressions are visited once per path. A Tape visits each Var exactly
// once, which keeps deep or heavily shared graphs cheap. Results are the same
// as the recursive traversals.
//
// The tape does not copy the graph: it holds the same Vars, so values and
// gradients written through it are visible to every holder of those Vars. A
// tape must be rebuilt if new operations are composed on top of its output.
//
// Usage:
//
//	tape := autodiff.NewTape(loss)
//	for step := range steps {
//	    x.Set(next(step))
//	    tape.Evaluate()
//	    tape.ZeroGrad()
//	    tape.Backward(1)
//	}
type Tape struct {
	output *Var
	nodes  []*Var // arguments always precede the Vars computed from them
}

// NewTape records the graph below output.
func NewTape(output *Var) *Tape {
	return &Tape{
		output: output,
		nodes:  topoSort(output),
	}
}

// topoSort returns the Vars reachable from output in post-order: every Var
// appears after all of its arguments and output is last. It uses an explicit
// stack so that deep expressions cannot exhaust the goroutine stack.
func topoSort(output *Var) []*Var {
	type frame struct {
		v        *Var
		expanded bool
	}
	order := make([]*Var, 0, 16)
	visited := make(map[*Var]bool)
	stack := []frame{{v: output}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.expanded {
			order = append(order, top.v)
			continue
		}
		if visited[top.v] {
			continue
		}
		visited[top.v] = true
		stack = append(stack, frame{v: top.v, expanded: true})
		if top.v.creator == nil {
			continue
		}
		checkOp(top.v.creator)
		args := top.v.creator.Args()
		// Push in reverse so that arguments are emitted in order.
		for i := len(args) - 1; i >= 0; i-- {
			if !visited[args[i]] {
				stack = append(stack, frame{v: args[i]})
			}
		}
	}
	return order
}

// Output returns the Var the tape was recorded from.
func (t *Tape) Output() *Var {
	return t.output
}

// Vars returns all recorded Vars, arguments before consumers.
func (t *Tape) Vars() []*Var {
	vars := make([]*Var, len(t.nodes))
	copy(vars, t.nodes)
	return vars
}

// Leaves returns the recorded Vars that have no creator, in recording order.
func (t *Tape) Leaves() []*Var {
	var leaves []*Var
	for _, v := range t.nodes {
		if v.creator == nil {
			leaves = append(leaves, v)
		}
	}
	return leaves
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	n := 0
	for _, v := range t.nodes {
		if v.creator != nil {
			n++
		}
	}
	return n
}

// Evaluate recomputes every derived Var once, arguments first, and returns
// the refreshed value of the output.
func (t *Tape) Evaluate() float64 {
	for _, v := range t.nodes {
		if v.creator != nil {
			v.val = v.creator.Compute()
		}
	}
	return t.output.val
}

// ZeroGrad sets the gradient of every recorded Var to zero.
func (t *Tape) ZeroGrad() {
	for _, v := range t.nodes {
		v.grad = 0
		v.hasGrad = true
	}
}

// Backward propagates seed from the output to every recorded Var.
//
// Algorithm:
//  1. Seed the output's adjoint.
//  2. Walk Vars in reverse topological order, so that a Var is reached only
//     once all of its consumers have contributed to its adjoint.
//  3. Add the adjoint into the Var's gradient and push adjoint*partial into
//     each argument.
//
// Gradients accumulate on top of their current values, exactly like
// Var.Backward.
func (t *Tape) Backward(seed float64) {
	adjoints := make(map[*Var]float64, len(t.nodes))
	adjoints[t.output] = seed
	for i := len(t.nodes) - 1; i >= 0; i-- {
		v := t.nodes[i]
		adjoint := adjoints[v]
		v.grad += adjoint
		v.hasGrad = true
		if v.creator == nil {
			continue
		}
		args, partials := localGradients(v.creator)
		for j, arg := range args {
			adjoints[arg] += adjoint * partials[j]
		}
	}
}
