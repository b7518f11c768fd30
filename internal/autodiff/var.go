package autodiff

import "strconv"

// Var is a scalar node in the computation graph.
//
// A Var stores a value, an accumulated gradient and an optional reference to
// the Operation that produced it (its creator). Leaves are created by the
// caller with New or Named and have no creator. Derived Vars are returned by
// the factories (Add, Mul, Sin, ...) and keep a reference to their creator,
// which in turn references its argument Vars. The graph is acyclic by
// construction: an Operation can only reference Vars that already exist.
//
// The stored value of a derived Var is only refreshed by Evaluate. Mutating a
// leaf with Set leaves every Var built from it stale until Evaluate is called
// on them.
//
// Example:
//
//	x := autodiff.Named("x", 3)
//	f := x.Add(autodiff.New(2)).Mul(x.Sub(autodiff.New(1)))
//	f.Val()      // 10
//	f.ZeroGrad()
//	f.Backward(1)
//	x.Grad()     // 7
//	f.String()   // (x+2)*(x-1)
type Var struct {
	val     float64
	grad    float64
	hasGrad bool      // false until ZeroGrad or Backward touches grad
	name    string    // optional, used when rendering leaves
	creator Operation // nil for leaves
}

// New creates a leaf Var holding val.
func New(val float64) *Var {
	return &Var{val: val}
}

// Named creates a leaf Var holding val that renders as name.
func Named(name string, val float64) *Var {
	return &Var{val: val, name: name}
}

// Val returns the stored value without recomputing it.
func (v *Var) Val() float64 {
	return v.val
}

// Set overwrites the stored value in place.
//
// Set is meant for leaves. Calling it on a derived Var does not detach it from
// its creator: the next Evaluate overwrites the value again.
func (v *Var) Set(val float64) {
	v.val = val
}

// Name returns the name given to a leaf by Named, or "".
func (v *Var) Name() string {
	return v.name
}

// Grad returns the accumulated gradient. It reads 0 until the gradient has
// been reset or accumulated into, see HasGrad.
func (v *Var) Grad() float64 {
	return v.grad
}

// HasGrad reports whether the gradient has been initialized by ZeroGrad or
// Backward since the Var was created.
func (v *Var) HasGrad() bool {
	return v.hasGrad
}

// Creator returns the Operation that produced v, or nil for a leaf.
func (v *Var) Creator() Operation {
	return v.creator
}

// IsLeaf returns true if v was created by the caller rather than by an
// Operation.
func (v *Var) IsLeaf() bool {
	return v.creator == nil
}

// Evaluate recomputes v from the current values of the leaves below it and
// returns the new value. For a leaf it returns the stored value unchanged.
//
// No edges are added or removed: only the stored scalars of v and of the
// derived Vars below it are overwritten, so references held by the caller
// stay valid.
func (v *Var) Evaluate() float64 {
	if v.creator != nil {
		v.val = Reevaluate(v.creator)
	}
	return v.val
}

// ZeroGrad sets the gradient of v and of every Var below it to zero.
// Shared nodes reached through several paths are simply zeroed again.
func (v *Var) ZeroGrad() {
	v.grad = 0
	v.hasGrad = true
	if v.creator != nil {
		ZeroGradOp(v.creator)
	}
}

// Backward adds seed to the gradient of v and propagates it to every Var
// below v using the chain rule. Contributions reaching a node through
// several paths are summed.
//
// The local derivatives are computed from the values currently stored in the
// graph, so they must match the inputs that produced v: call Evaluate after
// changing a leaf and before Backward. Gradients keep accumulating across
// calls until ZeroGrad is called.
func (v *Var) Backward(seed float64) {
	v.grad += seed
	v.hasGrad = true
	if v.creator != nil {
		BackwardOp(v.creator, seed)
	}
}

// String renders the whole expression that defines v. Leaves render as
// their name, or as their value if unnamed.
func (v *Var) String() string {
	if v.creator != nil {
		return v.creator.String()
	}
	if v.name != "" {
		return v.name
	}
	return formatScalar(v.val)
}

// formatScalar renders a float in the shortest form that round-trips.
func formatScalar(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
