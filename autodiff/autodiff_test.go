package autodiff_test

import (
	"testing"

	"github.com/born-ml/scalarad/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreator_TypeAssertion(t *testing.T) {
	x := autodiff.Named("x", 2)
	y := x.Pow(3)

	pow, ok := y.Creator().(*autodiff.PowOp)
	require.True(t, ok)
	assert.Equal(t, 3.0, pow.Exponent())
	assert.Same(t, x, pow.Args()[0])

	_, ok = x.Add(x).Creator().(*autodiff.AddOp)
	assert.True(t, ok)
	_, ok = x.Div(x).Creator().(*autodiff.DivOp)
	assert.True(t, ok)
	_, ok = x.Sqrt().Creator().(*autodiff.SqrtOp)
	assert.True(t, ok)
}

func TestForward_WithExportedConstructors(t *testing.T) {
	a, b := autodiff.New(9), autodiff.New(3)
	tests := []struct {
		op   autodiff.Operation
		want float64
	}{
		{autodiff.NewIdentityOp(a), 9},
		{autodiff.NewAddOp(a, b), 12},
		{autodiff.NewSubOp(a, b), 6},
		{autodiff.NewMulOp(a, b), 27},
		{autodiff.NewDivOp(a, b), 3},
		{autodiff.NewPowOp(b, 2), 9},
		{autodiff.NewRecipOp(b), 1.0 / 3},
		{autodiff.NewLogOp(autodiff.New(1)), 0},
		{autodiff.NewSinOp(autodiff.New(0)), 0},
		{autodiff.NewTanOp(autodiff.New(0)), 0},
		{autodiff.NewSqrtOp(a), 3},
	}
	for _, tt := range tests {
		y := autodiff.Forward(tt.op)
		assert.InDelta(t, tt.want, y.Val(), 1e-12, "%s", y)
		assert.Equal(t, tt.op, y.Creator())
	}
}
