package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Quadratic(t *testing.T) {
	var out bytes.Buffer
	res, err := run(context.Background(), config{
		Objective: "quadratic",
		Optimizer: "sgd",
		X0:        -1.2,
		Y0:        1,
		LR:        0.1,
		Momentum:  0.5,
		Steps:     300,
	}, &out)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.X, 1e-6)
	assert.InDelta(t, -1.0, res.Y, 1e-6)
	assert.InDelta(t, 0.0, res.Loss, 1e-10)
	assert.Equal(t, "(((x-3))^2+((y+1))^2)", res.Expr)
	assert.Contains(t, out.String(), "f(x, y) = (((x-3))^2+((y+1))^2)")
}

func TestRun_Wave(t *testing.T) {
	res, err := run(context.Background(), config{
		Objective: "wave",
		Optimizer: "adam",
		X0:        0,
		Y0:        0.5,
		LR:        0.05,
		Steps:     2000,
	}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Loss, 1e-2)
}

func TestRun_InvalidConfig(t *testing.T) {
	ctx := context.Background()
	_, err := run(ctx, config{Objective: "nope", Optimizer: "sgd"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "unknown objective")

	_, err = run(ctx, config{Objective: "quadratic", Optimizer: "nope"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "unknown optimizer")

	_, err = run(ctx, config{Objective: "quadratic", Optimizer: "sgd", LR: -1}, &bytes.Buffer{})
	require.Error(t, err)
}
