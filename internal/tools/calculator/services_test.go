package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		a, b float64
		op   string
		want float64
	}{
		{2, 3, "+", 5},
		{2, 3, "-", -1},
		{2, 3, "*", 6},
		{7, 2, "/", 3.5},
		{-4, 0.5, "*", -2},
	}
	for _, tc := range cases {
		got, err := Evaluate(tc.a, tc.b, tc.op)
		require.NoError(t, err, "op %q", tc.op)
		assert.Equal(t, tc.want, got, "op %q", tc.op)
	}
}

func TestEvaluateDivideByZero(t *testing.T) {
	_, err := Evaluate(1, 0, "/")
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestEvaluateUnknownOp(t *testing.T) {
	_, err := Evaluate(1, 2, "%")
	assert.ErrorIs(t, err, ErrUnknownOp)
}
