/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdims

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		str     string
		symbols []string
		b       Bindings
		want    int
	}{
		{"number", "3", "3", nil, nil, 3},
		{"symbol", "nP", "nP", []string{"nP"}, Bindings{"nP": 5}, 5},
		{"product", "n_slits * 2", "n_slits*2", []string{"n_slits"}, Bindings{"n_slits": 4}, 8},
		{"priority", "1 + n*2", "1+n*2", []string{"n"}, Bindings{"n": 3}, 7},
		{"brackets", "(nx+1)*ny", "(nx+1)*ny", []string{"nx", "ny"}, Bindings{"nx": 2, "ny": 3}, 9},
		{"left associative", "n-2-1", "n-2-1", []string{"n"}, Bindings{"n": 10}, 7},
		{"right brackets", "n-(2-1)", "n-(2-1)", []string{"n"}, Bindings{"n": 10}, 9},
		{"division", "n/2", "n/2", []string{"n"}, Bindings{"n": 8}, 4},
		{"repeated symbols", "n*n+m", "n*n+m", []string{"n", "m"}, Bindings{"n": 2, "m": 1}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			e, err := Parse(tt.expr)
			require.NoError(err)
			require.Equal(tt.str, e.String())
			require.Equal(tt.symbols, e.Symbols())
			v, err := e.Eval(tt.b)
			require.NoError(err)
			require.Equal(tt.want, v)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "n +", "2n m", "(n", "n ** 2", "n^2", "-n"} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			require.ErrorIs(t, err, ErrSyntax)
		})
	}
	require.Panics(t, func() { MustParse("(") })
}

func TestParseCache(t *testing.T) {
	require := require.New(t)

	e1 := MustParse("cached_dim*3")
	e2 := MustParse("  cached_dim*3 ")
	require.Same(e1, e2)
}

func TestEvalErrors(t *testing.T) {
	require := require.New(t)

	_, err := MustParse("n+m").Eval(Bindings{"n": 1})
	require.ErrorIs(err, ErrUnbound)
	require.ErrorContains(err, "m")

	_, err = MustParse("n/m").Eval(Bindings{"n": 1, "m": 0})
	require.ErrorIs(err, ErrDivisionByZero)
}

func TestSymbol(t *testing.T) {
	require := require.New(t)

	s, ok := MustParse("nP").Symbol()
	require.True(ok)
	require.Equal("nP", s)

	_, ok = MustParse("nP+1").Symbol()
	require.False(ok)

	_, ok = MustParse("3").Symbol()
	require.False(ok)
}

func TestBindings(t *testing.T) {
	require := require.New(t)

	t.Run("bind bare symbols", func(t *testing.T) {
		b := Bindings{}
		require.NoError(b.Bind([]string{"nP", "3", "2*m"}, []int{10, 3, 4}))
		require.Equal(Bindings{"nP": 10}, b)
	})

	t.Run("conflicting binding", func(t *testing.T) {
		b := Bindings{"nP": 10}
		err := b.Bind([]string{"nP"}, []int{11})
		require.ErrorIs(err, ErrDimMismatch)
	})

	t.Run("failed bind should not change bindings", func(t *testing.T) {
		b := Bindings{"n": 3}
		require.ErrorIs(b.Bind([]string{"m", "n"}, []int{4, 5}), ErrDimMismatch)
		require.Equal(Bindings{"n": 3}, b)

		require.ErrorIs(b.Bind([]string{"k", "k"}, []int{1, 2}), ErrDimMismatch)
		require.Equal(Bindings{"n": 3}, b)

		require.ErrorIs(b.Bind([]string{"m", "(("}, []int{4, 5}), ErrSyntax)
		require.Equal(Bindings{"n": 3}, b)
	})

	t.Run("clone", func(t *testing.T) {
		b := Bindings{"n": 3}
		c := b.Clone()
		c["m"] = 4
		require.Equal(Bindings{"n": 3}, b)
	})

	t.Run("rank mismatch", func(t *testing.T) {
		err := Bindings{}.Bind([]string{"nP", "m"}, []int{11})
		require.ErrorIs(err, ErrDimMismatch)
	})

	t.Run("scalar is shape of ones", func(t *testing.T) {
		b := Bindings{}
		require.NoError(b.Check([]string{"i"}, nil))
		require.Equal(Bindings{"i": 1}, b)
	})

	t.Run("check", func(t *testing.T) {
		b := Bindings{"n_slits": 2}
		require.NoError(b.Check([]string{"nP", "n_slits*2"}, []int{7, 4}))
		require.Equal(7, b["nP"])

		err := b.Check([]string{"nP", "n_slits*2"}, []int{7, 5})
		require.ErrorIs(err, ErrDimMismatch)
		require.ErrorContains(err, "must be 4, but is 5")

		err = Bindings{}.Check([]string{"k*2"}, []int{4})
		require.ErrorIs(err, ErrUnbound)

		err = Bindings{}.Check([]string{"(("}, []int{4})
		require.ErrorIs(err, ErrSyntax)
	})

	t.Run("clone", func(t *testing.T) {
		b := Bindings{"n": 1}
		c := b.Clone()
		c["n"] = 2
		require.Equal(1, b["n"])
	})
}
