package Ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 10.57, Round2(10.565))
	assert.Equal(t, 170.0, Round2(169.9999999999))
	assert.Equal(t, -2.35, Round2(-2.345))
	assert.Equal(t, 0.0, Round2(0))
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		name  string
		raw   interface{}
		want  float64
		fails bool
	}{
		{name: "float", raw: 12.5, want: 12.5},
		{name: "int", raw: 7, want: 7},
		{name: "string", raw: "3.25", want: 3.25},
		{name: "padded string", raw: "  42 ", want: 42},
		{name: "nil is zero", raw: nil, want: 0},
		{name: "empty string is zero", raw: "", want: 0},
		{name: "blank string is zero", raw: "   ", want: 0},
		{name: "garbage string", raw: "abc", fails: true},
		{name: "bool", raw: true, fails: true},
		{name: "slice", raw: []interface{}{1}, fails: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseNumber(tc.raw, "amount")
			if tc.fails {
				require.Error(t, err)
				assert.Equal(t, 400, StatusOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNullableNumber(t *testing.T) {
	got, err := ParseNullableNumber(nil, "amount")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseNullableNumber("", "amount")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseNullableNumber("150", "amount")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 150.0, *got)

	got, err = ParseNullableNumber(0.0, "amount")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)

	_, err = ParseNullableNumber("x", "amount")
	require.Error(t, err)
}
