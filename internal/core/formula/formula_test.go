package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		vars       map[string]float64
		want       float64
	}{
		{
			name:       "multiplication stand-in letter",
			expression: "a x b + 1",
			vars:       map[string]float64{"a": 2, "b": 3},
			want:       7,
		},
		{
			name:       "uppercase stand-in",
			expression: "a X b",
			vars:       map[string]float64{"a": 4, "b": 5},
			want:       20,
		},
		{
			name:       "precedence",
			expression: "a + b * c",
			vars:       map[string]float64{"a": 1, "b": 2, "c": 3},
			want:       7,
		},
		{
			name:       "parentheses",
			expression: "(a + b) * c",
			vars:       map[string]float64{"a": 1, "b": 2, "c": 3},
			want:       9,
		},
		{
			name:       "division",
			expression: "a / b",
			vars:       map[string]float64{"a": 9, "b": 2},
			want:       4.5,
		},
		{
			name:       "unary minus",
			expression: "-a + 10",
			vars:       map[string]float64{"a": 4},
			want:       6,
		},
		{
			name:       "numeric literals only",
			expression: "2 * (3 + 4) - 1",
			vars:       nil,
			want:       13,
		},
		{
			name:       "thai variable names",
			expression: "กว้าง * ยาว",
			vars:       map[string]float64{"กว้าง": 3, "ยาว": 4},
			want:       12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expression, tt.vars)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		vars       map[string]float64
	}{
		{name: "unbound name", expression: "a + b", vars: map[string]float64{"a": 1}},
		{name: "trailing operator", expression: "a +", vars: map[string]float64{"a": 1}},
		{name: "unbalanced paren", expression: "(a + 1", vars: map[string]float64{"a": 1}},
		{name: "division by zero", expression: "a / 0", vars: map[string]float64{"a": 1}},
		{name: "empty expression", expression: "", vars: nil},
		{name: "stray character", expression: "a @ 2", vars: map[string]float64{"a": 1}},
		{name: "malformed number", expression: "1.2.3 + 1", vars: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expression, tt.vars)
			assert.Error(t, err)
		})
	}
}

func TestParseVariables(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseVariables("a, b ,c"))
	assert.Equal(t, []string{"P", "V"}, ParseVariables("P,,V,"))
	assert.Empty(t, ParseVariables("  "))
}
