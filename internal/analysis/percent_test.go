package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatChange(t *testing.T) {
	cases := []struct {
		name    string
		value   float64
		defined bool
		want    string
	}{
		{"positive", 5.0, true, "+5.00%"},
		{"negative", -3.333, true, "-3.33%"},
		{"rounds", 12.3456, true, "+12.35%"},
		{"undefined", 0, false, "NaN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatChange(decimal.NewFromFloat(tc.value), tc.defined)
			if got != tc.want {
				t.Errorf("FormatChange(%v, %v) = %q, want %q", tc.value, tc.defined, got, tc.want)
			}
		})
	}
}

// A computed zero change renders identically to an undefined change. The
// upstream data publisher conflates "no change" with "no basis for
// comparison"; this behavior is preserved deliberately, and this test exists
// to flag the ambiguity if anyone changes it.
func TestFormatChange_ZeroConflation(t *testing.T) {
	computedZero := FormatChange(decimal.Zero, true)
	undefined := FormatChange(decimal.Zero, false)
	if computedZero != "NaN" || undefined != "NaN" {
		t.Errorf("zero = %q, undefined = %q; both must render as NaN", computedZero, undefined)
	}
}
