package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a budget amount as a comma-grouped integer string,
// the display convention of the upstream fiscal data. Kept here so it can be
// reused by multiple formatters and unit tested in isolation.
func FormatAmount(v decimal.Decimal) string {
	s := v.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	if neg {
		return "-" + s
	}
	return s
}
