package farm

import (
	"strconv"
	"strings"
)

// Form fields arrive as free-form text. Anything that does not parse, the
// empty string included, coerces to zero so numeric record fields are never
// absent in storage.

func coerceInt(value string) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return v
}

func coerceFloat(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return v
}
