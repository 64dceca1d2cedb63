package ai

import (
	"strconv"
	"strings"
)

// CleanJSON strips markdown code fences the model wraps around JSON replies.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// ParseUnitScore extracts a number in [0,1] from a model reply. Models asked
// for "a score from 0 to 1" answer in many shapes ("0.8", "Score: 0.8",
// "0.8\n"); anything unparsable or out of range returns ok=false so the
// caller falls back to its deterministic formula.
func ParseUnitScore(reply string) (float64, bool) {
	fields := strings.FieldsFunc(CleanJSON(reply), func(r rune) bool {
		return r != '.' && r != '-' && (r < '0' || r > '9')
	})

	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		if v >= 0 && v <= 1 {
			return v, true
		}
	}
	return 0, false
}
