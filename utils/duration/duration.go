package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// ToISO8601 converts a colon-separated clock duration ("H:M:S", "M:S" or a
// bare seconds count) into an ISO-8601 duration string.
//
// The hours token is emitted only when nonzero; minutes and seconds are
// always emitted for the two- and three-part forms. Anything unparseable
// collapses to "PT0S" — the function never fails.
func ToISO8601(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "PT0S"
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return "PT0S"
		}
		if h != 0 {
			return fmt.Sprintf("PT%dH%dM%dS", h, m, sec)
		}
		return fmt.Sprintf("PT%dM%dS", m, sec)
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return "PT0S"
		}
		return fmt.Sprintf("PT%dM%dS", m, sec)
	case 1:
		sec, err := strconv.Atoi(parts[0])
		if err != nil || sec < 0 {
			return "PT0S"
		}
		return fmt.Sprintf("PT%dS", sec)
	default:
		return "PT0S"
	}
}

// FromSeconds renders a plain seconds count as an ISO-8601 duration.
// Negative input is treated as zero.
func FromSeconds(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("PT%dS", seconds)
}
