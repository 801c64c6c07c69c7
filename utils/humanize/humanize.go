package humanize

import "fmt"

const (
	kb = 1_000
	mb = 1_000_000
	gb = 1_000_000_000
)

// Size renders a byte count using decimal units with two decimal places.
// Values at or above a tier boundary report in the higher unit; anything
// below 1 KB is printed as a raw byte count.
func Size(n int64) string {
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/gb)
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
