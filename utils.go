package numo

import "strconv"

// formatNumber renders an evaluation result the way results are returned to
// callers: the shortest representation that round-trips the float64.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
