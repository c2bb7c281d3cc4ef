package shape

import "strconv"

// FormatNumber renders v as the shortest decimal that round-trips, so 50 prints as
// "50" and 3.14159*9 as "28.27431".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
