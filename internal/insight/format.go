package insight

import (
	"math"
	"strconv"
)

// rupees renders an amount rounded to whole rupees with comma-grouped
// thousands, e.g. 22000 -> "22,000".
func rupees(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var grouped []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digit)
	}
	if neg {
		return "-" + string(grouped)
	}
	return string(grouped)
}
