package style

import (
	"math"
	"strconv"
)

// displayPrecision is the number of decimals kept when a raw value is shown.
const displayPrecision = 10

// Round rounds v to the display precision, removing float noise such as
// 0.1+0.2 = 0.30000000000000004. Non-finite values are returned as is.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', displayPrecision, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// FormatNumber renders v rounded to the display precision.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', -1, 64)
}
