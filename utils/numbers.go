package utils

// Number reports whether v carries a numeric value and returns it as a
// float64. JSON bodies decode numbers as float64; documents read back from
// MongoDB may carry int32, int64 or float64 depending on how they were
// written.
func Number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// NumberOrZero treats absent and non-numeric values as 0.
func NumberOrZero(v interface{}) float64 {
	n, _ := Number(v)
	return n
}
