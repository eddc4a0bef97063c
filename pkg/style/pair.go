package style

// Pair is a per-axis value such as a symbol size or a label distance.
type Pair [2]float64

// Broadcast returns a Pair with v on both axes.
func Broadcast(v float64) Pair { return Pair{v, v} }

// PairOf converts a scalar or a two-element list into a Pair. A scalar is
// broadcast to both axes; a one-element list is treated as a scalar.
func PairOf(v any) (Pair, bool) {
	if f, ok := toFloat(v); ok {
		return Broadcast(f), true
	}
	switch list := v.(type) {
	case Pair:
		return list, true
	case []float64:
		return pairFromFloats(list)
	case []any:
		fs := make([]float64, 0, len(list))
		for _, e := range list {
			f, ok := toFloat(e)
			if !ok {
				return Pair{}, false
			}
			fs = append(fs, f)
		}
		return pairFromFloats(fs)
	}
	return Pair{}, false
}

func pairFromFloats(fs []float64) (Pair, bool) {
	switch len(fs) {
	case 1:
		return Broadcast(fs[0]), true
	case 2:
		return Pair{fs[0], fs[1]}, true
	}
	return Pair{}, false
}
