package board

// Bias selects the edge of a row that compaction and merge priority favor.
type Bias int

const (
	BiasLeft  Bias = iota // toward index 0
	BiasRight             // toward the last index
)

// String returns a human-readable name for the bias.
func (b Bias) String() string {
	switch b {
	case BiasLeft:
		return "left"
	case BiasRight:
		return "right"
	default:
		return "unknown"
	}
}

// Compact slides all non-zero tiles toward the bias edge, keeping their
// relative order and filling the vacated cells with zero.
// Returns true if any cell changed.
func Compact(row []int, bias Bias) bool {
	n := len(row)
	packed := make([]int, 0, n)
	for _, v := range row {
		if v != 0 {
			packed = append(packed, v)
		}
	}

	// First index that receives a packed value
	offset := 0
	if bias == BiasRight {
		offset = n - len(packed)
	}

	changed := false
	for i := range n {
		v := 0
		if j := i - offset; j >= 0 && j < len(packed) {
			v = packed[j]
		}
		if row[i] != v {
			row[i] = v
			changed = true
		}
	}
	return changed
}

// mergePairs combines adjacent equal tiles, scanning from the bias edge
// inward. The doubled tile stays on the cell nearer the bias edge and its
// partner is zeroed. The scan skips past a consumed pair, so no tile
// merges twice in one pass.
// Returns the number of merges performed.
func mergePairs(row []int, bias Bias) int {
	merges := 0

	if bias == BiasRight {
		for i := len(row) - 1; i > 0; i-- {
			if row[i] != 0 && row[i] == row[i-1] {
				row[i] *= 2
				row[i-1] = 0
				merges++
				i--
			}
		}
		return merges
	}

	for i := 0; i < len(row)-1; i++ {
		if row[i] != 0 && row[i] == row[i+1] {
			row[i] *= 2
			row[i+1] = 0
			merges++
			i++
		}
	}
	return merges
}

// slideRow runs one full move step on a row in place: compact, merge,
// compact again. Returns whether the row changed and how many merges happened.
func slideRow(row []int, bias Bias) (changed bool, merges int) {
	compacted := Compact(row, bias)
	merges = mergePairs(row, bias)
	Compact(row, bias)
	return compacted || merges > 0, merges
}

// MergeRow applies a complete 2048 move step to a single row in place.
// Returns true if any cell value differs from the row at entry.
func MergeRow(row []int, bias Bias) bool {
	changed, _ := slideRow(row, bias)
	return changed
}
