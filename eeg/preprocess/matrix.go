package preprocess

// Clone returns a deep copy of a channels-by-samples matrix.
func Clone(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// Transpose returns the transpose of m. Rows are assumed rectangular;
// an empty matrix transposes to an empty matrix.
func Transpose(m [][]float64) [][]float64 {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil
	}

	out := make([][]float64, len(m[0]))
	for j := range out {
		out[j] = make([]float64, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// orientChannelsFirst applies the defensive shape correction shared by the
// filter stages: channel counts are assumed always smaller than sample
// counts, so a matrix with more rows than columns is treated as mis-shaped
// samples-by-channels input and transposed. This is a heuristic safety net,
// not orientation detection.
func orientChannelsFirst(m [][]float64) [][]float64 {
	if len(m) > 0 && len(m) > len(m[0]) {
		return Transpose(m)
	}

	return m
}

// elementCount returns the total number of samples held by the matrix.
func elementCount(m [][]float64) int {
	n := 0
	for _, row := range m {
		n += len(row)
	}

	return n
}
