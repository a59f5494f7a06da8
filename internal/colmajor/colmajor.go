package colmajor

import "gonum.org/v1/gonum/mat"

// Flatten returns the pixels of a height x width row-major grid in
// column-major order: every row of column 0, then column 1, and so on.
// It is the transpose of the grid read back row by row.
func Flatten(pix []uint8, width, height int) []uint8 {
	if width*height == 0 {
		return []uint8{}
	}
	grid := mat.NewDense(height, width, toFloats(pix))
	var t mat.Dense
	t.CloneFrom(grid.T())
	return toBytes(t.RawMatrix().Data)
}

// Unflatten is the inverse of Flatten. The column-major sequence is
// reshaped into width rows of height values and transposed back into a
// height x width row-major grid.
func Unflatten(seq []uint8, width, height int) []uint8 {
	if width*height == 0 {
		return []uint8{}
	}
	grid := mat.NewDense(width, height, toFloats(seq))
	var t mat.Dense
	t.CloneFrom(grid.T())
	return toBytes(t.RawMatrix().Data)
}

func toFloats(src []uint8) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

func toBytes(src []float64) []uint8 {
	out := make([]uint8, len(src))
	for i, v := range src {
		out[i] = uint8(v)
	}
	return out
}
