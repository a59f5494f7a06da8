package maskrle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mask is a binary grid of height rows and width columns.
// Every pixel is 0 (background) or 1 (foreground).
type Mask struct {
	width, height int
	// row-major
	pix []uint8
}

// NewMask returns an all-background mask. It panics if width or height
// is negative or width*height does not fit in an int.
func NewMask(width, height int) *Mask {
	if err := checkShape(width, height); err != nil {
		panic("maskrle: " + err.Error())
	}
	return &Mask{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// checkShape rejects negative dimensions and areas that overflow int.
func checkShape(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidShape, width, height)
	}
	if width != 0 && height > math.MaxInt/width {
		return fmt.Errorf("%w: %dx%d overflows the pixel count", ErrInvalidShape, width, height)
	}
	return nil
}

// FromRows builds a mask from rows as stored, so rows[r][c] is the pixel
// at row r, column c. All rows must have the same length and hold only
// 0 or 1.
func FromRows(rows [][]uint8) (*Mask, error) {
	var width int
	if len(rows) > 0 {
		width = len(rows[0])
	}
	m := NewMask(width, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, r, len(row), width)
		}
		for c, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("%w: %d at row %d, column %d", ErrInvalidValue, v, r, c)
			}
			m.pix[r*width+c] = v
		}
	}
	return m, nil
}

// FromMatrix builds a mask from a gonum matrix whose elements are all
// exactly 0 or 1.
func FromMatrix(a mat.Matrix) (*Mask, error) {
	height, width := a.Dims()
	m := NewMask(width, height)
	for r := range height {
		for c := range width {
			switch v := a.At(r, c); v {
			case 0:
			case 1:
				m.pix[r*width+c] = 1
			default:
				return nil, fmt.Errorf("%w: %g at row %d, column %d", ErrInvalidValue, v, r, c)
			}
		}
	}
	return m, nil
}

func (m *Mask) Width() int { return m.width }

func (m *Mask) Height() int { return m.height }

// At returns the pixel at row r, column c.
func (m *Mask) At(r, c int) uint8 {
	m.check(r, c)
	return m.pix[r*m.width+c]
}

// Set marks the pixel at row r, column c as foreground or background.
func (m *Mask) Set(r, c int, on bool) {
	m.check(r, c)
	var v uint8
	if on {
		v = 1
	}
	m.pix[r*m.width+c] = v
}

func (m *Mask) check(r, c int) {
	if r < 0 || r >= m.height || c < 0 || c >= m.width {
		panic(fmt.Sprintf("maskrle: pixel (%d, %d) outside %dx%d mask", r, c, m.width, m.height))
	}
}

// Area returns the number of foreground pixels.
func (m *Mask) Area() int {
	var n int
	for _, v := range m.pix {
		n += int(v)
	}
	return n
}

// Rows returns a copy of the mask as rows x cols values.
func (m *Mask) Rows() [][]uint8 {
	rows := make([][]uint8, m.height)
	for r := range rows {
		rows[r] = make([]uint8, m.width)
		copy(rows[r], m.pix[r*m.width:(r+1)*m.width])
	}
	return rows
}

// Matrix returns the mask as a height x width matrix of 0 and 1.
// An empty mask gives an empty matrix.
func (m *Mask) Matrix() *mat.Dense {
	if len(m.pix) == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(m.pix))
	for i, v := range m.pix {
		data[i] = float64(v)
	}
	return mat.NewDense(m.height, m.width, data)
}

// Equal reports whether both masks have the same shape and pixels.
func (m *Mask) Equal(o *Mask) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}
