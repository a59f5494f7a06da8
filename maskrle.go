// Package maskrle converts binary masks to and from run-length encoded
// strings.
//
// A mask is flattened in column-major order (every row of column 0, then
// column 1, ...) and each maximal run of foreground pixels is written as
// a 1-indexed "start length" pair:
//
//	0 1
//	0 0   ->  "3 1"
//
// This is the layout used by segmentation datasets that publish masks as
// RLE text, so strings produced elsewhere decode without conversion.
package maskrle

import (
	"errors"

	"github.com/yyyoichi/maskrle/internal/colmajor"
	"github.com/yyyoichi/maskrle/internal/runs"
)

var (
	ErrInvalidShape = errors.New("invalid mask shape")
	ErrInvalidValue = errors.New("mask value must be 0 or 1")
	ErrMalformedRLE = runs.ErrMalformed
	ErrOutOfBounds  = runs.ErrOutOfBounds
)

// Default decode shape, (width, height) of the Severstal steel defect
// images. Use WithShape for anything else.
const (
	DefaultWidth  = 1600
	DefaultHeight = 256
)

// Encode returns the run-length encoding of m.
func Encode(m *Mask) string {
	return runs.Format(EncodeRuns(m))
}

// EncodeRows builds a mask from rows x cols values and encodes it.
func EncodeRows(rows [][]uint8) (string, error) {
	m, err := FromRows(rows)
	if err != nil {
		return "", err
	}
	return Encode(m), nil
}

// EncodeRuns returns the foreground runs of m in column-major order.
func EncodeRuns(m *Mask) []Run {
	return runs.Scan(colmajor.Flatten(m.pix, m.width, m.height))
}

// Decode parses rle into a mask. Without options the mask is
// DefaultWidth x DefaultHeight.
// This is a convenience function that creates a Codec and calls its Decode method.
func Decode(rle string, opts ...Option) (*Mask, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Decode(rle)
}

// DecodeRuns paints runs into a new width x height mask.
func DecodeRuns(rs []Run, width, height int) (*Mask, error) {
	if err := checkShape(width, height); err != nil {
		return nil, err
	}
	buf := make([]uint8, width*height)
	if err := runs.Paint(rs, buf); err != nil {
		return nil, err
	}
	return &Mask{
		width:  width,
		height: height,
		pix:    colmajor.Unflatten(buf, width, height),
	}, nil
}

// ParseRuns splits rle into start/length pairs without placing them in
// a mask.
func ParseRuns(rle string) ([]Run, error) {
	return runs.Parse(rle)
}

// FormatRuns joins runs into an RLE string.
func FormatRuns(rs []Run) string {
	return runs.Format(rs)
}

type Codec struct {
	width, height int
}

// New initializes a codec.
// The decode shape can be optionally specified, see WithShape.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Shape returns the (width, height) masks are decoded into.
func (c *Codec) Shape() (width, height int) {
	return c.width, c.height
}

// Encode returns the run-length encoding of m. The shape of m is used
// as is; the codec shape only applies to decoding.
func (c *Codec) Encode(m *Mask) string {
	return Encode(m)
}

// Decode reconstructs a mask of the codec shape from rle.
//
// Process:
//  1. Splits rle on whitespace into start/length pairs.
//  2. Paints each run into a zeroed column-major buffer.
//  3. Reshapes the buffer to (width, height) and transposes it.
//
// Returns ErrMalformedRLE for an odd number of values or a token that is
// not a non-negative integer, and ErrOutOfBounds for a run outside the
// mask. No mask is returned on error.
func (c *Codec) Decode(rle string) (*Mask, error) {
	rs, err := runs.Parse(rle)
	if err != nil {
		return nil, err
	}
	return DecodeRuns(rs, c.width, c.height)
}

func (c *Codec) init(opts ...Option) error {
	c.width, c.height = DefaultWidth, DefaultHeight
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
