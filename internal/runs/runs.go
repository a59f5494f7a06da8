package runs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yyyoichi/maskrle/internal/bitplane"
)

var (
	ErrMalformed   = errors.New("malformed run-length encoding")
	ErrOutOfBounds = errors.New("run lies outside the mask")
)

// Run is a maximal stretch of foreground pixels. Start is 1-indexed.
type Run struct {
	Start  int
	Length int
}

func (r Run) String() string {
	return strconv.Itoa(r.Start) + " " + strconv.Itoa(r.Length)
}

// Scan finds every maximal run of non-zero values in seq.
//
// The sequence is framed with a zero on both sides so that runs touching
// either end still produce a rising and a falling edge. Edges then
// alternate: even ones are starts, odd ones are exclusive ends.
func Scan(seq []uint8) []Run {
	edges := bitplane.Transitions(bitplane.Pad(seq))
	out := make([]Run, 0, len(edges)/2)
	for i := 0; i+1 < len(edges); i += 2 {
		out = append(out, Run{Start: edges[i], Length: edges[i+1] - edges[i]})
	}
	return out
}

// Format joins runs as "start length start length ...".
func Format(runs []Run) string {
	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	return b.String()
}

// Parse reads whitespace separated start/length pairs.
func Parse(s string) ([]Run, error) {
	tokens := strings.Fields(s)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of values (%d)", ErrMalformed, len(tokens))
	}
	out := make([]Run, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		start, err := parseInt(tokens[i])
		if err != nil {
			return nil, err
		}
		length, err := parseInt(tokens[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, Run{Start: start, Length: length})
	}
	return out, nil
}

func parseInt(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrMalformed, token, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrMalformed, v)
	}
	return v, nil
}

// Paint sets buf[start-1 : start-1+length] to 1 for every run.
// Runs may overlap or come in any order. A run that does not fit inside
// buf is reported before anything is written.
func Paint(runs []Run, buf []uint8) error {
	size := len(buf)
	for _, r := range runs {
		if r.Start < 1 || r.Start > size || r.Length < 0 || r.Length > size-(r.Start-1) {
			return fmt.Errorf("%w: run %d+%d, mask size %d", ErrOutOfBounds, r.Start, r.Length, size)
		}
	}
	for _, r := range runs {
		lo := r.Start - 1
		for i := lo; i < lo+r.Length; i++ {
			buf[i] = 1
		}
	}
	return nil
}
