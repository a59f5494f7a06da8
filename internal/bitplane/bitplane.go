package bitplane

import "github.com/yyyoichi/bitstream-go"

// Pad packs seq into a bit sequence framed by a zero bit on each side.
// Any non-zero value is written as a set bit.
func Pad(seq []uint8) *bitstream.BitReader[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	w.WriteBool(false)
	for _, v := range seq {
		w.WriteBool(v != 0)
	}
	w.WriteBool(false)

	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	return r
}

// Transitions returns every index i of r where bit i differs from bit
// i-1. On a sequence built by Pad the indexes alternate between the
// 1-indexed first position of a run of set bits and the 1-indexed
// position just past it.
func Transitions(r *bitstream.BitReader[uint64]) []int {
	n := r.Bits()
	if n == 0 {
		return nil
	}
	var out []int
	prev, _ := r.ReadBitAt(0)
	for i := 1; i < n; i++ {
		cur, _ := r.ReadBitAt(i)
		if cur != prev {
			out = append(out, i)
		}
		prev = cur
	}
	return out
}
