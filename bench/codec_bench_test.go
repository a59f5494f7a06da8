package bench_test

import (
	"math/rand"
	"testing"

	"github.com/yyyoichi/maskrle"
)

// BenchmarkEncode encodes default sized masks of increasing fill density
func BenchmarkEncode(b *testing.B) {
	test := []struct {
		name    string
		density float64
	}{
		{name: "empty", density: 0},
		{name: "sparse", density: 0.01},
		{name: "half", density: 0.5},
		{name: "blob", density: -1},
		{name: "full", density: 1},
	}
	for _, tt := range test {
		m := createMask(maskrle.DefaultWidth, maskrle.DefaultHeight, tt.density)
		b.Run(tt.name, func(b *testing.B) {
			for b.Loop() {
				_ = maskrle.Encode(m)
			}
		})
	}
}

// BenchmarkDecode decodes the strings produced by BenchmarkEncode's masks
func BenchmarkDecode(b *testing.B) {
	test := []struct {
		name    string
		density float64
	}{
		{name: "empty", density: 0},
		{name: "sparse", density: 0.01},
		{name: "half", density: 0.5},
		{name: "blob", density: -1},
		{name: "full", density: 1},
	}
	for _, tt := range test {
		rle := maskrle.Encode(createMask(maskrle.DefaultWidth, maskrle.DefaultHeight, tt.density))
		b.Run(tt.name, func(b *testing.B) {
			c, err := maskrle.New()
			if err != nil {
				b.Fatalf("Failed to create Codec (%s): %v", tt.name, err)
			}
			for b.Loop() {
				if _, err := c.Decode(rle); err != nil {
					b.Fatalf("Failed to decode mask (%s): %v", tt.name, err)
				}
			}
		})
	}
}

// createMask creates a widthxheight mask. A negative density draws one
// rectangle covering the middle third, like a single detected object.
func createMask(width, height int, density float64) *maskrle.Mask {
	m := maskrle.NewMask(width, height)
	if density < 0 {
		for r := height / 3; r < 2*height/3; r++ {
			for c := width / 3; c < 2*width/3; c++ {
				m.Set(r, c, true)
			}
		}
		return m
	}
	rd := rand.New(rand.NewSource(1234567890))
	for r := range height {
		for c := range width {
			m.Set(r, c, rd.Float64() < density)
		}
	}
	return m
}
