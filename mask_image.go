package maskrle

import "image"

// FromImage builds a mask the size of src. A pixel is foreground when it
// is not black at full 16-bit precision, so dim colours and Gray16 levels
// below 256 still count.
func FromImage(src image.Image) *Mask {
	bounds := src.Bounds()
	m := NewMask(bounds.Dx(), bounds.Dy())
	idx := 0
	for y := range m.height {
		for x := range m.width {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if r|g|b != 0 {
				m.pix[idx] = 1
			}
			idx++
		}
	}
	return m
}

// Image renders the mask as a grayscale image with foreground at 255.
func (m *Mask) Image() *image.Gray {
	dist := image.NewGray(image.Rect(0, 0, m.width, m.height))
	for i, v := range m.pix {
		dist.Pix[i] = v * 255
	}
	return dist
}
