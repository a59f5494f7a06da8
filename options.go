package maskrle

type Option func(*Codec) error

// WithShape sets the (width, height) of decoded masks. Width is the
// number of columns and height the number of rows.
// Zero is allowed and yields an empty mask; negative values and shapes
// whose pixel count overflows an int are rejected.
func WithShape(width, height int) Option {
	return func(c *Codec) error {
		if err := checkShape(width, height); err != nil {
			return err
		}
		c.width, c.height = width, height
		return nil
	}
}
