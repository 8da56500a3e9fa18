package encoding

// Cursor reads consecutive spans from a byte slice held entirely in memory.
//
// Offsets reported by the cursor are absolute positions in the original slice.
// Reads never panic: a read that would run past the end returns ok == false and
// leaves the cursor where it was.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor positioned at the first byte of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the absolute offset of the next unread byte.
func (c *Cursor) Offset() int64 {
	return int64(c.pos)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// HasDataLeft reports whether at least one unread byte remains.
func (c *Cursor) HasDataLeft() bool {
	return c.pos < len(c.data)
}

// Next returns the next n bytes and advances past them.
//
// The returned slice aliases the cursor's data and must not be modified.
func (c *Cursor) Next(n int) ([]byte, bool) {
	if n < 0 || n > c.Remaining() {
		return nil, false
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, true
}

// Uint32 reads a little-endian uint32 and advances past it.
func (c *Cursor) Uint32() (uint32, bool) {
	b, ok := c.Next(4)
	if !ok {
		return 0, false
	}

	return le.Uint32(b), true
}
