package bitbuffer

// Cursor walks a Buffer one bit at a time. It borrows the buffer and never writes to it.
type Cursor struct {
	buf   *Buffer
	index uint64
}

// Begin returns a cursor at the first bit.
func (b *Buffer) Begin() Cursor {
	return Cursor{buf: b}
}

// End returns a cursor one past the last committed bit.
func (b *Buffer) End() Cursor {
	return Cursor{buf: b, index: b.BitLen()}
}

// CursorAt returns a cursor at bitIndex.
func (b *Buffer) CursorAt(bitIndex uint64) Cursor {
	return Cursor{buf: b, index: bitIndex}
}

// Index returns the absolute bit index under the cursor.
func (c Cursor) Index() uint64 {
	return c.index
}

// Bit returns the bit under the cursor.
func (c Cursor) Bit() (uint8, error) {
	return c.buf.ReadBit(c.index)
}

// Next advances the cursor and returns its updated value.
func (c *Cursor) Next() Cursor {
	c.index++
	return *c
}

// Advance advances the cursor and returns its value from before the move.
func (c *Cursor) Advance() Cursor {
	prev := *c
	c.index++
	return prev
}

// Equal compares positions only, not buffer contents.
func (c Cursor) Equal(other Cursor) bool {
	return c.index == other.index
}
