package buffer

// Cursor is a position in buffer coordinates: zero-based line index
// and zero-based rune offset within that line. Col may equal the line
// length, meaning "after the last character".
type Cursor struct {
	Line, Col int
}

func (c Cursor) Equal(other Cursor) bool {
	return c.Line == other.Line && c.Col == other.Col
}

func (c Cursor) Before(other Cursor) bool {
	if c.Line != other.Line {
		return c.Line < other.Line
	}
	return c.Col < other.Col
}
