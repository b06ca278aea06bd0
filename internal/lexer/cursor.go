package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"minic/internal/source"
)

// Cursor — позиция чтения в файле.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32 // exclusive upper bound for Off
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File) (Cursor, error) {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return Cursor{}, fmt.Errorf("file %s too large: %w", f.Path, err)
	}
	return Cursor{File: f, Limit: limit}, nil
}

// EOF проверяет, достигнут ли конец файла.
func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek returns the current byte, 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and the next byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump advances one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark — метка начала фрагмента.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// Len is the number of bytes read since m.
func (c *Cursor) Len(m Mark) uint32 { return c.Off - uint32(m) }

// Text is the source slice read since m.
func (c *Cursor) Text(m Mark) string { return string(c.File.Content[m:c.Off]) }
