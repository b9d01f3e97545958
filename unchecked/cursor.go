package unchecked

import (
	"unsafe"

	"github.com/wippyai/utfkit"
)

// Cursor walks well-formed bytes one codepoint at a time with no
// validation. Malformed input yields unspecified positions or a bounds
// panic.
type Cursor struct {
	p   []byte
	pos int
}

// NewCursor returns a cursor over p at byte offset pos. The offset is
// not checked.
func NewCursor(p []byte, pos int) *Cursor {
	return &Cursor{p: p, pos: pos}
}

// Rune decodes the sequence under the cursor without moving it.
func (c *Cursor) Rune() rune {
	return PeekNext(c.p, c.pos)
}

// Next steps over the sequence under the cursor by its declared length,
// without decoding it. A stray continuation byte declares no length and
// leaves the position unchanged.
func (c *Cursor) Next() {
	c.pos += utfkit.SequenceLength(c.p[c.pos])
}

// Prev steps back to the lead of the preceding sequence.
func (c *Cursor) Prev() {
	c.pos--
	for utfkit.IsTrail(c.p[c.pos]) {
		c.pos--
	}
}

// Pos returns the cursor's byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Equal reports whether o addresses the same byte: positions coincide
// in memory regardless of how the underlying slices were taken.
func (c *Cursor) Equal(o *Cursor) bool {
	return c.addr() == o.addr()
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{p: c.p, pos: c.pos}
}

func (c *Cursor) addr() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(c.p)), c.pos)
}
