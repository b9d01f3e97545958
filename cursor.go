package utfkit

import (
	"unsafe"

	"github.com/wippyai/utfkit/errors"
)

// Cursor walks a byte sequence one codepoint at a time in either
// direction, validating every step. A failed step leaves the position
// unchanged. The zero value is an empty cursor; construct over real
// data with NewCursor.
type Cursor struct {
	p   []byte
	pos int
}

// NewCursor returns a cursor over p at byte offset pos. Offsets outside
// [0, len(p)] report an out-of-range defect. The cursor borrows p, which
// must not be mutated while the cursor is live.
func NewCursor(p []byte, pos int) (*Cursor, error) {
	if pos < 0 || pos > len(p) {
		return nil, errors.OutOfRange(pos, len(p))
	}
	return &Cursor{p: p, pos: pos}, nil
}

// Rune decodes the sequence under the cursor without moving it.
func (c *Cursor) Rune() (rune, error) {
	return PeekNext(c.p, c.pos)
}

// Next moves the cursor past the sequence under it.
func (c *Cursor) Next() error {
	_, next, err := DecodeNext(c.p, c.pos)
	if err != nil {
		return err
	}
	c.pos = next
	return nil
}

// Prev moves the cursor to the lead of the sequence before it.
func (c *Cursor) Prev() error {
	_, prev, err := DecodePrior(c.p, c.pos)
	if err != nil {
		return err
	}
	c.pos = prev
	return nil
}

// Pos returns the cursor's byte offset. Raw order between two cursors
// over the same data is integer order of their offsets.
func (c *Cursor) Pos() int {
	return c.pos
}

// Equal reports whether o sits at the same offset over the same byte
// sequence. Cursors over different sequences do not compare and report
// a range-mismatch defect.
func (c *Cursor) Equal(o *Cursor) (bool, error) {
	if unsafe.SliceData(c.p) != unsafe.SliceData(o.p) || len(c.p) != len(o.p) {
		return false, errors.RangeMismatch()
	}
	return c.pos == o.pos, nil
}

// Clone returns an independent cursor at the same position over the
// same data.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{p: c.p, pos: c.pos}
}
