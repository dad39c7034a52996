// Package cursor tracks position and scroll offset for scrollable
// lists.
package cursor

// Cursor holds a position and scroll offset. List length and viewport
// height change dynamically, so methods take them as arguments.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the cursor
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta within a list of listLen items,
// clamping to bounds and keeping the cursor visible.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.EnsureVisible(listLen, height)
}

// Jump sets the cursor to an absolute position, clamping to bounds
// and keeping the cursor visible.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// JumpStart moves the cursor to the first item and resets the offset.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves the cursor to the last item.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.EnsureVisible(listLen, height)
}

// EnsureVisible adjusts the offset so the cursor stays in view with
// the configured margin.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}

	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}

	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back into range after the list
// shrank. Returns true when the position changed.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return changed
	}

	oldPos := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != oldPos
}

// Reset returns the cursor to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// SetPos sets the position without bounds checking. Callers restoring
// state or managing header rows handle the bounds themselves.
func (c *Cursor) SetPos(pos int) {
	c.pos = pos
}

// SetOffset sets the offset without bounds checking.
func (c *Cursor) SetOffset(offset int) {
	c.offset = offset
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
