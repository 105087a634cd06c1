package civiltime

// charRange is a half-open cursor over a string: [pos, end). It backs both
// the format-string walk and the input-string walk during parse, the same
// role cctz's CharRange plays for the format/parse engine.
type charRange struct {
	s   string
	pos int
}

func newCharRange(s string) *charRange {
	return &charRange{s: s}
}

// empty reports whether the cursor has reached the end of the string.
func (c *charRange) empty() bool {
	return c.pos >= len(c.s)
}

// remaining is the unconsumed tail of the string.
func (c *charRange) remaining() string {
	return c.s[c.pos:]
}

// peek returns the next byte without advancing, and false at end of range.
func (c *charRange) peek() (byte, bool) {
	if c.empty() {
		return 0, false
	}
	return c.s[c.pos], true
}

// advance moves the cursor forward by n bytes.
func (c *charRange) advance(n int) {
	c.pos += n
	if c.pos > len(c.s) {
		c.pos = len(c.s)
	}
}

// consumeLiteral matches and consumes a single literal byte, reporting
// whether it matched.
func (c *charRange) consumeLiteral(b byte) bool {
	v, ok := c.peek()
	if !ok || v != b {
		return false
	}
	c.advance(1)
	return true
}

// hasPrefix reports whether the remaining range starts with prefix, without
// consuming it.
func (c *charRange) hasPrefix(prefix string) bool {
	rem := c.remaining()
	if len(rem) < len(prefix) {
		return false
	}
	return rem[:len(prefix)] == prefix
}

// consumePrefix consumes prefix if present, reporting whether it matched.
func (c *charRange) consumePrefix(prefix string) bool {
	if !c.hasPrefix(prefix) {
		return false
	}
	c.advance(len(prefix))
	return true
}

// stripLeadingSpace advances past a run of ASCII whitespace, returning the
// number of bytes skipped.
func (c *charRange) stripLeadingSpace() int {
	n := 0
	for {
		v, ok := c.peek()
		if !ok || !isASCIISpace(v) {
			break
		}
		c.advance(1)
		n++
	}
	return n
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
