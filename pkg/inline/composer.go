package inline

import "strings"

// mhtmlBoundary is the part boundary used in the MHTML comment block.
const mhtmlBoundary = "|"

// composer accumulates the rewritten stylesheet body and the MHTML parts.
//
// Rather than splicing previously emitted text back out, each open block
// buffers its lines separately and is flushed on close only when something
// was emitted inside it; a block whose entire content was stripped vanishes
// together with its header and closing brace.
type composer struct {
	out     strings.Builder
	stack   []*openBlock
	mhtml   strings.Builder
	parts   int
	removed int
}

type openBlock struct {
	header  string
	content []string
}

func newComposer() *composer {
	return &composer{}
}

// open starts buffering a new block under its header line.
func (c *composer) open(header string) {
	c.stack = append(c.stack, &openBlock{header: header})
}

// line emits one transformed line into the current block, or at the top
// level when no block is open.
func (c *composer) line(text string) {
	if top := c.top(); top != nil {
		top.content = append(top.content, text)
		return
	}
	c.out.WriteString(text)
	c.out.WriteString("\n")
}

// close finishes the current block. An empty block is dropped entirely;
// removed reports whether that happened. A stray close brace with no open
// block passes through.
func (c *composer) close() (removed bool) {
	top := c.top()
	if top == nil {
		c.line("}")
		return false
	}
	c.stack = c.stack[:len(c.stack)-1]

	if len(top.content) == 0 {
		c.removed++
		return true
	}

	c.line(top.header)
	for _, l := range top.content {
		c.line(l)
	}
	c.line("}")
	return false
}

// part appends one MHTML part: boundary, headers, blank line, payload.
func (c *composer) part(location, payload string) {
	c.parts++
	c.mhtml.WriteString("--" + mhtmlBoundary + "\n")
	c.mhtml.WriteString("Content-Location:" + location + "\n")
	c.mhtml.WriteString("Content-Transfer-Encoding:base64\n\n")
	c.mhtml.WriteString(payload)
	c.mhtml.WriteString("\n\n")
}

// result assembles the final artifact. Blocks left open at end of input
// are closed on the way out; empty ones are dropped and counted like any
// other stripped block. When MHTML output was requested and parts exist,
// the multipart comment document is prepended to the stylesheet body.
func (c *composer) result(withMHTML bool) string {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if len(top.content) == 0 {
			c.removed++
			continue
		}
		c.line(top.header)
		for _, l := range top.content {
			c.line(l)
		}
		c.line("}")
	}

	body := c.out.String()
	if withMHTML && c.parts > 0 {
		header := "/*\nContent-Type: multipart/related; boundary=\"" + mhtmlBoundary + "\"\n\n"
		footer := "--" + mhtmlBoundary + "--\n*/\n"
		body = header + c.mhtml.String() + footer + body
	}
	return strings.TrimSpace(body)
}

func (c *composer) top() *openBlock {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}
