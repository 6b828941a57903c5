package inline

import "strings"

// lineClass is the classification of one normalized CSS line.
type lineClass int

const (
	classInBlock lineClass = iota
	classBlockOpen
	classBlockClose
)

// blockContext is the lookbehind state threaded through the single pass.
// atBlock and selector are never both non-empty: a line opens exactly one
// kind of block, and opening either kind clears the other.
type blockContext struct {
	// atBlock is the header line of the most recently opened at-rule
	// block, empty when not inside one.
	atBlock string

	// selector is the header line of the most recently opened selector
	// block, empty when not inside one.
	selector string

	// fontFaceFamily is the font-family declaration line seen inside the
	// current @font-face block. Only meaningful while atBlock is a
	// font-face header.
	fontFaceFamily string
}

// classify updates the open-block state for line and returns its class.
// Close-time state clearing is handled by closeBlock, because the caller
// needs the pre-close state to decide which kind of block just ended.
func (c *blockContext) classify(line string) lineClass {
	if strings.HasSuffix(line, "{") {
		if strings.HasPrefix(line, "@") {
			c.atBlock = line
			c.selector = ""
		} else {
			c.selector = line
			c.atBlock = ""
		}
		return classBlockOpen
	}

	if line == "}" {
		return classBlockClose
	}

	return classInBlock
}

// closeBlock clears the lookbehind state for the block that just closed.
func (c *blockContext) closeBlock() {
	if c.selector != "" {
		c.selector = ""
		return
	}
	c.atBlock = ""
	c.fontFaceFamily = ""
}

// inFontFace reports whether the current at-block is a font-face block.
func (c *blockContext) inFontFace() bool {
	return strings.HasPrefix(c.atBlock, "@font-face")
}

// noteFontFace records the font-family declaration while inside a
// font-face block. Font resource inlining itself is deferred; the family
// is tracked so a future font data-URI pass can use it.
func (c *blockContext) noteFontFace(line string) {
	if c.inFontFace() && strings.HasPrefix(line, "font-family") {
		c.fontFaceFamily = line
	}
}
