package mdhtml

import (
	"fmt"
	"strings"
)

// blockKind is the currently open block-level context. At most one
// context is open at a time; opening another closes the previous one.
type blockKind int

const (
	blockNone blockKind = iota
	blockParagraph
	blockUnordered
	blockOrdered
)

// tracker is the block state machine. step and finish return the HTML
// fragments to write, in order; they never write anything themselves.
// The paragraph buffer is owned here and flushed exactly once per close.
type tracker struct {
	open      blockKind
	paragraph []string
}

// step advances the machine by one classified line and returns the
// fragments that line caused.
func (t *tracker) step(ln line) []string {
	switch ln.kind {
	case lineBlank:
		return t.closeOpen()
	case lineHeading:
		frags := t.closeOpen()
		h := fmt.Sprintf("<h%d>%s</h%d>\n", ln.level, renderInline(ln.text), ln.level)
		return append(frags, h)
	case lineDropped:
		// Malformed headings vanish without closing anything.
		return nil
	case lineUnordered:
		var frags []string
		if t.open != blockUnordered {
			frags = t.closeOpen()
			frags = append(frags, "<ul>\n")
			t.open = blockUnordered
		}
		return append(frags, "<li>"+renderInline(ln.text)+"</li>\n")
	case lineOrdered:
		var frags []string
		if t.open != blockOrdered {
			frags = t.closeOpen()
			frags = append(frags, "<ol>\n")
			t.open = blockOrdered
		}
		return append(frags, "<li>"+renderInline(ln.text)+"</li>\n")
	case lineParagraph:
		var frags []string
		if t.open != blockParagraph {
			frags = t.closeOpen()
			t.open = blockParagraph
		}
		t.paragraph = append(t.paragraph, ln.text)
		return frags
	}
	return nil
}

// finish closes whatever is still open at end of stream.
func (t *tracker) finish() []string {
	return t.closeOpen()
}

// closeOpen closes the current context, if any. Safe to call with
// nothing open.
func (t *tracker) closeOpen() []string {
	switch t.open {
	case blockParagraph:
		t.open = blockNone
		return t.flushParagraph()
	case blockUnordered:
		t.open = blockNone
		return []string{"</ul>\n"}
	case blockOrdered:
		t.open = blockNone
		return []string{"</ol>\n"}
	}
	return nil
}

// flushParagraph converts the buffered lines. Inline transforms run
// here, at close time, not at buffering time. Multiple lines are
// joined with a break tag; a single line comes out plain.
func (t *tracker) flushParagraph() []string {
	if len(t.paragraph) == 0 {
		return nil
	}
	lines := make([]string, len(t.paragraph))
	for i, l := range t.paragraph {
		lines[i] = renderInline(l)
	}
	t.paragraph = t.paragraph[:0]
	return []string{"<p>\n" + strings.Join(lines, "<br/>\n") + "\n</p>\n"}
}
