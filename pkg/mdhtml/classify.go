package mdhtml

import "strings"

// lineKind is what the classifier decides about one input line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineUnordered
	lineOrdered
	lineParagraph
	// lineDropped marks a '#'-run that fails the level/space check.
	// Such lines are consumed without output and without touching the
	// open block; downstream tooling depends on this exact behavior.
	lineDropped
)

// line is the classifier's verdict for a single raw line.
type line struct {
	kind  lineKind
	level int    // heading level 1..6, set only for lineHeading
	text  string // content after the marker; the untrimmed line for paragraphs
}

// classify decides the block type of one line (trailing newline already
// removed). Classification inspects the whitespace-trimmed line, but
// paragraph text keeps the line as read.
func classify(raw string) line {
	stripped := strings.TrimSpace(raw)
	switch {
	case stripped == "":
		return line{kind: lineBlank}
	case stripped[0] == '#':
		level := 0
		for level < len(stripped) && stripped[level] == '#' {
			level++
		}
		if level <= 6 && level < len(stripped) && stripped[level] == ' ' {
			return line{kind: lineHeading, level: level, text: stripped[level+1:]}
		}
		return line{kind: lineDropped}
	case strings.HasPrefix(stripped, "- "):
		return line{kind: lineUnordered, text: stripped[2:]}
	case strings.HasPrefix(stripped, "* "):
		return line{kind: lineOrdered, text: stripped[2:]}
	default:
		return line{kind: lineParagraph, text: raw}
	}
}
