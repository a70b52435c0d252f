package mdhtml

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emphasisRe = regexp.MustCompile(`__(.+?)__`)
	digestRe   = regexp.MustCompile(`\[\[(.+?)\]\]`)
	stripRe    = regexp.MustCompile(`\(\((.+?)\)\)`)
)

// renderInline applies the inline substitutions in their fixed order:
// bold, emphasis, digest, c-strip. The order is load-bearing: swapping
// passes changes output for lines that mix markers, and the digest pass
// sees whatever the first two passes produced between its brackets.
func renderInline(s string) string {
	s = boldRe.ReplaceAllString(s, "<b>$1</b>")
	s = emphasisRe.ReplaceAllString(s, "<em>$1</em>")
	s = digestRe.ReplaceAllStringFunc(s, func(m string) string {
		sum := md5.Sum([]byte(m[2 : len(m)-2]))
		return hex.EncodeToString(sum[:])
	})
	s = stripRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Map(dropC, m[2:len(m)-2])
	})
	return s
}

func dropC(r rune) rune {
	if r == 'c' || r == 'C' {
		return -1
	}
	return r
}
