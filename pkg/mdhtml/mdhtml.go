// Package mdhtml converts a restricted Markdown dialect to HTML in a
// single forward pass.
//
// Supported: headings (1-6 '#' followed by a space), unordered lists
// ("- "), ordered lists ("* "), paragraphs with <br/> line breaks,
// **bold**, __emphasis__, [[text]] replaced by the lowercase hex MD5
// of text, and ((text)) with every 'c'/'C' removed. Nested lists,
// tables, code blocks, links and images are out of scope.
package mdhtml

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single input line for the scanner.
const maxLine = 1 << 20

// Convert reads markdown from r line by line and writes HTML fragments
// to w as blocks close. On a write error the sink is left in whatever
// partially written state the failure occurred at.
func Convert(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var t tracker
	for sc.Scan() {
		if err := writeFrags(w, t.step(classify(sc.Text()))); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return writeFrags(w, t.finish())
}

// ConvertString converts src and returns the HTML.
func ConvertString(src string) (string, error) {
	var b strings.Builder
	if err := Convert(strings.NewReader(src), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeFrags(w io.Writer, frags []string) error {
	for _, f := range frags {
		if _, err := io.WriteString(w, f); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
