package mdhtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want line
	}{
		{"empty", "", line{kind: lineBlank}},
		{"whitespace only", "   \t", line{kind: lineBlank}},
		{"h1", "# Title", line{kind: lineHeading, level: 1, text: "Title"}},
		{"h6", "###### deep", line{kind: lineHeading, level: 6, text: "deep"}},
		{"heading trims surrounding space", "  ## padded  ", line{kind: lineHeading, level: 2, text: "padded"}},
		{"seven hashes", "####### over", line{kind: lineDropped}},
		{"no space after hashes", "#tag", line{kind: lineDropped}},
		{"bare hash", "#", line{kind: lineDropped}},
		{"hash then only space", "# ", line{kind: lineDropped}},
		{"unordered", "- item", line{kind: lineUnordered, text: "item"}},
		{"ordered", "* item", line{kind: lineOrdered, text: "item"}},
		{"dash without space", "-item", line{kind: lineParagraph, text: "-item"}},
		{"star without space", "*item", line{kind: lineParagraph, text: "*item"}},
		{"paragraph keeps raw line", "  plain text ", line{kind: lineParagraph, text: "  plain text "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.in))
		})
	}
}
