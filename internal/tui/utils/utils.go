package utils

import (
	"io"

	"github.com/arsham/figurine/figurine"
)

const bannerFont = "ANSI Regular.flf"

// PrintStyledText prints a large, decorated rendering of text to w.
func PrintStyledText(w io.Writer, text string) error {
	return figurine.Write(w, text, bannerFont)
}
