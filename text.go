package tview

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// Alignment positions text within the width available to it.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// printLine prints text on row y between x and x+width. Text that does not fit
// loses its end, or its start when right aligned. Cells keep the background
// they already have. It reports whether the whole text was printed.
func printLine(screen tcell.Screen, text string, x, y, width int, alignment Alignment, style tcell.Style) bool {
	if width <= 0 || text == "" {
		return text == ""
	}

	clusters, widths := graphemes(text)
	total := 0
	for _, w := range widths {
		total += w
	}

	fits := total <= width
	for total > width {
		if alignment == AlignmentRight {
			total -= widths[0]
			clusters, widths = clusters[1:], widths[1:]
		} else {
			total -= widths[len(widths)-1]
			clusters, widths = clusters[:len(clusters)-1], widths[:len(widths)-1]
		}
	}

	switch alignment {
	case AlignmentCenter:
		x += (width - total) / 2
	case AlignmentRight:
		x += width - total
	}
	for i, cluster := range clusters {
		putKeepingBackground(screen, x, y, cluster, style)
		x += widths[i]
	}
	return fits
}

// putKeepingBackground writes one grapheme cluster with style, using the
// background the cell already has.
func putKeepingBackground(screen tcell.Screen, x, y int, cluster string, style tcell.Style) {
	_, existing, _ := screen.Get(x, y)
	screen.Put(x, y, cluster, style.Background(existing.GetBackground()))
}

func graphemes(text string) (clusters []string, widths []int) {
	state := -1
	for text != "" {
		var (
			cluster string
			width   int
		)
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, cluster)
		widths = append(widths, width)
	}
	return clusters, widths
}

// wrapText breaks text into lines no wider than width, at line break
// opportunities where possible. Mandatory breaks such as newlines always start
// a new line. The result has at least one line for a positive width.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	line, state := "", -1
	for text != "" {
		var (
			segment   string
			mustBreak bool
		)
		segment, text, mustBreak, state = uniseg.FirstLineSegmentInString(text, state)

		if line != "" && visibleWidth(line+segment) > width {
			lines = append(lines, trimLine(line))
			line = ""
		}
		for visibleWidth(segment) > width {
			head, tail := cutAtWidth(segment, width)
			lines = append(lines, head)
			segment = tail
		}
		line += segment

		if mustBreak && text != "" {
			lines = append(lines, trimLine(line))
			line = ""
		}
	}
	return append(lines, trimLine(line))
}

func trimLine(line string) string {
	return strings.TrimRight(line, " \r\n")
}

// visibleWidth is the width of s without trailing blanks, which may hang past
// the end of a line.
func visibleWidth(s string) int {
	return uniseg.StringWidth(trimLine(s))
}

// cutAtWidth splits s after the last grapheme that fits in width. The head
// holds at least one grapheme even if it is wider than width.
func cutAtWidth(s string, width int) (head, tail string) {
	used, state, rest := 0, -1, s
	for rest != "" {
		_, next, w, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width && used > 0 {
			break
		}
		used += w
		rest, state = next, newState
	}
	return s[:len(s)-len(rest)], rest
}
