package ocr

import (
	"sort"
	"strings"
)

// Box is a pixel-space bounding box for a recognized line.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (b Box) Height() int {
	return b.Bottom - b.Top
}

// Line is one recognized text line. Box is nil when the recognizer
// did not report geometry.
type Line struct {
	Text string
	Box  *Box
}

// Result is the output of a text recognition run over one image.
type Result struct {
	FullText    string
	Lines       []Line
	ImageWidth  int
	ImageHeight int
}

// Text returns the parser input for this result. When bounding boxes
// are available the spatially merged rows are preferred, since menus
// photographed in two-column layouts otherwise interleave the columns.
func (r Result) Text() string {
	for _, ln := range r.Lines {
		if ln.Box != nil {
			return MergedText(MergeRows(r.Lines))
		}
	}
	if r.FullText != "" {
		return r.FullText
	}
	return MergedText(r.Lines)
}

// MergeRows merges lines that share a visual row, re-joining them
// left to right. Two lines share a row when their vertical overlap is
// at least half the shorter line's height. Lines without a box are
// passed through untouched.
func MergeRows(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	used := make([]bool, len(lines))

	for i, ln := range lines {
		if used[i] {
			continue
		}
		used[i] = true
		if ln.Box == nil {
			out = append(out, ln)
			continue
		}

		row := []Line{ln}
		for j := i + 1; j < len(lines); j++ {
			if used[j] || lines[j].Box == nil {
				continue
			}
			if sameRow(*ln.Box, *lines[j].Box) {
				row = append(row, lines[j])
				used[j] = true
			}
		}
		out = append(out, mergeRow(row))
	}
	return out
}

// MergedText joins lines back into the newline-separated form the
// menu parser consumes.
func MergedText(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, ln := range lines {
		parts = append(parts, ln.Text)
	}
	return strings.Join(parts, "\n")
}

func sameRow(a, b Box) bool {
	overlap := min(a.Bottom, b.Bottom) - max(a.Top, b.Top)
	if overlap <= 0 {
		return false
	}
	h := min(a.Height(), b.Height())
	return h > 0 && overlap*2 >= h
}

func mergeRow(row []Line) Line {
	if len(row) == 1 {
		return row[0]
	}
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].Box.Left < row[j].Box.Left
	})

	parts := make([]string, 0, len(row))
	box := *row[0].Box
	for _, ln := range row {
		parts = append(parts, strings.TrimSpace(ln.Text))
		box.Left = min(box.Left, ln.Box.Left)
		box.Top = min(box.Top, ln.Box.Top)
		box.Right = max(box.Right, ln.Box.Right)
		box.Bottom = max(box.Bottom, ln.Box.Bottom)
	}
	return Line{Text: strings.Join(parts, " "), Box: &box}
}
