// Package diff renders line diffs between two versions of a file.
package diff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op marks a rendered line as kept, removed or added.
type Op byte

const (
	OpEqual  Op = ' '
	OpDelete Op = '-'
	OpInsert Op = '+'
)

// Line is one line of a diff.
type Line struct {
	Text string
	Op   Op
}

// String renders l with its marker.
func (l Line) String() string {
	return string(l.Op) + l.Text
}

// Lines compares before and after line by line.
func Lines(before, after string) []Line {
	dmp := diffpatch.New()

	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var lines []Line

	for _, d := range diffs {
		op := OpEqual

		switch d.Type {
		case diffpatch.DiffDelete:
			op = OpDelete
		case diffpatch.DiffInsert:
			op = OpInsert
		case diffpatch.DiffEqual:
		}

		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}

			lines = append(lines, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}

	return lines
}

// Unified renders the difference between before and after with "---" and
// "+++" headers naming the file. It returns "" when they are equal.
func Unified(name, before, after string) string {
	if before == after {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("--- " + name + "\n")
	sb.WriteString("+++ " + name + "\n")

	for _, l := range Lines(before, after) {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
