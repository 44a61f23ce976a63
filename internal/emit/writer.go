package emit

import (
	"regexp"
	"strings"
)

// indentUnit is the fixed indentation step fragment blocks are authored with.
// Block rewrites runs of it to the writer's configured width.
const indentUnit = 4

var leadingUnits = regexp.MustCompile(`^( {4})+`)

// Writer accumulates the lines of one artifact together with the current
// indentation state and the destination the artifact will be committed to.
type Writer struct {
	lines []string

	// IndentWidth is the number of spaces per indentation step. Fragments may
	// adjust it temporarily (the usage here-doc is authored at width 2) and
	// must restore it afterwards.
	IndentWidth int

	depth      int
	dest       string // file path, or "" for standard output
	label      string // names the artifact in logs and stdout banners
	executable bool   // add owner-exec after writing to a real path
}

// NewWriter creates a Writer bound to one destination. An empty dest means
// standard output. The label names the artifact ("script template", "utils").
func NewWriter(indentWidth int, dest, label string, executable bool) *Writer {
	return &Writer{
		IndentWidth: indentWidth,
		dest:        dest,
		label:       label,
		executable:  executable,
	}
}

// Dest returns the destination path, or "" for standard output.
func (w *Writer) Dest() string { return w.dest }

// Indent increases the current indentation depth.
func (w *Writer) Indent(levels int) { w.depth += levels }

// Unindent decreases the current indentation depth. Going negative is a
// caller bug and is not handled defensively.
func (w *Writer) Unindent(levels int) { w.depth -= levels }

// Blank appends an empty line with no indentation.
func (w *Writer) Blank() { w.Line("") }

// Line appends one line, prefixed by the current indentation. A blank
// argument appends an empty line with no indentation at all, so the output
// never ends up with lines of trailing spaces.
func (w *Writer) Line(text string) {
	if strings.TrimSpace(text) == "" {
		w.lines = append(w.lines, "")
		return
	}
	prefix := strings.Repeat(" ", w.depth*w.IndentWidth)
	w.lines = append(w.lines, prefix+text)
}

// Block appends a multi-line block authored with 4-space indentation steps.
// Unless keepIndentation is set, the block is first uniformly de-indented to
// its minimum common margin; leading runs of 4-space groups are then rescaled
// to the writer's configured width before each line goes through Line.
func (w *Writer) Block(text string, keepIndentation bool) {
	if !keepIndentation {
		text = dedent(text)
	}
	step := strings.Repeat(" ", w.IndentWidth)
	for _, line := range strings.Split(text, "\n") {
		converted := leadingUnits.ReplaceAllStringFunc(line, func(m string) string {
			return strings.Repeat(step, len(m)/indentUnit)
		})
		w.Line(converted)
	}
}

// Lines returns the accumulated lines. The slice is owned by the Writer.
func (w *Writer) Lines() []string { return w.lines }

// Empty reports whether nothing has been appended yet.
func (w *Writer) Empty() bool { return len(w.lines) == 0 }

// Prepend inserts lines at the very beginning of the buffer, bypassing
// indentation. Used for the utility artifact's shebang header.
func (w *Writer) Prepend(lines ...string) {
	w.lines = append(append([]string{}, lines...), w.lines...)
}

// TrimTrailingBlanks drops empty lines at the end of the buffer.
func (w *Writer) TrimTrailingBlanks() {
	for len(w.lines) > 0 && w.lines[len(w.lines)-1] == "" {
		w.lines = w.lines[:len(w.lines)-1]
	}
}

// dedent strips the longest common leading whitespace of all non-blank lines.
func dedent(text string) string {
	lines := strings.Split(text, "\n")
	margin := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return text
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = line
			continue
		}
		lines[i] = line[margin:]
	}
	return strings.Join(lines, "\n")
}
