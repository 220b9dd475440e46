package matlex

import "sort"

// lineInfo holds the byte range of a single line including its newline.
type lineInfo struct {
	start int // byte index of the line start
	end   int // byte index just after the newline (or end of content)
}

// Document is the in-memory text and per-line state store both scan passes
// operate on. It plays the text/style accessor role: random-access byte and
// style reads, line-boundary lookup, and per-line persisted state.
//
// A Document is exclusively owned by the goroutine scanning it; the engine
// itself takes no locks.
type Document struct {
	content []byte
	lines   []lineInfo

	// styles holds one TokenKind per content byte, written by Lexer.Tokenize
	// and read by Folder.Fold.
	styles []TokenKind

	// lineStates holds the per-line resumption cookie: the block-comment
	// nesting depth at the end of each line. Its meaning is dialect-specific
	// and opaque to callers.
	lineStates []int

	// folds holds the per-line fold levels computed by Folder.Fold.
	folds []FoldLevel
}

// NewDocument creates a Document over the given content. Both LF and CRLF
// line endings are handled; content need not be valid UTF-8.
func NewDocument(content []byte) *Document {
	d := &Document{content: content}
	d.lines = buildLineIndex(content)
	d.styles = make([]TokenKind, len(content))
	d.lineStates = make([]int, len(d.lines))
	d.folds = make([]FoldLevel, len(d.lines))
	return d
}

// buildLineIndex computes line boundaries. Every document has at least one
// line; a trailing newline opens a final empty line, matching editor
// line-numbering conventions.
func buildLineIndex(content []byte) []lineInfo {
	var lines []lineInfo
	start := 0
	for i, ch := range content {
		if ch == '\n' {
			lines = append(lines, lineInfo{start: start, end: i + 1})
			start = i + 1
		}
	}
	lines = append(lines, lineInfo{start: start, end: len(content)})
	return lines
}

// Content returns the raw document bytes.
func (d *Document) Content() []byte { return d.content }

// Len returns the document length in bytes.
func (d *Document) Len() int { return len(d.content) }

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return len(d.lines) }

// ByteAt returns the byte at pos, or 0 when pos is out of range.
func (d *Document) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(d.content) {
		return 0
	}
	return d.content[pos]
}

// StyleAt returns the computed style at pos, or TokDefault out of range.
func (d *Document) StyleAt(pos int) TokenKind {
	if pos < 0 || pos >= len(d.styles) {
		return TokDefault
	}
	return d.styles[pos]
}

// LineOf returns the zero-based line index containing pos. Positions at or
// past the end of content map to the last line.
func (d *Document) LineOf(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(d.content) {
		return len(d.lines) - 1
	}
	return sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].end > pos
	})
}

// LineStart returns the byte offset of the start of the given line. Lines
// past the end yield the content length, so LineStart(n+1) is usable as an
// exclusive line end.
func (d *Document) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lines) {
		return len(d.content)
	}
	return d.lines[line].start
}

// LineState returns the persisted resumption cookie for a line, or 0 when
// the line is out of range.
func (d *Document) LineState(line int) int {
	if line < 0 || line >= len(d.lineStates) {
		return 0
	}
	return d.lineStates[line]
}

// SetLineState stores the resumption cookie for a line.
func (d *Document) SetLineState(line, state int) {
	if line >= 0 && line < len(d.lineStates) {
		d.lineStates[line] = state
	}
}

// FoldLevelAt returns the stored fold level for a line. Out-of-range lines
// yield the zero level.
func (d *Document) FoldLevelAt(line int) FoldLevel {
	if line < 0 || line >= len(d.folds) {
		return FoldLevel{}
	}
	return d.folds[line]
}

// SetFoldLevel stores a fold level and reports whether it differed from the
// previously stored value. The write-on-change contract lets callers decide
// which lines need redraw downstream.
func (d *Document) SetFoldLevel(line int, level FoldLevel) bool {
	if line < 0 || line >= len(d.folds) {
		return false
	}
	if d.folds[line] == level {
		return false
	}
	d.folds[line] = level
	return true
}

// setStyle records the style for the half-open range [start, end).
func (d *Document) setStyle(start, end int, kind TokenKind) {
	if start < 0 {
		start = 0
	}
	if end > len(d.styles) {
		end = len(d.styles)
	}
	for i := start; i < end; i++ {
		d.styles[i] = kind
	}
}

// match reports whether the content at pos begins with s.
func (d *Document) match(pos int, s string) bool {
	if pos < 0 || pos+len(s) > len(d.content) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if d.content[pos+i] != s[i] {
			return false
		}
	}
	return true
}

// isSpaceToLineEnd reports whether everything from pos to the end of its
// line (excluding the newline) is horizontal whitespace.
func (d *Document) isSpaceToLineEnd(pos int) bool {
	line := d.LineOf(pos)
	end := d.LineStart(line+1) - 1
	for i := pos; i < end; i++ {
		if !isSpaceOrTab(d.content[i]) {
			return false
		}
	}
	return true
}

// isCommentLine reports whether the first visible byte of a line carries the
// line-comment style. Out-of-range lines are not comment lines.
func (d *Document) isCommentLine(line int) bool {
	if line < 0 || line >= len(d.lines) {
		return false
	}
	start := d.lines[line].start
	end := d.lines[line].end - 1
	for pos := start; pos < end; pos++ {
		if !isSpaceOrTab(d.content[pos]) {
			return d.styles[pos] == TokComment
		}
	}
	return false
}

// skipSpaceTab returns the first position in [pos, endPos) that is not
// horizontal whitespace, or endPos.
func (d *Document) skipSpaceTab(pos, endPos int) int {
	for i := pos; i < endPos; i++ {
		if !isSpaceOrTab(d.ByteAt(i)) {
			return i
		}
	}
	return endPos
}

// nextNonSpaceTab returns the first byte at or after pos that is not a space
// or tab, or 0 at end of content. Line breaks are returned, not skipped.
func (d *Document) nextNonSpaceTab(pos int) byte {
	for pos < len(d.content) && isSpaceOrTab(d.content[pos]) {
		pos++
	}
	return d.ByteAt(pos)
}

// wordAt copies the run of word bytes starting at pos, truncated to max
// bytes. Truncation bounds scratch allocation on hostile input.
func (d *Document) wordAt(pos, max int) string {
	end := pos
	for end < len(d.content) && end-pos < max && isWordChar(d.content[end]) {
		end++
	}
	return string(d.content[pos:end])
}
