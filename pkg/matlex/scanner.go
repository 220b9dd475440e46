package matlex

// maxLexemeLen bounds the scratch copy taken when a provisional identifier
// is resolved against the keyword tables. Longer lexemes are truncated for
// comparison rather than failing.
const maxLexemeLen = 127

// scanner is the cursor state a Tokenize call steps through the requested
// range. All cross-character scan state (the expect-transpose flag, the
// block-comment depth, the Octave test-section latch) lives here explicitly,
// so a scan can stop at any line boundary and a later call can resume from
// the persisted per-line state alone.
type scanner struct {
	doc     *Document
	dialect Dialect
	words   *KeywordTables

	pos    int
	endPos int

	// state is the active scan state; spans are emitted with it on exit.
	state      TokenKind
	tokenStart int

	ch     byte
	chNext byte
	chPrev byte

	line          int // line containing pos
	lineStart     int
	lineStartNext int

	// commentLevel is the block-comment nesting depth, persisted per line.
	commentLevel int

	// visibleChars counts non-whitespace bytes seen on the current line.
	visibleChars int

	// expectTranspose is true when a following apostrophe is the postfix
	// transpose operator rather than a string opener.
	expectTranspose bool

	// hasTest latches once an Octave %! test/demo section keyword is seen;
	// subsequent %! lines scan their body as identifiers.
	hasTest bool

	spans []Span
}

func newScanner(doc *Document, dialect Dialect, words *KeywordTables, start, length int, initial TokenKind) *scanner {
	if start < 0 {
		start = 0
	}
	end := start + length
	if end > doc.Len() {
		end = doc.Len()
	}
	sc := &scanner{
		doc:        doc,
		dialect:    dialect,
		words:      words,
		pos:        start,
		endPos:     end,
		state:      initial,
		tokenStart: start,
		line:       doc.LineOf(start),
	}
	sc.lineStart = doc.LineStart(sc.line)
	sc.lineStartNext = doc.LineStart(sc.line + 1)
	sc.ch = doc.ByteAt(start)
	sc.chNext = doc.ByteAt(start + 1)
	sc.chPrev = doc.ByteAt(start - 1)
	if sc.line > 0 {
		sc.commentLevel = doc.LineState(sc.line - 1)
	}
	return sc
}

func (sc *scanner) more() bool { return sc.pos < sc.endPos }

// forward advances one byte, maintaining the line cursor.
func (sc *scanner) forward() {
	sc.chPrev = sc.ch
	sc.pos++
	if sc.pos >= sc.lineStartNext {
		sc.line++
		sc.lineStart = sc.lineStartNext
		sc.lineStartNext = sc.doc.LineStart(sc.line + 1)
	}
	sc.ch = sc.chNext
	sc.chNext = sc.doc.ByteAt(sc.pos + 1)
}

func (sc *scanner) forwardN(n int) {
	for i := 0; i < n; i++ {
		sc.forward()
	}
}

func (sc *scanner) atLineStart() bool { return sc.pos == sc.lineStart }

// atLineEnd is true at the last byte of a line (the \n of a CRLF pair, not
// the \r) and at the last byte of the document.
func (sc *scanner) atLineEnd() bool { return sc.pos >= sc.lineStartNext-1 }

// setState closes the pending span with the current state and opens a new
// one at the current position.
func (sc *scanner) setState(kind TokenKind) {
	sc.flushTo(sc.pos)
	sc.state = kind
}

// forwardSetState includes the current byte in the pending span, then
// switches state.
func (sc *scanner) forwardSetState(kind TokenKind) {
	sc.forward()
	sc.setState(kind)
}

// changeState retags the pending span without closing it. Used when a
// provisional classification (identifier) resolves to something else.
func (sc *scanner) changeState(kind TokenKind) {
	sc.state = kind
}

// complete flushes the final pending span.
func (sc *scanner) complete() {
	sc.flushTo(sc.endPos)
}

func (sc *scanner) flushTo(end int) {
	if end <= sc.tokenStart {
		return
	}
	sc.spans = append(sc.spans, Span{Kind: sc.state, Start: sc.tokenStart, End: end})
	sc.doc.setStyle(sc.tokenStart, end, sc.state)
	sc.tokenStart = end
}

// match reports whether the source at the current position begins with s.
func (sc *scanner) match(s string) bool {
	return sc.doc.match(sc.pos, s)
}

// currentLexeme returns the text of the pending span, truncated to the
// bounded scratch length.
func (sc *scanner) currentLexeme() string {
	end := sc.pos
	if end > sc.tokenStart+maxLexemeLen {
		end = sc.tokenStart + maxLexemeLen
	}
	return string(sc.doc.content[sc.tokenStart:end])
}

// nextVisibleChar returns the next byte at or after the current position
// that is not a space or tab.
func (sc *scanner) nextVisibleChar() byte {
	return sc.doc.nextNonSpaceTab(sc.pos)
}

// relative returns the byte n positions ahead of the cursor.
func (sc *scanner) relative(n int) byte {
	return sc.doc.ByteAt(sc.pos + n)
}

// saveLineState persists the comment depth for the line just finished.
func (sc *scanner) saveLineState() {
	sc.doc.SetLineState(sc.line, sc.commentLevel)
}
