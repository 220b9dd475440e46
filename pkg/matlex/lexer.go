package matlex

// Lexer tokenizes MATLAB-family source. It is stateless apart from its
// configuration; all scan state lives in the per-call scanner and in the
// Document's persisted per-line cookies, so one Lexer may serve many
// documents provided each document is scanned by one goroutine at a time.
type Lexer struct {
	Dialect Dialect

	// Words supplies the identifier classification tables. May be nil, in
	// which case only the structural rules apply.
	Words *KeywordTables
}

// NewLexer creates a Lexer for the given dialect and tables.
func NewLexer(dialect Dialect, words *KeywordTables) *Lexer {
	return &Lexer{Dialect: dialect, Words: words}
}

// TokenizeAll tokenizes the whole document from a clean start.
func (lx *Lexer) TokenizeAll(doc *Document) []Span {
	return lx.Tokenize(doc, 0, doc.Len(), TokDefault)
}

// Tokenize scans [start, start+length), resuming in the given initial state
// (the style in effect just before start; TokDefault for a clean start). It
// returns the ordered span sequence covering the range, records the styles
// into the document, and persists the comment-nesting depth of every line it
// completes. The block-comment depth at entry is re-derived from the
// persisted state of the line preceding start, never from earlier calls.
//
// The scan is total: it never fails, and bytes matching no rule are emitted
// as TokDefault.
func (lx *Lexer) Tokenize(doc *Document, start, length int, initial TokenKind) []Span {
	sc := newScanner(doc, lx.Dialect, lx.Words, start, length, initial)
	lexType := lx.Dialect

	for ; sc.more(); sc.forward() {
		switch sc.state {
		case TokOperator:
			sc.setState(TokDefault)
			// Element-wise operator pairs: .* ./ .\ .^ keep an expression
			// open, while .' is itself a transpose.
			if sc.chPrev == '.' {
				if sc.ch == '*' || sc.ch == '/' || sc.ch == '\\' || sc.ch == '^' {
					sc.expectTranspose = false
				} else if sc.ch == '\'' {
					sc.expectTranspose = true
				}
			}

		case TokNumber:
			if !isMatNumber(sc.ch, sc.chPrev) {
				if lexType == DialectJulia && sc.ch == 'm' && sc.chPrev == 'i' {
					sc.forward() // Julia imaginary literal suffix: 2im
				}
				sc.setState(TokDefault)
				sc.expectTranspose = true
			}

		case TokHexNumber:
			if !isHexDigit(sc.ch) {
				sc.setState(TokDefault)
				sc.expectTranspose = true
			}

		case TokIdentifier, TokAttribute:
			if !isWordChar(sc.ch) {
				lx.resolveIdentifier(sc)
				if sc.ch == '@' {
					sc.setState(TokOperator)
					sc.forward()
				}
				sc.setState(TokDefault)
			}

		case TokCallback, TokVariable:
			if !isWordChar(sc.ch) {
				if sc.ch == '@' {
					sc.setState(TokOperator)
					sc.forward()
				}
				sc.setState(TokDefault)
			}

		case TokCommand:
			if isInvalidFileName(sc.ch) {
				sc.setState(TokDefault)
				sc.expectTranspose = false
			}

		case TokString:
			if lexType == DialectJulia && sc.ch == '\\' {
				if sc.chNext == '"' || sc.chNext == '\'' || sc.chNext == '\\' {
					sc.forward()
				}
			} else if sc.ch == '\'' {
				if sc.chNext == '\'' {
					sc.forward() // '' embeds a literal quote
				} else {
					sc.forwardSetState(TokDefault)
				}
			}

		case TokDoubleQuoteString, TokRegex, TokRawString:
			if sc.ch == '\\' {
				if sc.chNext == '"' || sc.chNext == '\'' || sc.chNext == '\\' {
					sc.forward()
				}
			} else if sc.ch == '"' {
				if sc.state == TokRegex {
					for sc.chNext == 'i' || sc.chNext == 'm' || sc.chNext == 's' || sc.chNext == 'x' {
						sc.forward()
					}
				}
				sc.forwardSetState(TokDefault)
			}

		case TokTripleString:
			if sc.match(`"""`) {
				sc.forwardN(2)
				sc.forwardSetState(TokDefault)
			}

		case TokBacktick:
			if sc.ch == '`' {
				sc.forwardSetState(TokDefault)
			}

		case TokCommentBlock:
			if lx.isBlockCommentEnd(sc) {
				if isMatlabOctave(lexType) {
					sc.commentLevel--
					if sc.commentLevel < 0 {
						sc.commentLevel = 0
					}
				}
				if sc.commentLevel == 0 {
					sc.forward()
					sc.forwardSetState(TokDefault)
				}
			} else if lx.isNestedCommentStart(sc) {
				sc.commentLevel++
				sc.forward()
			}

		case TokComment:
			if sc.atLineStart() {
				sc.visibleChars = 0
				sc.setState(TokDefault)
				sc.expectTranspose = false
			}
		}

		if sc.state == TokDefault {
			lx.scanDefault(sc)
		}

		if sc.atLineEnd() {
			sc.saveLineState()
			sc.visibleChars = 0
		}
		if !isSpaceChar(sc.ch) {
			sc.visibleChars++
		}
	}

	sc.complete()
	return sc.spans
}

// scanDefault dispatches the byte at the cursor when no state is active.
func (lx *Lexer) scanDefault(sc *scanner) {
	lexType := lx.Dialect

	switch {
	case lexType == DialectJulia && sc.ch == 'r' && sc.chNext == '"':
		sc.setState(TokRegex)
		sc.forward()

	case lexType == DialectJulia && (sc.ch == 'b' || sc.ch == 'L' || sc.ch == 'I' || sc.ch == 'E' || sc.ch == 'v') && sc.chNext == '"':
		sc.setState(TokDoubleQuoteString)
		sc.forward()

	case sc.match(`raw"`):
		sc.setState(TokRawString)
		sc.forwardN(3)
		if sc.match(`"""`) {
			sc.changeState(TokTripleString)
			sc.forwardN(2)
		}

	case lx.isBlockCommentStart(sc):
		if isMatlabOctave(lexType) {
			sc.commentLevel++
		}
		sc.setState(TokCommentBlock)
		sc.forward()

	case lx.isLineCommentStart(sc):
		sc.setState(TokComment)
		if lexType == DialectOctave && sc.atLineStart() && sc.ch == '%' && sc.chNext == '!' {
			// Octave test/demo sections, conventionally at end of file.
			// Once one is seen, later %! lines scan as code.
			pos := sc.pos + 2
			if !sc.hasTest && (sc.doc.match(pos, "test") || sc.doc.match(pos, "demo") ||
				sc.doc.match(pos, "assert") || sc.doc.match(pos, "error") || sc.doc.match(pos, "warning") ||
				sc.doc.match(pos, "fail") || sc.doc.match(pos, "shared") || sc.doc.match(pos, "function")) {
				sc.hasTest = true
			}
			if sc.hasTest {
				sc.forwardN(2)
				if isWordChar(sc.ch) {
					sc.setState(TokIdentifier)
				} else {
					sc.setState(TokDefault)
				}
			}
		} else if sc.ch == '.' {
			sc.forwardN(2) // line continuation: the full "..." is comment
		}

	case isMatlabOctave(lexType) && sc.visibleChars == 0 && sc.ch == '!':
		sc.setState(TokCommand)

	case sc.match(`"""`):
		sc.setState(TokTripleString)
		sc.forwardN(2)

	case sc.ch == '\'':
		// Whitespace before a transpose is allowed, so the carried flag,
		// not adjacency, decides operator vs string.
		if sc.expectTranspose {
			sc.setState(TokOperator)
		} else {
			sc.setState(TokString)
		}

	case sc.ch == '"':
		sc.setState(TokDoubleQuoteString)

	case sc.ch == '`':
		sc.setState(TokBacktick)

	case sc.ch == '0' && (sc.chNext == 'x' || sc.chNext == 'X'):
		sc.setState(TokHexNumber)
		sc.forward()

	case isDigitChar(sc.ch) || (sc.ch == '.' && isDigitChar(sc.chNext)):
		sc.setState(TokNumber)

	case sc.ch == '@' && isWordChar(sc.chNext):
		sc.setState(TokCallback)
		sc.forward()

	case sc.ch == '$' && isWordChar(sc.chNext):
		sc.setState(TokVariable)
		sc.forward()

	case isWordChar(sc.ch):
		sc.setState(TokIdentifier)

	case isMatOperator(sc.ch):
		sc.setState(TokOperator)
		if sc.ch == ')' || sc.ch == ']' || sc.ch == '}' {
			sc.expectTranspose = true
		} else {
			sc.expectTranspose = false
		}

		if lexType == DialectJulia && (sc.ch == ':' || sc.ch == '<') && sc.chNext == ':' {
			// var::Type, T <: Type
			sc.forwardN(2)
			sc.setState(TokDefault)
			for isSpaceOrTab(sc.ch) {
				sc.forward()
			}
			sc.setState(TokAttribute)
		}

	default:
		sc.expectTranspose = false
	}
}

// resolveIdentifier classifies the accumulated lexeme against the keyword
// tables, in priority order. Unmatched identifiers followed by '(' become
// generic functions; under Julia an identifier before '{' is a generic type.
func (lx *Lexer) resolveIdentifier(sc *scanner) {
	s := sc.currentLexeme()
	sc.expectTranspose = true // only keywords are reserved

	words := lx.Words
	if words == nil {
		words = &KeywordTables{}
	}
	switch {
	case words.Keywords.Contains(s):
		sc.changeState(TokKeyword)
		sc.expectTranspose = false
	case words.Attributes.Contains(s):
		sc.changeState(TokAttribute)
	case words.Commands.Contains(s):
		sc.changeState(TokInternalCommand)
	case words.Function1.Contains(s):
		sc.changeState(TokFunction1)
	case words.Function2.Contains(s):
		sc.changeState(TokFunction2)
	default:
		chNext := sc.nextVisibleChar()
		if chNext == '(' {
			sc.changeState(TokFunction)
		} else if lx.Dialect == DialectJulia && sc.state == TokIdentifier && chNext == '{' {
			sc.changeState(TokAttribute)
		}
	}
}

// isLineCommentStart reports a line-comment opener at the cursor: '#' in any
// dialect (Octave, Julia, Gnuplot, shebang, or noise elsewhere), '%' and the
// "..." continuation under MATLAB/Octave, and "//" outside Julia (Scilab).
func (lx *Lexer) isLineCommentStart(sc *scanner) bool {
	return sc.ch == '#' ||
		(isMatlabOctave(lx.Dialect) && (sc.ch == '%' ||
			(sc.visibleChars == 0 && sc.ch == '.' && sc.chNext == '.' && sc.relative(2) == '.'))) ||
		(lx.Dialect != DialectJulia && sc.ch == '/' && sc.chNext == '/')
}

// isNestedCommentStartAt reports a nestable block-comment opener at pos:
// "%{" (MATLAB/Octave) or "#{" (Octave), first on its line with nothing but
// whitespace after the delimiter.
func (lx *Lexer) isNestedCommentStartAt(ch, chNext byte, visibleChars, pos int, doc *Document) bool {
	return visibleChars == 0 && chNext == '{' &&
		((lx.Dialect == DialectMatlab && ch == '%') ||
			(lx.Dialect == DialectOctave && (ch == '%' || ch == '#'))) &&
		doc.isSpaceToLineEnd(pos+2)
}

// isNestedCommentEndAt mirrors isNestedCommentStartAt for "%}" / "#}".
func (lx *Lexer) isNestedCommentEndAt(ch, chNext byte, visibleChars, pos int, doc *Document) bool {
	return visibleChars == 0 && chNext == '}' &&
		((lx.Dialect == DialectMatlab && ch == '%') ||
			(lx.Dialect == DialectOctave && (ch == '%' || ch == '#'))) &&
		doc.isSpaceToLineEnd(pos+2)
}

// isBlockCommentStartAt reports any block-comment opener: a nested opener,
// Julia's "#=", or "/*".
func (lx *Lexer) isBlockCommentStartAt(ch, chNext byte, visibleChars, pos int, doc *Document) bool {
	return lx.isNestedCommentStartAt(ch, chNext, visibleChars, pos, doc) ||
		(lx.Dialect == DialectJulia && ch == '#' && chNext == '=') ||
		(ch == '/' && chNext == '*')
}

// isBlockCommentEndAt mirrors isBlockCommentStartAt for the closers.
func (lx *Lexer) isBlockCommentEndAt(ch, chNext byte, visibleChars, pos int, doc *Document) bool {
	return lx.isNestedCommentEndAt(ch, chNext, visibleChars, pos, doc) ||
		(lx.Dialect == DialectJulia && ch == '=' && chNext == '#') ||
		(ch == '*' && chNext == '/')
}

func (lx *Lexer) isNestedCommentStart(sc *scanner) bool {
	return lx.isNestedCommentStartAt(sc.ch, sc.chNext, sc.visibleChars, sc.pos, sc.doc)
}

func (lx *Lexer) isBlockCommentStart(sc *scanner) bool {
	return lx.isBlockCommentStartAt(sc.ch, sc.chNext, sc.visibleChars, sc.pos, sc.doc)
}

func (lx *Lexer) isBlockCommentEnd(sc *scanner) bool {
	return lx.isBlockCommentEndAt(sc.ch, sc.chNext, sc.visibleChars, sc.pos, sc.doc)
}
