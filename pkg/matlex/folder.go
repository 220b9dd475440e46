package matlex

// FoldLevel is the per-line fold data: the depth at the start of the line,
// the depth carried into the next line, and the display flags.
type FoldLevel struct {
	// Level is the nesting depth at the start of the line.
	Level int

	// Next is the depth carried into the following line. A line whose Next
	// exceeds its Level is a header.
	Next int

	// Header marks a line that opens a level relative to the next line.
	Header bool

	// Blank marks a line with no visible characters; set only when the
	// compact option is on.
	Blank bool
}

// FoldOptions controls the optional folding behaviors.
type FoldOptions struct {
	// Comment folds block comments, runs of line comments, and triple-quoted
	// strings in addition to code structure.
	Comment bool

	// Compact flags blank lines in the fold data so viewers can attach them
	// to the preceding fold region.
	Compact bool
}

// DefaultFoldOptions matches the folding defaults of the host editor:
// comment folding off, compact on.
func DefaultFoldOptions() FoldOptions {
	return FoldOptions{Comment: false, Compact: true}
}

// maxFoldWordLen bounds the scratch copy taken when matching a keyword run
// against the opener/closer tables.
const maxFoldWordLen = 31

// Folder derives per-line fold levels from text plus the token styles a
// previous Tokenize pass recorded. It never calls the lexer; the style
// stream and per-line state are its only inputs.
type Folder struct {
	Dialect Dialect
	Options FoldOptions
}

// NewFolder creates a Folder for the given dialect.
func NewFolder(dialect Dialect, opts FoldOptions) *Folder {
	return &Folder{Dialect: dialect, Options: opts}
}

// FoldAll folds the whole document.
func (f *Folder) FoldAll(doc *Document) int {
	return f.Fold(doc, 0, doc.Len())
}

// Fold computes fold levels for every line overlapping [start, start+length),
// seeding the base level from the stored level of the line preceding the
// range. Levels are written back to the document only when they differ from
// the stored value; the return value is the number of lines whose level
// changed.
func (f *Folder) Fold(doc *Document, start, length int) int {
	endPos := start + length
	if endPos > doc.Len() {
		endPos = doc.Len()
	}
	if start < 0 {
		start = 0
	}

	lexType := f.Dialect
	foldComment := f.Options.Comment
	foldCompact := f.Options.Compact

	visibleChars := 0
	numBrace := 0
	changed := 0
	lx := Lexer{Dialect: lexType}

	lineCurrent := doc.LineOf(start)
	levelCurrent := 0
	if lineCurrent > 0 {
		levelCurrent = doc.FoldLevelAt(lineCurrent - 1).Next
	}
	levelNext := levelCurrent

	var ch byte
	chNext := doc.ByteAt(start)
	style := doc.StyleAt(start - 1)
	styleNext := doc.StyleAt(start)

	for i := start; i < endPos; i++ {
		chPrev := ch
		ch = chNext
		chNext = doc.ByteAt(i + 1)
		stylePrev := style
		style = styleNext
		styleNext = doc.StyleAt(i + 1)
		atEOL := (ch == '\r' && chNext != '\n') || ch == '\n'

		if foldComment && style == TokCommentBlock {
			if isMatlabOctave(lexType) {
				if lx.isNestedCommentStartAt(ch, chNext, visibleChars, i, doc) {
					levelNext++
				} else if lx.isNestedCommentEndAt(ch, chNext, visibleChars, i, doc) {
					levelNext--
				}
			} else {
				if stylePrev != TokCommentBlock {
					levelNext++
				} else if styleNext != TokCommentBlock && !atEOL {
					levelNext--
				}
			}
		}
		if foldComment && atEOL && doc.isCommentLine(lineCurrent) {
			if !doc.isCommentLine(lineCurrent-1) && doc.isCommentLine(lineCurrent+1) {
				levelNext++
			} else if doc.isCommentLine(lineCurrent-1) && !doc.isCommentLine(lineCurrent+1) {
				levelNext--
			}
		}
		if foldComment && style == TokTripleString {
			if stylePrev != TokTripleString {
				levelNext++
			} else if styleNext != TokTripleString && !atEOL {
				levelNext--
			}
		}

		if style == TokKeyword && stylePrev != TokKeyword && numBrace == 0 &&
			chPrev != '.' && chPrev != ':' {
			levelNext += f.keywordDelta(doc, i, endPos, chPrev)
		}

		if style == TokOperator {
			switch ch {
			case '{', '[', '(':
				levelNext++
				numBrace++
			case '}', ']', ')':
				levelNext--
				numBrace--
			}
		}

		if !isSpaceChar(ch) {
			visibleChars++
		}

		if atEOL || i == endPos-1 {
			if levelNext < 0 {
				levelNext = 0
			}
			lev := FoldLevel{
				Level:  levelCurrent,
				Next:   levelNext,
				Header: levelCurrent < levelNext,
				Blank:  visibleChars == 0 && foldCompact,
			}
			if doc.SetFoldLevel(lineCurrent, lev) {
				changed++
			}
			lineCurrent++
			levelCurrent = levelNext
			visibleChars = 0
		}
	}

	return changed
}

// keywordDelta returns the level change contributed by the keyword run
// starting at position i: +1 for block openers, -1 for closers, 0 otherwise.
func (f *Folder) keywordDelta(doc *Document, i, endPos int, chPrev byte) int {
	lexType := f.Dialect
	word := doc.wordAt(i, maxFoldWordLen)

	switch {
	case word == "function" &&
		(lexType == DialectJulia || doc.nextNonSpaceTab(i+len(word)) != '('):
		// A '(' straight after "function" is a call, not a definition;
		// Julia function blocks always open.
		return 1

	case word == "if" || word == "for" || word == "while" || word == "try":
		return 1

	case isMatlabOctave(lexType) &&
		(word == "switch" || word == "classdef" || word == "parfor"):
		return 1

	case lexType == DialectOctave && (word == "do" || word == "unwind_protect"):
		return 1

	case lexType == DialectScilab && word == "select":
		return 1

	case lexType == DialectJulia &&
		(word == "type" || word == "quote" || word == "let" || word == "macro" ||
			word == "do" || word == "struct" || word == "begin" || word == "module"):
		return 1

	case lexType == DialectOctave && word == "until":
		return -1

	case doc.match(i, "end"):
		// Any end-family keyword closes exactly one level, with no check of
		// which opener it matches. Malformed input can therefore under- or
		// over-close; downstream fold shapes depend on this behavior.
		return -1

	case isMatlabOctave(lexType) && chPrev != '@' &&
		(word == "methods" || word == "properties" || word == "events" || word == "enumeration"):
		return f.classdefSectionDelta(doc, i+len(word), endPos)
	}

	return 0
}

// classdefSectionDelta decides whether a MATLAB classdef section keyword
// opens a fold: it does when followed by a bare terminator or by a
// parenthesized attribute list, but not when used as an ordinary identifier.
func (f *Folder) classdefSectionDelta(doc *Document, pos, endPos int) int {
	pos = doc.skipSpaceTab(pos, endPos)
	chEnd := doc.ByteAt(pos)
	if isMatEndChar(chEnd, doc.StyleAt(pos)) {
		return 1
	}
	if chEnd == '(' {
		pos = doc.skipSpaceTab(pos+1, endPos)
		if doc.StyleAt(pos) == TokAttribute {
			return 1
		}
	}
	return 0
}

// isMatEndChar reports whether the byte after a statement keyword terminates
// the statement: end of line, ';', or trailing comment.
func isMatEndChar(ch byte, style TokenKind) bool {
	return ch == '\r' || ch == '\n' || ch == ';' ||
		style == TokComment || style == TokCommentBlock
}
