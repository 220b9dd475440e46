package matlex

// TokenKind classifies a span of source bytes. Exactly one kind is active at
// any scan position; the zero value is TokDefault so an unstyled byte reads
// as plain text.
type TokenKind uint8

const (
	TokDefault TokenKind = iota
	TokComment
	TokCommentBlock
	TokKeyword
	TokAttribute
	TokInternalCommand
	TokFunction
	TokFunction1
	TokFunction2
	TokFunction3
	TokFunction4
	TokIdentifier
	TokNumber
	TokHexNumber
	TokOperator
	TokString
	TokDoubleQuoteString
	TokRawString
	TokTripleString
	TokRegex
	TokBacktick
	TokCommand
	TokCallback
	TokVariable
)

// String returns a short name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokDefault:
		return "default"
	case TokComment:
		return "comment"
	case TokCommentBlock:
		return "comment-block"
	case TokKeyword:
		return "keyword"
	case TokAttribute:
		return "attribute"
	case TokInternalCommand:
		return "internal-command"
	case TokFunction:
		return "function"
	case TokFunction1:
		return "function1"
	case TokFunction2:
		return "function2"
	case TokFunction3:
		return "function3"
	case TokFunction4:
		return "function4"
	case TokIdentifier:
		return "identifier"
	case TokNumber:
		return "number"
	case TokHexNumber:
		return "hex-number"
	case TokOperator:
		return "operator"
	case TokString:
		return "string"
	case TokDoubleQuoteString:
		return "double-quote-string"
	case TokRawString:
		return "raw-string"
	case TokTripleString:
		return "triple-string"
	case TokRegex:
		return "regex"
	case TokBacktick:
		return "backtick"
	case TokCommand:
		return "command"
	case TokCallback:
		return "callback"
	case TokVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Span is a classified half-open byte range [Start, End) in the source.
// Spans produced by a single Tokenize call are contiguous, non-overlapping,
// and cover exactly the requested range.
type Span struct {
	// Kind classifies what this span represents.
	Kind TokenKind

	// Start is the byte index where this span begins (inclusive).
	Start int

	// End is the byte index where this span ends (exclusive).
	End int
}

// Text returns the source text of this span from the given content.
func (s Span) Text(content []byte) []byte {
	if s.Start < 0 || s.End > len(content) || s.Start > s.End {
		return nil
	}
	return content[s.Start:s.End]
}

// Len returns the length of this span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// ValidateSpans checks that a span slice is contiguous, non-overlapping, and
// covers exactly [start, end). Returns true if valid.
func ValidateSpans(spans []Span, start, end int) bool {
	if len(spans) == 0 {
		return start == end
	}
	if spans[0].Start != start {
		return false
	}
	if spans[len(spans)-1].End != end {
		return false
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start != spans[i-1].End {
			return false
		}
	}
	return true
}
