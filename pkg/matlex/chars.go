package matlex

// Byte-level character classes used by both scan passes. The engine is
// byte-oriented and total: bytes outside every class degrade to TokDefault.

// isSpaceChar reports ASCII whitespace including line breaks.
func isSpaceChar(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\v' || ch == '\f' || ch == '\r'
}

// isSpaceOrTab reports horizontal whitespace only.
func isSpaceOrTab(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isDigitChar(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigitChar(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isWordChar reports identifier constituents: letters, digits, underscore.
func isWordChar(ch byte) bool {
	return isAlpha(ch) || isDigitChar(ch) || ch == '_'
}

// isPunctOperator reports the base operator set shared by all dialects.
func isPunctOperator(ch byte) bool {
	switch ch {
	case '%', '^', '&', '*', '(', ')', '-', '+', '=', '|',
		'{', '}', '[', ']', ':', ';', '<', '>', ',', '/', '?', '!', '.', '~':
		return true
	default:
		return false
	}
}

// isMatOperator extends the base operator set with the MATLAB-family extras:
// function handles, matrix left-divide, and Gnuplot/shell variables.
func isMatOperator(ch byte) bool {
	return isPunctOperator(ch) || ch == '@' || ch == '\\' || ch == '$'
}

// isMatNumber reports whether ch continues a numeric literal given the
// previous byte. Accepts digits, a single '.' (not after another '.'), an
// exponent sign after e/E, the exponent marker itself, and the complex-unit
// suffixes i/j/I/J after a digit.
func isMatNumber(ch, chPrev byte) bool {
	return isDigitChar(ch) || (ch == '.' && chPrev != '.') ||
		((ch == '+' || ch == '-') && (chPrev == 'e' || chPrev == 'E')) ||
		(isDigitChar(chPrev) && (ch == 'e' || ch == 'E' ||
			ch == 'i' || ch == 'j' || ch == 'I' || ch == 'J'))
}

// isInvalidFileName reports bytes that terminate a shell command line:
// whitespace, quotes, redirection, and wildcard characters.
func isInvalidFileName(ch byte) bool {
	return isSpaceChar(ch) || ch == '<' || ch == '>' || ch == '/' || ch == '\\' ||
		ch == '\'' || ch == '"' || ch == '|' || ch == '*' || ch == '?'
}
