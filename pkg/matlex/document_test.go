package matlex

import "testing"

func TestDocument_LineIndex(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		lineCount  int
		lineStarts []int
	}{
		{"empty", "", 1, []int{0}},
		{"no newline", "abc", 1, []int{0}},
		{"trailing newline", "abc\n", 2, []int{0, 4}},
		{"crlf", "a\r\nb\r\n", 3, []int{0, 3, 6}},
		{"blank lines", "\n\n", 3, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument([]byte(tt.content))
			if got := doc.LineCount(); got != tt.lineCount {
				t.Fatalf("LineCount() = %d, want %d", got, tt.lineCount)
			}
			for line, want := range tt.lineStarts {
				if got := doc.LineStart(line); got != want {
					t.Errorf("LineStart(%d) = %d, want %d", line, got, want)
				}
			}
			// Past-the-end line starts act as exclusive ends.
			if got := doc.LineStart(tt.lineCount); got != len(tt.content) {
				t.Errorf("LineStart(count) = %d, want %d", got, len(tt.content))
			}
		})
	}
}

func TestDocument_LineOf(t *testing.T) {
	doc := NewDocument([]byte("ab\ncd\n"))
	tests := []struct {
		pos  int
		want int
	}{
		{-1, 0}, {0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {99, 2},
	}
	for _, tt := range tests {
		if got := doc.LineOf(tt.pos); got != tt.want {
			t.Errorf("LineOf(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestDocument_OutOfRangeReads(t *testing.T) {
	doc := NewDocument([]byte("x"))
	if got := doc.ByteAt(-1); got != 0 {
		t.Errorf("ByteAt(-1) = %d, want 0", got)
	}
	if got := doc.ByteAt(1); got != 0 {
		t.Errorf("ByteAt(1) = %d, want 0", got)
	}
	if got := doc.StyleAt(5); got != TokDefault {
		t.Errorf("StyleAt(5) = %v, want default", got)
	}
	if got := doc.LineState(-1); got != 0 {
		t.Errorf("LineState(-1) = %d, want 0", got)
	}
	if got := doc.FoldLevelAt(9); got != (FoldLevel{}) {
		t.Errorf("FoldLevelAt(9) = %+v, want zero", got)
	}
}

func TestDocument_SetFoldLevelReportsChange(t *testing.T) {
	doc := NewDocument([]byte("x\ny\n"))
	lev := FoldLevel{Level: 1, Next: 2, Header: true}

	if !doc.SetFoldLevel(0, lev) {
		t.Errorf("first write reported no change")
	}
	if doc.SetFoldLevel(0, lev) {
		t.Errorf("identical rewrite reported a change")
	}
	if doc.SetFoldLevel(99, lev) {
		t.Errorf("out-of-range write reported a change")
	}
}

func TestDocument_IsCommentLine(t *testing.T) {
	src := "% note\n  % indented\nx = 1\n"
	doc := NewDocument([]byte(src))
	NewLexer(DialectMatlab, testTables()).TokenizeAll(doc)

	tests := []struct {
		line int
		want bool
	}{
		{0, true}, {1, true}, {2, false}, {-1, false}, {10, false},
	}
	for _, tt := range tests {
		if got := doc.isCommentLine(tt.line); got != tt.want {
			t.Errorf("isCommentLine(%d) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestDocument_WordAtTruncates(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	doc := NewDocument(long)
	if got := doc.wordAt(0, 10); len(got) != 10 {
		t.Errorf("wordAt truncated to %d bytes, want 10", len(got))
	}
}
