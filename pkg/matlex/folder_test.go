package matlex

import "testing"

// fold tokenizes then folds, since the folder reads the recorded styles.
func fold(t *testing.T, d Dialect, opts FoldOptions, src string) *Document {
	t.Helper()
	doc := NewDocument([]byte(src))
	NewLexer(d, testTables()).TokenizeAll(doc)
	NewFolder(d, opts).FoldAll(doc)
	return doc
}

type levelWant struct {
	level  int
	next   int
	header bool
}

func checkLevels(t *testing.T, doc *Document, want []levelWant) {
	t.Helper()
	for line, w := range want {
		got := doc.FoldLevelAt(line)
		if got.Level != w.level || got.Next != w.next || got.Header != w.header {
			t.Errorf("line %d: level=%d next=%d header=%v, want level=%d next=%d header=%v",
				line, got.Level, got.Next, got.Header, w.level, w.next, w.header)
		}
	}
}

func TestFold_FunctionIfEnd(t *testing.T) {
	doc := fold(t, DialectMatlab, DefaultFoldOptions(),
		"function f()\nif x\nend\nend\n")
	checkLevels(t, doc, []levelWant{
		{0, 1, true},
		{1, 2, true},
		{2, 1, false},
		{1, 0, false},
	})
}

func TestFold_FunctionDefinitionVsCall(t *testing.T) {
	t.Run("definition opens", func(t *testing.T) {
		doc := fold(t, DialectMatlab, DefaultFoldOptions(),
			"function y = f(x)\nend\n")
		checkLevels(t, doc, []levelWant{
			{0, 1, true},
			{1, 0, false},
		})
	})

	t.Run("call does not open", func(t *testing.T) {
		doc := fold(t, DialectMatlab, DefaultFoldOptions(),
			"function(x)\nend\n")
		checkLevels(t, doc, []levelWant{
			{0, 0, false},
			{0, 0, false}, // the stray end clamps at zero
		})
	})

	t.Run("julia always opens", func(t *testing.T) {
		doc := fold(t, DialectJulia, DefaultFoldOptions(),
			"function f()\nend\n")
		checkLevels(t, doc, []levelWant{
			{0, 1, true},
			{1, 0, false},
		})
	})
}

func TestFold_EndFamilyPrefixMatch(t *testing.T) {
	doc := fold(t, DialectOctave, DefaultFoldOptions(),
		"if x\nendif\nwhile y\nendwhile\n")
	checkLevels(t, doc, []levelWant{
		{0, 1, true},
		{1, 0, false},
		{0, 1, true},
		{1, 0, false},
	})
}

func TestFold_DottedKeywordIgnored(t *testing.T) {
	doc := fold(t, DialectMatlab, DefaultFoldOptions(), "a.end = 1\n")
	checkLevels(t, doc, []levelWant{{0, 0, false}})
}

func TestFold_KeywordInsideBracketsIgnored(t *testing.T) {
	// end as the last-index subscript must not close a level.
	doc := fold(t, DialectMatlab, DefaultFoldOptions(), "y = x(end)\n")
	checkLevels(t, doc, []levelWant{{0, 0, false}})
}

func TestFold_Brackets(t *testing.T) {
	doc := fold(t, DialectMatlab, DefaultFoldOptions(),
		"x = [1, 2, ...\n3, 4];\n")
	checkLevels(t, doc, []levelWant{
		{0, 1, true},
		{1, 0, false},
	})
}

func TestFold_OctaveDoUntil(t *testing.T) {
	doc := fold(t, DialectOctave, DefaultFoldOptions(),
		"do\nx = x + 1\nuntil x > 3\n")
	checkLevels(t, doc, []levelWant{
		{0, 1, true},
		{1, 1, false},
		{1, 0, false},
	})
}

func TestFold_ClassdefSections(t *testing.T) {
	t.Run("attribute list", func(t *testing.T) {
		doc := fold(t, DialectMatlab, DefaultFoldOptions(),
			"classdef Foo\nmethods (Static)\nend\nend\n")
		checkLevels(t, doc, []levelWant{
			{0, 1, true},
			{1, 2, true},
			{2, 1, false},
			{1, 0, false},
		})
	})

	t.Run("bare section", func(t *testing.T) {
		doc := fold(t, DialectMatlab, DefaultFoldOptions(),
			"classdef Foo\nproperties\nend\nend\n")
		checkLevels(t, doc, []levelWant{
			{0, 1, true},
			{1, 2, true},
			{2, 1, false},
			{1, 0, false},
		})
	})

	t.Run("call form does not open", func(t *testing.T) {
		doc := fold(t, DialectMatlab, DefaultFoldOptions(),
			"m = methods()\n")
		checkLevels(t, doc, []levelWant{{0, 0, false}})
	})
}

func TestFold_NestedCommentRegions(t *testing.T) {
	doc := fold(t, DialectMatlab, FoldOptions{Comment: true, Compact: true},
		"%{\n%{\nx\n%}\n%}\n")
	checkLevels(t, doc, []levelWant{
		{0, 1, true},
		{1, 2, true},
		{2, 2, false},
		{2, 1, false},
		{1, 0, false},
	})
}

func TestFold_FlatBlockComment(t *testing.T) {
	doc := fold(t, DialectScilab, FoldOptions{Comment: true, Compact: true},
		"/* one\ntwo */\nx\n")
	checkLevels(t, doc, []levelWant{
		{0, 1, true},
		{1, 0, false},
		{0, 0, false},
	})
}

func TestFold_CommentRuns(t *testing.T) {
	doc := fold(t, DialectMatlab, FoldOptions{Comment: true, Compact: true},
		"% a\n% b\n% c\nx\n")
	checkLevels(t, doc, []levelWant{
		{0, 1, true},
		{1, 1, false},
		{1, 0, false},
		{0, 0, false},
	})
}

func TestFold_CommentsIgnoredByDefault(t *testing.T) {
	doc := fold(t, DialectMatlab, DefaultFoldOptions(),
		"% a\n% b\nx\n")
	checkLevels(t, doc, []levelWant{
		{0, 0, false},
		{0, 0, false},
		{0, 0, false},
	})
}

func TestFold_TripleStringRegion(t *testing.T) {
	doc := fold(t, DialectJulia, FoldOptions{Comment: true, Compact: true},
		"s = \"\"\"\na\n\"\"\"\n")
	checkLevels(t, doc, []levelWant{
		{0, 1, true},
		{1, 1, false},
		{1, 0, false},
	})
}

func TestFold_BlankLineFlag(t *testing.T) {
	src := "x = 1\n\ny = 2\n"

	doc := fold(t, DialectMatlab, FoldOptions{Compact: true}, src)
	if !doc.FoldLevelAt(1).Blank {
		t.Errorf("compact on: blank line not flagged")
	}

	doc = fold(t, DialectMatlab, FoldOptions{Compact: false}, src)
	if doc.FoldLevelAt(1).Blank {
		t.Errorf("compact off: blank line flagged")
	}
}

func TestFold_PartialRefoldIsStable(t *testing.T) {
	src := "function f()\nif x\ny = 1\nend\nend\n"
	doc := NewDocument([]byte(src))
	lx := NewLexer(DialectMatlab, testTables())
	lx.TokenizeAll(doc)

	folder := NewFolder(DialectMatlab, DefaultFoldOptions())
	if changed := folder.FoldAll(doc); changed == 0 {
		t.Fatalf("initial fold reported no changed lines")
	}

	// Refolding any line suffix seeds from the stored level of the line
	// above and must reproduce the same levels, reporting zero changes.
	for line := 1; line < doc.LineCount(); line++ {
		start := doc.LineStart(line)
		if changed := folder.Fold(doc, start, doc.Len()-start); changed != 0 {
			t.Errorf("refold from line %d changed %d lines", line, changed)
		}
	}
}

func TestFold_NegativeLevelClamped(t *testing.T) {
	doc := fold(t, DialectMatlab, DefaultFoldOptions(), "end\nend\nif x\nend\n")
	checkLevels(t, doc, []levelWant{
		{0, 0, false},
		{0, 0, false},
		{0, 1, true},
		{1, 0, false},
	})
}
