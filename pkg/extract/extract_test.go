package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomatlex/pkg/matlex"
)

const document = `# Title

Some prose.

` + "```matlab" + `
x = 1;
y = x';
` + "```" + `

More prose.

` + "```python" + `
print("skipped")
` + "```" + `

` + "```julia" + `
f(x) = 2x
` + "```" + `
`

func TestBlocks(t *testing.T) {
	blocks, err := New().Blocks(context.Background(), []byte(document))
	require.NoError(t, err)
	require.Len(t, blocks, 2, "unsupported fences must be skipped")

	assert.Equal(t, matlex.DialectMatlab, blocks[0].Dialect)
	assert.Equal(t, "x = 1;\ny = x';\n", string(blocks[0].Content))
	assert.Equal(t, 5, blocks[0].StartLine)

	assert.Equal(t, matlex.DialectJulia, blocks[1].Dialect)
	assert.Equal(t, "f(x) = 2x\n", string(blocks[1].Content))
}

func TestBlocks_Empty(t *testing.T) {
	blocks, err := New().Blocks(context.Background(), []byte("plain text, no fences"))
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestBlocks_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Blocks(ctx, []byte(document))
	assert.Error(t, err)
}

func TestBlocks_InfoWithAttributes(t *testing.T) {
	src := "```octave attr=1\nx = 1\n```\n"
	blocks, err := New().Blocks(context.Background(), []byte(src))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, matlex.DialectOctave, blocks[0].Dialect)
}

func TestBlocks_IndentedCodeIgnored(t *testing.T) {
	src := "para\n\n    x = 1\n"
	blocks, err := New().Blocks(context.Background(), []byte(src))
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
