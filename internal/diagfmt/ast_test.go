package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ferrite/internal/driver"
	"ferrite/internal/lexer"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

func parseForFormat(t *testing.T, src string) (*driver.SourceTree, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("fmt.fe", []byte(src))
	tree, err := driver.ParseSource(id, src)
	require.NoError(t, err)
	return tree, fs
}

func parseTokensOnly(t *testing.T, src string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("tokens.fe", []byte(src))
	toks, _, err := lexer.ReadTokens(id, src)
	require.NoError(t, err)
	return toks, fs
}

func TestBuildASTOutput(t *testing.T) {
	src := "pub fn add(a: i64) -> i64 { a + 1 }"
	tree, _ := parseForFormat(t, src)

	root, err := BuildASTOutput(tree.Builder, tree.File, src)
	require.NoError(t, err)
	assert.Equal(t, "File", root.Type)
	require.Len(t, root.Children, 1)

	fn := root.Children[0]
	assert.Equal(t, "Item", fn.Type)
	assert.Equal(t, "Fn", fn.Kind)
	assert.Equal(t, "public", fn.Fields["vis"])
	require.NotEmpty(t, fn.Children)
	assert.Equal(t, "Symbol", fn.Children[0].Type)
	assert.Equal(t, "add", fn.Children[0].Text)
}

func TestFormatASTPretty(t *testing.T) {
	src := "fn f() { 1 + 2 }"
	tree, fs := parseForFormat(t, src)

	var buf bytes.Buffer
	require.NoError(t, FormatASTPretty(&buf, tree.Builder, tree.File, fs, src))
	out := buf.String()
	for _, want := range []string{
		"fmt.fe File (span: 1:1-1:17)\n",
		"└─ Item Fn (span: 1:1-1:17)\n",
		"Symbol \"f\"",
		"Expr Binary \"+\"",
		"Expr Integer \"2\" (span: 1:14-1:15)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestFormatASTTree(t *testing.T) {
	src := "mod m;"
	tree, _ := parseForFormat(t, src)

	var buf bytes.Buffer
	require.NoError(t, FormatASTTree(&buf, tree.Builder, tree.File, nil, src))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[0], "File (span: 0..6)")
	assert.Contains(t, lines[len(lines)-1], `Symbol "m" (span: 4..5)`)
}

func TestFormatASTJSONAndYAML(t *testing.T) {
	src := "use a::b;"
	tree, _ := parseForFormat(t, src)

	var jsonBuf bytes.Buffer
	require.NoError(t, FormatASTJSON(&jsonBuf, tree.Builder, tree.File, src))
	var fromJSON ASTNodeOutput
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))

	var yamlBuf bytes.Buffer
	require.NoError(t, FormatASTYAML(&yamlBuf, tree.Builder, tree.File, src))
	var fromYAML ASTNodeOutput
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))

	for _, root := range []ASTNodeOutput{fromJSON, fromYAML} {
		require.Len(t, root.Children, 1)
		use := root.Children[0]
		assert.Equal(t, "Use", use.Kind)
		require.Len(t, use.Children, 2)
		assert.Equal(t, "a", use.Children[0].Text)
		assert.Equal(t, "b", use.Children[1].Text)
		assert.Equal(t, uint32(7), use.Children[1].Span.Start)
	}
}

func TestFormatTokens(t *testing.T) {
	src := "fn f"
	toks, fs := parseTokensOnly(t, src)

	var pretty bytes.Buffer
	require.NoError(t, FormatTokensPretty(&pretty, toks, fs.Get(0)))
	assert.Equal(t, "  1: KwFn             \"fn\" at 1:1-1:3\n  2: Label            \"f\" at 1:4-1:5\n", pretty.String())

	var js bytes.Buffer
	require.NoError(t, FormatTokensJSON(&js, toks, src))
	var out []TokenOutput
	require.NoError(t, json.Unmarshal(js.Bytes(), &out))
	assert.Equal(t, []TokenOutput{
		{Kind: "KwFn", Text: "fn", Start: 0, End: 2},
		{Kind: "Label", Text: "f", Start: 3, End: 4},
	}, out)
}

func TestRenderTreeLayout(t *testing.T) {
	tests := []struct {
		name string
		node *treeNode
		want []string
	}{
		{
			name: "two leaves",
			node: &treeNode{label: "ab", children: []*treeNode{{label: "x"}, {label: "y"}}},
			want: []string{" ab  ", "/ | \\", "x   y"},
		},
		{
			name: "label wider than children",
			node: &treeNode{label: "root", children: []*treeNode{{label: "x"}}},
			want: []string{"root", "  | ", "  x "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := renderTree(tt.node)
			assert.Equal(t, tt.want, block.lines)
			for _, line := range block.lines {
				assert.Len(t, line, block.width)
			}
		})
	}
}
