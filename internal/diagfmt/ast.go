package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"ferrite/internal/ast"
	"ferrite/internal/source"
)

// ASTNodeOutput is a serialisable view of one AST node and its subtree.
type ASTNodeOutput struct {
	Type     string          `json:"type" yaml:"type"`
	Kind     string          `json:"kind,omitempty" yaml:"kind,omitempty"`
	Span     source.Span     `json:"span" yaml:"span,flow"`
	Text     string          `json:"text,omitempty" yaml:"text,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty"`
}

// BuildASTOutput converts the lowered file into ASTNodeOutput. text is the
// file content, used to show symbol names.
func BuildASTOutput(builder *ast.Builder, fileID ast.FileID, text string) (ASTNodeOutput, error) {
	if builder == nil || builder.Files.Get(fileID) == nil {
		return ASTNodeOutput{}, fmt.Errorf("file not found")
	}
	return buildNode(builder, ast.FileNode(fileID), text), nil
}

func buildNode(b *ast.Builder, n ast.Node, text string) ASTNodeOutput {
	out := describeNode(b, n, text)
	out.Span = b.Span(n)
	for _, c := range b.Children(n) {
		out.Children = append(out.Children, buildNode(b, c, text))
	}
	return out
}

func describeNode(b *ast.Builder, n ast.Node, text string) ASTNodeOutput {
	switch n.Kind {
	case ast.NodeFile:
		return ASTNodeOutput{Type: "File"}
	case ast.NodeItem:
		it := b.Items.Get(ast.ItemID(n.ID))
		out := ASTNodeOutput{Type: "Item", Kind: it.Kind.String()}
		if it.Vis.Kind != ast.VisPrivate {
			out.Fields = map[string]any{"vis": it.Vis.Kind.String()}
		}
		if u, ok := b.Items.Use(ast.ItemID(n.ID)); ok && u.Module.Global {
			if out.Fields == nil {
				out.Fields = map[string]any{}
			}
			out.Fields["global"] = true
		}
		return out
	case ast.NodeType:
		return ASTNodeOutput{Type: "Type", Kind: b.Types.Get(ast.TypeID(n.ID)).Kind.String()}
	case ast.NodePattern:
		return ASTNodeOutput{Type: "Pattern", Kind: b.Patterns.Get(ast.PatternID(n.ID)).Kind.String()}
	case ast.NodeExpr:
		return describeExpr(b, ast.ExprID(n.ID))
	case ast.NodeStmt:
		return ASTNodeOutput{Type: "Stmt", Kind: b.Stmts.Get(ast.StmtID(n.ID)).Kind.String()}
	case ast.NodeBlock:
		return ASTNodeOutput{Type: "Block"}
	case ast.NodeSymbol:
		return ASTNodeOutput{
			Type:   "Symbol",
			Text:   n.Sym.Span.Text(text),
			Fields: map[string]any{"id": n.Sym.ID.String()},
		}
	}
	return ASTNodeOutput{Type: fmt.Sprintf("Node(%d)", n.Kind)}
}

func describeExpr(b *ast.Builder, id ast.ExprID) ASTNodeOutput {
	e := b.Exprs.Get(id)
	out := ASTNodeOutput{Type: "Expr", Kind: e.Kind.String()}
	switch e.Kind {
	case ast.ExprBool:
		v, _ := b.Exprs.Bool(id)
		out.Text = fmt.Sprint(v.Value)
	case ast.ExprInteger:
		v, _ := b.Exprs.Integer(id)
		out.Text = v.Value.String()
	case ast.ExprBinary:
		v, _ := b.Exprs.Binary(id)
		out.Text = v.Op.String()
	}
	return out
}

// label renders the one-line summary used by the pretty and tree formats.
func (n *ASTNodeOutput) label(fs *source.FileSet, quote func(string) string) string {
	var sb strings.Builder
	sb.WriteString(n.Type)
	if n.Kind != "" {
		sb.WriteString(" " + n.Kind)
	}
	if n.Text != "" {
		sb.WriteString(" " + quote(n.Text))
	}
	if vis, ok := n.Fields["vis"]; ok {
		fmt.Fprintf(&sb, " [%v]", vis)
	}
	fmt.Fprintf(&sb, " (span: %s)", formatSpan(n.Span, fs))
	return sb.String()
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil || fs.Get(sp.File) == nil {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// FormatASTPretty prints the tree with ├─ └─ connectors, one node per line.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet, text string) error {
	root, err := BuildASTOutput(builder, fileID, text)
	if err != nil {
		return err
	}
	header := root.label(fs, quoteText)
	if fs != nil {
		if f := fs.Get(root.Span.File); f != nil {
			header = fmt.Sprintf("%s %s", f.FormatPath("auto", fs.BaseDir()), header)
		}
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	return writePrettyChildren(w, &root, fs, "")
}

func writePrettyChildren(w io.Writer, n *ASTNodeOutput, fs *source.FileSet, prefix string) error {
	for i := range n.Children {
		child := &n.Children[i]
		connector, next := "├─ ", "│  "
		if i == len(n.Children)-1 {
			connector, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, child.label(fs, quoteText)); err != nil {
			return err
		}
		if err := writePrettyChildren(w, child, fs, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func quoteText(s string) string { return fmt.Sprintf("%q", s) }

func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID, text string) error {
	root, err := BuildASTOutput(builder, fileID, text)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

func FormatASTYAML(w io.Writer, builder *ast.Builder, fileID ast.FileID, text string) error {
	root, err := BuildASTOutput(builder, fileID, text)
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return err
	}
	return encoder.Close()
}
