package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"ferrite/internal/ast"
	"ferrite/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// FormatASTTree draws the tree top-down, parents centred over children.
// Wide files produce very wide output; FormatASTPretty is the everyday view.
func FormatASTTree(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet, text string) error {
	root, err := BuildASTOutput(builder, fileID, text)
	if err != nil {
		return err
	}
	block := renderTree(toTreeNode(&root, fs))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// toTreeNode keeps labels ASCII so byte length equals display width.
func toTreeNode(n *ASTNodeOutput, fs *source.FileSet) *treeNode {
	node := &treeNode{label: n.label(fs, strconv.QuoteToASCII)}
	for i := range n.Children {
		node.children = append(node.children, toTreeNode(&n.Children[i], fs))
	}
	return node
}

// treeGap is the number of blank columns between sibling subtrees.
const treeGap = 3

// renderTree lays out the children side by side, then centres the label
// over the first and last child roots. root is the column the parent's
// connector should point at.
func renderTree(node *treeNode) treeBlock {
	labelWidth := len(node.label)
	if len(node.children) == 0 {
		return treeBlock{lines: []string{node.label}, width: labelWidth, root: labelWidth / 2}
	}

	kids := make([]treeBlock, len(node.children))
	roots := make([]int, len(kids))
	rowWidth, height := 0, 0
	for i, child := range node.children {
		kids[i] = renderTree(child)
		if i > 0 {
			rowWidth += treeGap
		}
		roots[i] = rowWidth + kids[i].root
		rowWidth += kids[i].width
		height = max(height, len(kids[i].lines))
	}

	// метка над серединой детей; если не влезает слева, сдвигаем детей вправо
	labelStart := (roots[0]+roots[len(roots)-1])/2 - labelWidth/2
	offset := 0
	if labelStart < 0 {
		offset, labelStart = -labelStart, 0
	}
	width := max(rowWidth+offset, labelStart+labelWidth)
	rootCol := labelStart + labelWidth/2

	lines := make([]string, 0, height+2)
	lines = append(lines, padRight(strings.Repeat(" ", labelStart)+node.label, width))

	connector := []byte(strings.Repeat(" ", width))
	connector[rootCol] = '|'
	for _, r := range roots {
		switch col := r + offset; {
		case col < rootCol:
			connector[col] = '/'
		case col > rootCol:
			connector[col] = '\\'
		default:
			connector[col] = '|'
		}
	}
	lines = append(lines, string(connector))

	for row := range height {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", offset))
		for i, kid := range kids {
			if i > 0 {
				sb.WriteString(strings.Repeat(" ", treeGap))
			}
			line := ""
			if row < len(kid.lines) {
				line = kid.lines[row]
			}
			sb.WriteString(padRight(line, kid.width))
		}
		lines = append(lines, padRight(sb.String(), width))
	}
	return treeBlock{lines: lines, width: width, root: rootCol}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
