package parser

import (
	"strconv"
	"strings"
)

// Node is one vertex of the concrete syntax tree. Token leaves carry the
// exact source text; composite nodes carry only children. A node belongs
// to exactly one parent and is never shared or mutated after the parse
// returns.
type Node struct {
	Kind     SyntaxKind
	Span     Span
	Children []*Node
	Token    *Token
}

// NewTokenNode wraps a token in a leaf node.
func NewTokenNode(tok Token) *Node {
	t := tok
	return &Node{Kind: tok.Kind, Span: tok.Span, Token: &t}
}

// IsToken reports whether the node is a token leaf.
func (n *Node) IsToken() bool {
	return n.Token != nil
}

// AddChild appends a child and widens the parent span to cover it.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	if len(n.Children) == 0 {
		n.Span = child.Span
	} else {
		n.Span.Length = child.Span.End() - n.Span.Offset
	}
	n.Children = append(n.Children, child)
}

func (n *Node) FirstChildOfKind(kind SyntaxKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind SyntaxKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// ContainsKind reports whether the node or any descendant has the kind.
func (n *Node) ContainsKind(kind SyntaxKind) bool {
	if n.Kind == kind {
		return true
	}
	for _, child := range n.Children {
		if child.ContainsKind(kind) {
			return true
		}
	}
	return false
}

// FindDescendantsOfKind collects every descendant with the kind, in
// source order. The node itself is not included.
func (n *Node) FindDescendantsOfKind(kind SyntaxKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
		result = append(result, child.FindDescendantsOfKind(kind)...)
	}
	return result
}

// TokenText returns the token's text for leaves, "" for composites.
func (n *Node) TokenText() string {
	if n.Token != nil {
		return n.Token.Text
	}
	return ""
}

// Text reconstructs the exact source text covered by this node by
// concatenating its token leaves in order.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Token != nil {
		b.WriteString(n.Token.Text)
		return
	}
	for _, child := range n.Children {
		child.writeText(b)
	}
}

func (n *Node) String() string {
	var b strings.Builder
	n.stringIndent(&b, 0)
	return b.String()
}

func (n *Node) stringIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
	b.WriteString(n.Kind.String())
	if n.Token != nil {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(n.Token.Text))
	}
	b.WriteString("\n")
	for _, child := range n.Children {
		child.stringIndent(b, indent+1)
	}
}

// withoutKinds returns a deep copy of the node with every child subtree
// whose root kind is in drop removed. Returns nil if the node itself is
// dropped.
func (n *Node) withoutKinds(drop map[SyntaxKind]bool) *Node {
	if drop[n.Kind] {
		return nil
	}
	copied := &Node{Kind: n.Kind, Span: n.Span, Token: n.Token}
	for _, child := range n.Children {
		if kept := child.withoutKinds(drop); kept != nil {
			copied.Children = append(copied.Children, kept)
		}
	}
	return copied
}

// Tree is the result of parsing one source text. All queries are pure
// reads; the tree never changes after FromText returns it.
type Tree struct {
	Origin string
	root   *Node
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// RootKind returns the kind of the root node.
func (t *Tree) RootKind() SyntaxKind {
	return t.root.Kind
}

// ChildCount returns the number of direct children of the root.
func (t *Tree) ChildCount() int {
	return len(t.root.Children)
}

// Children returns the direct children of the root, in source order.
func (t *Tree) Children() []*Node {
	return t.root.Children
}

func (t *Tree) FirstChild() *Node {
	if len(t.root.Children) == 0 {
		return nil
	}
	return t.root.Children[0]
}

func (t *Tree) LastChild() *Node {
	if len(t.root.Children) == 0 {
		return nil
	}
	return t.root.Children[len(t.root.Children)-1]
}

// ChildAt returns the root child at index, or nil when out of range.
func (t *Tree) ChildAt(index int) *Node {
	if index < 0 || index >= len(t.root.Children) {
		return nil
	}
	return t.root.Children[index]
}

// ContainsKind reports whether any node in the tree has the kind.
func (t *Tree) ContainsKind(kind SyntaxKind) bool {
	return t.root.ContainsKind(kind)
}

// FindChildrenByKind collects every node in the tree with the kind, in
// source order.
func (t *Tree) FindChildrenByKind(kind SyntaxKind) []*Node {
	if t.root.Kind == kind {
		return append([]*Node{t.root}, t.root.FindDescendantsOfKind(kind)...)
	}
	return t.root.FindDescendantsOfKind(kind)
}

// Text reconstructs the input byte-for-byte, including any text covered
// by Unknown recovery nodes.
func (t *Tree) Text() string {
	return t.root.Text()
}

// DebugTree renders the tree as an indented kind dump, two spaces per
// level, token text quoted. Stable across runs for identical input.
func (t *Tree) DebugTree() string {
	return t.root.String()
}

// WithoutKinds returns a filtered copy of the tree with every subtree
// rooted at one of the given kinds removed. The filtered tree is no
// longer lossless; the receiver is unchanged.
func (t *Tree) WithoutKinds(kinds ...SyntaxKind) *Tree {
	drop := make(map[SyntaxKind]bool, len(kinds))
	for _, kind := range kinds {
		drop[kind] = true
	}
	root := t.root.withoutKinds(drop)
	if root == nil {
		root = &Node{Kind: t.root.Kind, Span: Span{Offset: t.root.Span.Offset}}
	}
	return &Tree{Origin: t.Origin, root: root}
}
