package parser

import "encoding/json"

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     jsonSpan    `json:"span"`
	Token    string      `json:"token,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Kind: n.Kind.String(),
		Span: jsonSpan{Offset: n.Span.Offset, Length: n.Span.Length},
	}
	if n.Token != nil {
		jn.Token = n.Token.Text
	}
	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = child.toJSON()
		}
	}
	return jn
}

// MarshalJSON encodes the tree as its root node.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.root.toJSON())
}
