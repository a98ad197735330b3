package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// FromHTML copies a parsed x/net/html tree into a new arena. It returns the
// tree and the id of the node corresponding to n. A document node maps onto
// the tree's root; any other node is attached under a fresh document root.
func FromHTML(n *html.Node) (*Tree, NodeID, error) {
	if n == nil {
		return nil, NoNode, fmt.Errorf("nil html node: %w", ErrInvalidNode)
	}

	t := New()
	if n.Type == html.DocumentNode {
		if err := t.copyChildren(n, t.Root()); err != nil {
			return nil, NoNode, err
		}
		return t, t.Root(), nil
	}

	id, ok := t.copyNode(n)
	if !ok {
		return nil, NoNode, fmt.Errorf("unsupported html node type %d: %w", n.Type, ErrInvalidNode)
	}
	if err := t.AppendChild(t.Root(), id); err != nil {
		return nil, NoNode, err
	}
	if err := t.copyChildren(n, id); err != nil {
		return nil, NoNode, err
	}
	return t, id, nil
}

func (t *Tree) copyChildren(src *html.Node, dst NodeID) error {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		id, ok := t.copyNode(c)
		if !ok {
			continue
		}
		if err := t.AppendChild(dst, id); err != nil {
			return err
		}
		if err := t.copyChildren(c, id); err != nil {
			return err
		}
	}
	return nil
}

// copyNode adds a detached copy of n's payload. Nested documents and error
// nodes have no counterpart and are skipped.
func (t *Tree) copyNode(n *html.Node) (NodeID, bool) {
	switch n.Type {
	case html.ElementNode:
		attrs := make([]Attribute, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, Attribute{Key: a.Key, Val: a.Val})
		}
		return t.NewElement(n.Data, attrs...), true
	case html.TextNode, html.RawNode:
		return t.NewText(n.Data), true
	case html.CommentNode:
		return t.NewComment(n.Data), true
	case html.DoctypeNode:
		return t.NewDoctype(n.Data), true
	}
	return NoNode, false
}
