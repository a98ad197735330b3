package dom

import (
	"errors"
	"fmt"
)

// NodeID addresses a node inside a Tree.
type NodeID int

// NoNode is the parent of a root or detached node.
const NoNode NodeID = -1

// Kind is the payload variant of a node.
type Kind uint8

const (
	KindDocument Kind = iota
	KindElement
	KindText
	KindComment
	KindDoctype
	KindProcessingInstruction
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindDoctype:
		return "Doctype"
	case KindProcessingInstruction:
		return "ProcessingInstruction"
	default:
		return "Unknown"
	}
}

var (
	// ErrInvalidNode is returned when an id does not address a node of the tree.
	ErrInvalidNode = errors.New("dom: invalid node")
	// ErrAttached is returned when appending a node that already has a parent.
	ErrAttached = errors.New("dom: node already attached")
	// ErrCycle is returned when an append would make a node its own ancestor.
	ErrCycle = errors.New("dom: append would create a cycle")
)

// Attribute is a single element attribute.
type Attribute struct {
	Key string
	Val string
}

// node is one arena slot. data holds the tag name for elements, the content
// for text and comments, the name for doctypes and the target for
// processing instructions.
type node struct {
	kind     Kind
	data     string
	attrs    []Attribute
	parent   NodeID
	children []NodeID
}

// Tree is an arena of nodes. The zero value is not usable; call New.
type Tree struct {
	nodes []node
}

// New creates a tree holding a single document node.
func New() *Tree {
	t := &Tree{nodes: make([]node, 0, 64)}
	t.add(node{kind: KindDocument})
	return t
}

// Root returns the document node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of arena slots, including detached nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Valid reports whether id addresses a node of t.
func (t *Tree) Valid(id NodeID) bool {
	return t != nil && id >= 0 && int(id) < len(t.nodes)
}

// Check returns ErrInvalidNode, wrapped with the offending id, when id does
// not address a node of t.
func (t *Tree) Check(id NodeID) error {
	if !t.Valid(id) {
		return fmt.Errorf("node %d: %w", id, ErrInvalidNode)
	}
	return nil
}

func (t *Tree) add(n node) NodeID {
	n.parent = NoNode
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// NewElement adds a detached element.
func (t *Tree) NewElement(tag string, attrs ...Attribute) NodeID {
	var a []Attribute
	if len(attrs) > 0 {
		a = append(a, attrs...)
	}
	return t.add(node{kind: KindElement, data: tag, attrs: a})
}

// NewText adds a detached text node.
func (t *Tree) NewText(content string) NodeID {
	return t.add(node{kind: KindText, data: content})
}

// NewComment adds a detached comment.
func (t *Tree) NewComment(content string) NodeID {
	return t.add(node{kind: KindComment, data: content})
}

// NewDoctype adds a detached doctype node.
func (t *Tree) NewDoctype(name string) NodeID {
	return t.add(node{kind: KindDoctype, data: name})
}

// NewProcessingInstruction adds a detached processing instruction.
func (t *Tree) NewProcessingInstruction(target string) NodeID {
	return t.add(node{kind: KindProcessingInstruction, data: target})
}

// AppendChild attaches child as the last child of parent.
func (t *Tree) AppendChild(parent, child NodeID) error {
	if err := t.Check(parent); err != nil {
		return err
	}
	if err := t.Check(child); err != nil {
		return err
	}
	if t.nodes[child].parent != NoNode || child == t.Root() {
		return fmt.Errorf("node %d: %w", child, ErrAttached)
	}
	for p := parent; p != NoNode; p = t.nodes[p].parent {
		if p == child {
			return fmt.Errorf("node %d under %d: %w", child, parent, ErrCycle)
		}
	}
	t.nodes[child].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return nil
}

// Kind returns the payload variant of id.
func (t *Tree) Kind(id NodeID) Kind {
	return t.nodes[id].kind
}

// Parent returns the parent of id, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// Children returns the ordered children of id. The slice is shared with the
// tree and must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

// TagName returns the tag of an element, or "" for any other node.
func (t *Tree) TagName(id NodeID) string {
	if t.nodes[id].kind != KindElement {
		return ""
	}
	return t.nodes[id].data
}

// IsElement reports whether id is an element with the given tag.
func (t *Tree) IsElement(id NodeID, tag string) bool {
	n := &t.nodes[id]
	return n.kind == KindElement && n.data == tag
}

// Text returns the content of a text or comment node, or "".
func (t *Tree) Text(id NodeID) string {
	switch t.nodes[id].kind {
	case KindText, KindComment:
		return t.nodes[id].data
	}
	return ""
}

// Data returns the raw payload string of any node.
func (t *Tree) Data(id NodeID) string {
	return t.nodes[id].data
}

// Attribute returns the value of the first attribute called name. Only
// elements carry attributes.
func (t *Tree) Attribute(id NodeID, name string) (string, bool) {
	n := &t.nodes[id]
	if n.kind != KindElement {
		return "", false
	}
	for _, a := range n.attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attributes returns the attributes of an element in source order.
func (t *Tree) Attributes(id NodeID) []Attribute {
	return t.nodes[id].attrs
}
