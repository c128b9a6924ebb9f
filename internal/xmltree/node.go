// Package xmltree holds an immutable tree of named elements.
//
// Builders construct a tree with Element and Leaf; renderers walk it through the
// accessor methods. Nothing in a tree can be changed after construction: every
// accessor hands out copies.
package xmltree

import "strings"

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an element with attributes and either text or children.
type Node struct {
	name     string
	attrs    []Attr
	text     string
	children []Node
}

// Element creates a node with child elements.
func Element(name string, children ...Node) Node {
	return Node{name: name, children: append([]Node(nil), children...)}
}

// Leaf creates a node holding text.
func Leaf(name, text string, attrs ...Attr) Node {
	return Node{name: name, text: text, attrs: append([]Attr(nil), attrs...)}
}

// WithAttr returns a copy of n carrying one more attribute.
func (n Node) WithAttr(name, value string) Node {
	attrs := make([]Attr, 0, len(n.attrs)+1)
	attrs = append(attrs, n.attrs...)
	n.attrs = append(attrs, Attr{Name: name, Value: value})
	return n
}

// Name returns the element name.
func (n Node) Name() string { return n.name }

// Text returns the character data of a leaf.
func (n Node) Text() string { return n.text }

// Attrs returns a copy of the attributes in declaration order.
func (n Node) Attrs() []Attr { return append([]Attr(nil), n.attrs...) }

// Attr looks up an attribute value.
func (n Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Children returns a copy of the child elements in order.
func (n Node) Children() []Node { return append([]Node(nil), n.children...) }

// Len returns the number of children.
func (n Node) Len() int { return len(n.children) }

// Find follows a slash separated path of child names ("GrpHdr/MsgId") and
// returns the first match at each step.
func (n Node) Find(path string) (Node, bool) {
	current := n
	for _, step := range strings.Split(path, "/") {
		found := false
		for _, child := range current.children {
			if child.name == step {
				current = child
				found = true
				break
			}
		}
		if !found {
			return Node{}, false
		}
	}
	return current, true
}

// FindAll returns every direct child with the given name.
func (n Node) FindAll(name string) []Node {
	var out []Node
	for _, child := range n.children {
		if child.name == name {
			out = append(out, child)
		}
	}
	return out
}

// TextAt is Find followed by Text; missing paths yield "".
func (n Node) TextAt(path string) string {
	found, ok := n.Find(path)
	if !ok {
		return ""
	}
	return found.text
}
