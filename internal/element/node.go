package element

// Node is a minimal tree element for hosts that do not have their own
// element type. It satisfies Element.
type Node struct {
	name     string
	parent   *Node
	children []*Node
}

// NewDocument returns a root node named "document".
func NewDocument() *Node {
	return &Node{name: "document"}
}

// NewNode creates a detached node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Append attaches child under n, detaching it from any previous parent.
func (n *Node) Append(child *Node) *Node {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// AppendNew creates a named child under n and returns it.
func (n *Node) AppendNew(name string) *Node {
	return n.Append(NewNode(name))
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.remove(n)
		n.parent = nil
	}
}

func (n *Node) remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Find returns the first descendant (depth first, n included) with the
// given name, or nil.
func (n *Node) Find(name string) *Node {
	if n.name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Path returns the propagation path from n up to its root, deepest first.
func (n *Node) Path() []Element {
	var path []Element
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	return path
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.name
}
