package ast

// Node represents any value of the tree. The nil Node stands for nil, the
// empty list.
type Node interface {
	Type() NodeType
	String() string
}

// Pair represents a cons cell. Head is the first element and Tail is the
// rest: another pair, an atom for a dotted tail, or nil.
type Pair struct {
	Head Node
	Tail Node
}

// Integer represents a non-negative integer atom
type Integer struct {
	Value uint64
}

// Text represents a quoted string atom
type Text struct {
	Value string
}

// Symbol represents an identifier atom
type Symbol struct {
	Name string
}

// NilName is the identifier that reads as nil instead of a symbol.
const NilName = "nil"

// NewPair creates a cons cell from the given head and tail
func NewPair(head Node, tail Node) *Pair {
	return &Pair{Head: head, Tail: tail}
}

// NewInteger creates an integer atom
func NewInteger(v uint64) *Integer {
	return &Integer{Value: v}
}

// NewText creates a string atom
func NewText(v string) *Text {
	return &Text{Value: v}
}

// NewSymbol creates a symbol atom. The name "nil" can't be a symbol, in that
// case NewSymbol returns the nil Node.
func NewSymbol(name string) Node {
	if name == NilName {
		return nil
	}
	return &Symbol{Name: name}
}

// List chains the given items into a proper list terminated by nil. It
// returns nil when no items are given.
func List(items ...Node) Node {
	var tail Node
	for i := len(items) - 1; i >= 0; i-- {
		tail = NewPair(items[i], tail)
	}
	return tail
}

// TypeOf returns the type of the node, NodeTypeNil for the nil Node.
func TypeOf(n Node) NodeType {
	if n == nil {
		return NodeTypeNil
	}
	return n.Type()
}

// Type returns the type of the node
func (p *Pair) Type() NodeType {
	return NodeTypePair
}

// Type returns the type of the node
func (i *Integer) Type() NodeType {
	return NodeTypeInt
}

// Type returns the type of the node
func (t *Text) Type() NodeType {
	return NodeTypeString
}

// Type returns the type of the node
func (s *Symbol) Type() NodeType {
	return NodeTypeSymbol
}

func (p *Pair) String() string {
	return Encode(p)
}

func (i *Integer) String() string {
	return Encode(i)
}

func (t *Text) String() string {
	return Encode(t)
}

func (s *Symbol) String() string {
	return Encode(s)
}

var (
	_ = Node(&Pair{})
	_ = Node(&Integer{})
	_ = Node(&Text{})
	_ = Node(&Symbol{})
)
