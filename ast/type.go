package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeNil NodeType = 0

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeSymbol = nodeTypeValue | 4
	NodeTypeString = nodeTypeValue | 16

	NodeTypePair = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsValue returns true for the atom types (int, symbol and string).
func (nt NodeType) IsValue() bool {
	return nt&nodeTypeValue > 0
}

// IsVector returns true for the pair type.
func (nt NodeType) IsVector() bool {
	return nt&nodeTypeVector > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNil:    "nil",
	NodeTypeInt:    "int",
	NodeTypeSymbol: "symbol",
	NodeTypeString: "string",
	NodeTypePair:   "pair",
}
