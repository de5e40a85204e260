package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode transforms a node into its canonical text representation. Chains of
// pairs are written in list notation, (1 . (2 . nil)) is encoded as (1 2).
func Encode(n Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	encodeStandalone(&sb, n)
	return sb.String()
}

// encodeStandalone writes a node on its own, pairs get their own parens.
func encodeStandalone(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case nil:
		sb.WriteString(NilName)

	case *Pair:
		sb.WriteByte('(')
		if v.Tail == nil {
			if v.Head != nil {
				encodeStandalone(sb, v.Head)
			}
		} else {
			encodeContinuation(sb, v)
		}
		sb.WriteByte(')')

	case *Integer:
		sb.WriteString(strconv.FormatUint(v.Value, 10))

	case *Text:
		sb.WriteByte('"')
		sb.WriteString(v.Value)
		sb.WriteByte('"')

	case *Symbol:
		sb.WriteString(v.Name)

	default:
		panic("unknown node type")
	}
}

// encodeContinuation writes the elements of a pair that is part of an already
// open list, without parens.
func encodeContinuation(sb *strings.Builder, p *Pair) {
	encodeStandalone(sb, p.Head)

	switch tail := p.Tail.(type) {
	case nil:
		// end of list
	case *Pair:
		sb.WriteByte(' ')
		encodeContinuation(sb, tail)
	default:
		sb.WriteString(" . ")
		encodeStandalone(sb, tail)
	}
}

// Print writes a human-readable representation of a node
func Print(w io.Writer, n Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s(nil)\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s)", indent, n.Type())
	switch v := n.(type) {

	case *Pair:
		fmt.Fprintf(w, "\n")
		printLevel(w, v.Head, level+1)
		printLevel(w, v.Tail, level+1)

	case *Integer, *Text, *Symbol:
		fmt.Fprintf(w, ": %s\n", v)

	default:
		panic("unknown node type")
	}
}
