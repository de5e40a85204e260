// Package luasexpr exposes the parser and the printer to Lua scripts running
// on gopher-lua.
//
// Nodes are mapped to Lua values as follows:
//
//	nil      nil
//	integer  number
//	string   string
//	symbol   {symbol = "name"}
//	pair     {car = head, cdr = tail}
//
// When converting back, a table with an array part is read as a proper list,
// so {1, 2, 3} renders as (1 2 3).
package luasexpr

import (
	"errors"
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/xiam/cons/ast"
	"github.com/xiam/cons/parser"
)

// ModuleName is the name scripts use to require the module
const ModuleName = "sexpr"

var (
	ErrNotInteger       = errors.New("number is not a non-negative integer")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrCyclicValue      = errors.New("table refers to itself")
)

var exports = map[string]lua.LGFunction{
	"parse":  luaParse,
	"render": luaRender,
	"valid":  luaValid,
}

// Loader pushes the module table onto the stack
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	L.Push(mod)
	return 1
}

// Preload registers the module so scripts can require it
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// sexpr.parse(text) returns value, nil or nil, message
func luaParse(L *lua.LState) int {
	text := L.CheckString(1)

	n, err := parser.ParseString(text)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(ToLua(L, n))
	L.Push(lua.LNil)
	return 2
}

// sexpr.render(value) returns the canonical text or raises an error
func luaRender(L *lua.LState) int {
	n, err := FromLua(L.Get(1))
	if err == nil {
		err = ast.Validate(n)
	}
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LString(ast.Encode(n)))
	return 1
}

// sexpr.valid(text) returns true if text parses
func luaValid(L *lua.LState) int {
	_, err := parser.ParseString(L.CheckString(1))
	L.Push(lua.LBool(err == nil))
	return 1
}

// ToLua converts a node into a Lua value
func ToLua(L *lua.LState, n ast.Node) lua.LValue {
	switch v := n.(type) {
	case nil:
		return lua.LNil

	case *ast.Integer:
		return lua.LNumber(v.Value)

	case *ast.Text:
		return lua.LString(v.Value)

	case *ast.Symbol:
		tb := L.NewTable()
		tb.RawSetString("symbol", lua.LString(v.Name))
		return tb

	case *ast.Pair:
		tb := L.NewTable()
		if v.Head != nil {
			tb.RawSetString("car", ToLua(L, v.Head))
		}
		if v.Tail != nil {
			tb.RawSetString("cdr", ToLua(L, v.Tail))
		}
		return tb
	}

	panic("unknown node type")
}

// FromLua converts a Lua value into a node. Tables that contain themselves,
// directly or through other tables, are rejected with ErrCyclicValue.
func FromLua(lv lua.LValue) (ast.Node, error) {
	return fromLua(lv, map[*lua.LTable]bool{})
}

// fromLua converts lv, path holds the tables being converted above it.
func fromLua(lv lua.LValue, path map[*lua.LTable]bool) (ast.Node, error) {
	switch v := lv.(type) {
	case *lua.LNilType:
		return nil, nil

	case lua.LNumber:
		f := float64(v)
		if f < 0 || f != math.Trunc(f) || f >= 1<<64 {
			return nil, fmt.Errorf("%w: %v", ErrNotInteger, v)
		}
		return ast.NewInteger(uint64(f)), nil

	case lua.LString:
		return ast.NewText(string(v)), nil

	case *lua.LTable:
		if path[v] {
			return nil, ErrCyclicValue
		}
		path[v] = true
		defer delete(path, v)

		return tableToNode(v, path)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, lv.Type())
}

func tableToNode(tb *lua.LTable, path map[*lua.LTable]bool) (ast.Node, error) {
	if sym := tb.RawGetString("symbol"); sym != lua.LNil {
		name, ok := sym.(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%w: symbol name of type %s", ErrUnsupportedValue, sym.Type())
		}
		return ast.NewSymbol(string(name)), nil
	}

	if size := tb.Len(); size > 0 {
		items := make([]ast.Node, 0, size)
		for i := 1; i <= size; i++ {
			item, err := fromLua(tb.RawGetInt(i), path)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return ast.List(items...), nil
	}

	head, err := fromLua(tb.RawGetString("car"), path)
	if err != nil {
		return nil, err
	}
	tail, err := fromLua(tb.RawGetString("cdr"), path)
	if err != nil {
		return nil, err
	}
	return ast.NewPair(head, tail), nil
}
