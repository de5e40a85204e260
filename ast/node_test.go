package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSymbol(t *testing.T) {
	assert.Nil(t, NewSymbol("nil"))
	assert.Equal(t, &Symbol{Name: "abc"}, NewSymbol("abc"))
	assert.Equal(t, &Symbol{Name: "Nil"}, NewSymbol("Nil"))
}

func TestList(t *testing.T) {
	one := NewInteger(1)

	assert.Nil(t, List())
	assert.Equal(t, NewPair(one, nil), List(one))
	assert.Equal(t, NewPair(one, NewPair(NewText("a"), nil)), List(one, NewText("a")))
}

func TestTypeOf(t *testing.T) {
	testCases := []struct {
		In   Node
		Type NodeType
		Name string
	}{
		{nil, NodeTypeNil, "nil"},
		{NewInteger(1), NodeTypeInt, "int"},
		{NewText("a"), NodeTypeString, "string"},
		{NewSymbol("a"), NodeTypeSymbol, "symbol"},
		{NewPair(nil, nil), NodeTypePair, "pair"},
	}

	for i := range testCases {
		nt := TypeOf(testCases[i].In)
		assert.Equal(t, testCases[i].Type, nt)
		assert.Equal(t, testCases[i].Name, nt.String())
	}

	assert.True(t, NodeTypeInt.IsValue())
	assert.False(t, NodeTypeInt.IsVector())
	assert.True(t, NodeTypePair.IsVector())
	assert.False(t, NodeTypeNil.IsValue())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate(List(NewInteger(1), NewSymbol("a1"), NewText("b c"), NewPair(nil, NewInteger(2)))))

	assert.ErrorIs(t, Validate(&Symbol{Name: "nil"}), ErrInvalidSymbol)
	assert.ErrorIs(t, Validate(&Symbol{Name: "1a"}), ErrInvalidSymbol)
	assert.ErrorIs(t, Validate(&Symbol{Name: ""}), ErrInvalidSymbol)
	assert.ErrorIs(t, Validate(List(NewInteger(1), &Symbol{Name: "a-b"})), ErrInvalidSymbol)
	assert.ErrorIs(t, Validate(NewPair(nil, NewText(`a"b`))), ErrInvalidText)
	assert.ErrorIs(t, Validate(NewPair(NewPair(NewText(`"`), nil), nil)), ErrInvalidText)
}
