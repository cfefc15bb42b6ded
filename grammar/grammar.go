// Package grammar describes a parser grammar as a tree of combinator
// nodes and transforms it into a single separator-aware parser. The
// node tree is a compile-time description: it is fully resolved by
// Build before any input is parsed, and the author never inserts
// separator handling anywhere in it.
package grammar

import "github.com/dhamidi/gnaw/parse"

// Node is one combinator declaration in a grammar tree.
type Node interface {
	node()
}

// Sequence matches its children in order, all required.
type Sequence []Node

// Choice matches the first of its nodes that succeeds, tried in
// declaration order. With Buffered set, a branch that reports
// incomplete is skipped in favor of the next one; that mode is only
// sound when the whole input is already in memory.
type Choice struct {
	Nodes    []Node
	Buffered bool
}

// Permutation matches each child exactly once, in whatever order they
// appear in the input.
type Permutation []Node

// Dispatch parses Selector, then branches on the text it captured.
type Dispatch struct {
	Selector Node
	Cases    []DispatchCase
}

// DispatchCase pairs a selector text with the node to parse next.
// A Default case matches any selector text; place it last.
type DispatchCase struct {
	Value   string
	Default bool
	Body    Node
}

// Repeat matches Element Min or more times. Min must be 0 or 1.
type Repeat struct {
	Element Node
	Min     int
}

// List matches Element at least zero times, with Delimiter between
// entries. It never consumes a trailing delimiter.
type List struct {
	Element   Node
	Delimiter Node
}

// Term matches its own text literally.
type Term string

// Ref names another rule of the grammar, allowing recursion.
type Ref string

// Leaf wraps an opaque externally supplied parser. The grammar treats
// it as a black box satisfying the parser contract.
type Leaf struct {
	Name   string
	Parser parse.Parser[Value]
}

func (Sequence) node()    {}
func (Choice) node()      {}
func (Permutation) node() {}
func (Dispatch) node()    {}
func (Repeat) node()      {}
func (List) node()        {}
func (Term) node()        {}
func (Ref) node()         {}
func (Leaf) node()        {}

// Grammar is a set of named rules with a designated start rule.
type Grammar struct {
	Start string
	Rules map[string]Node
}

// Value is the raw capture a built grammar produces. Leaf matches have
// Bytes set; composite matches carry their children in declaration
// order. Rule is the name of the rule that produced the value, when it
// came from a named rule.
type Value struct {
	Rule     string
	Bytes    []byte
	Children []Value
}

// IsTerminal reports whether this value captured a single token.
func (v Value) IsTerminal() bool {
	return v.Children == nil
}

// Text returns the captured token text. For composite values it
// returns the empty string.
func (v Value) Text() string {
	return string(v.Bytes)
}
