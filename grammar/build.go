package grammar

import (
	"fmt"

	"github.com/dhamidi/gnaw/parse"
	"github.com/dhamidi/gnaw/token"
)

// Build transforms the grammar tree into one separator-aware parser:
// every composite node is rewritten so sep is consumed between its
// sub-parsers, and the returned top-level parser additionally consumes
// leading and trailing separator input. The tree itself is never
// consulted again after Build returns.
func Build(g Grammar, sep parse.Separator) (parse.Parser[Value], error) {
	b := &builder{g: g, sep: sep, cells: make(map[string]*parse.Parser[Value])}
	start, err := b.rule(g.Start)
	if err != nil {
		return nil, err
	}
	return parse.Padded(sep, start), nil
}

type builder struct {
	g     Grammar
	sep   parse.Separator
	cells map[string]*parse.Parser[Value]
}

// rule compiles the named rule once and hands out indirections through
// a shared cell, so rules may reference themselves or each other.
func (b *builder) rule(name string) (parse.Parser[Value], error) {
	if cell, ok := b.cells[name]; ok {
		return func(in parse.Cursor) (parse.Cursor, Value, error) {
			return (*cell)(in)
		}, nil
	}
	node, ok := b.g.Rules[name]
	if !ok {
		return nil, fmt.Errorf("grammar: unknown rule %q", name)
	}
	cell := new(parse.Parser[Value])
	b.cells[name] = cell
	compiled, err := b.compile(node)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	named := parse.Map(compiled, func(v Value) Value {
		v.Rule = name
		return v
	})
	*cell = named
	return named, nil
}

func (b *builder) compile(node Node) (parse.Parser[Value], error) {
	switch n := node.(type) {
	case Term:
		return parse.Map(token.Tag(string(n)), func(bs []byte) Value {
			return Value{Bytes: bs}
		}), nil

	case Ref:
		return b.rule(string(n))

	case Leaf:
		if n.Parser == nil {
			return nil, fmt.Errorf("leaf %q has no parser", n.Name)
		}
		if n.Name == "" {
			return n.Parser, nil
		}
		return parse.Map(n.Parser, func(v Value) Value {
			v.Rule = n.Name
			return v
		}), nil

	case Sequence:
		parts, err := b.compileAll(n)
		if err != nil {
			return nil, err
		}
		return group(parse.SeqOf(b.sep, parts...)), nil

	case Choice:
		parts, err := b.compileAll(n.Nodes)
		if err != nil {
			return nil, err
		}
		if n.Buffered {
			return parse.AltComplete(b.sep, parts...), nil
		}
		return parse.Alt(b.sep, parts...), nil

	case Permutation:
		parts, err := b.compileAll(n)
		if err != nil {
			return nil, err
		}
		return group(parse.PermutationOf(b.sep, parts...)), nil

	case Dispatch:
		selector, err := b.compile(n.Selector)
		if err != nil {
			return nil, err
		}
		key := parse.Map(selector, func(v Value) string {
			return v.Text()
		})
		cases := make([]parse.Case[string, Value], 0, len(n.Cases))
		for _, c := range n.Cases {
			body, err := b.compile(c.Body)
			if err != nil {
				return nil, err
			}
			if c.Default {
				cases = append(cases, parse.Otherwise[string](body))
			} else {
				cases = append(cases, parse.On(c.Value, body))
			}
		}
		return parse.Switch(b.sep, key, cases...), nil

	case Repeat:
		element, err := b.compile(n.Element)
		if err != nil {
			return nil, err
		}
		switch n.Min {
		case 0:
			return group(parse.Many0(b.sep, element)), nil
		case 1:
			return group(parse.Many1(b.sep, element)), nil
		default:
			return nil, fmt.Errorf("repeat: min %d not supported", n.Min)
		}

	case List:
		element, err := b.compile(n.Element)
		if err != nil {
			return nil, err
		}
		delimiter, err := b.compile(n.Delimiter)
		if err != nil {
			return nil, err
		}
		return group(parse.SeparatedList0(b.sep, delimiter, element)), nil

	default:
		return nil, fmt.Errorf("unsupported node type %T", node)
	}
}

func (b *builder) compileAll(nodes []Node) ([]parse.Parser[Value], error) {
	parts := make([]parse.Parser[Value], len(nodes))
	for i, node := range nodes {
		p, err := b.compile(node)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}
	return parts, nil
}

func group(p parse.Parser[[]Value]) parse.Parser[Value] {
	return parse.Map(p, func(vs []Value) Value {
		if vs == nil {
			vs = []Value{}
		}
		return Value{Children: vs}
	})
}
