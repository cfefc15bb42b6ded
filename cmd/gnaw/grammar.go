package main

import (
	"github.com/dhamidi/gnaw/grammar"
	"github.com/dhamidi/gnaw/parse"
	"github.com/dhamidi/gnaw/token"
)

// demoGrammar describes a small record language:
//
//	lang = en
//	version = 3
//	strict = yes
//
//	retries: int = 5
//	host: word = localhost
//	ports: list = [80, 443, 8080]
//
// The three header directives may appear in any order. Each entry
// declares its kind, and the kind word decides how the value after "="
// is parsed.
func demoGrammar() grammar.Grammar {
	return grammar.Grammar{
		Start: "doc",
		Rules: map[string]grammar.Node{
			"doc": grammar.Sequence{
				grammar.Ref("header"),
				grammar.Ref("entries"),
			},
			"header": grammar.Permutation{
				grammar.Sequence{grammar.Term("lang"), grammar.Term("="), grammar.Ref("word")},
				grammar.Sequence{grammar.Term("version"), grammar.Term("="), grammar.Ref("number")},
				grammar.Sequence{grammar.Term("strict"), grammar.Term("="), grammar.Ref("word")},
			},
			"entries": grammar.Repeat{Element: grammar.Ref("entry"), Min: 0},
			"entry": grammar.Sequence{
				grammar.Ref("word"),
				grammar.Term(":"),
				grammar.Dispatch{
					Selector: grammar.Ref("kind"),
					Cases: []grammar.DispatchCase{
						{Value: "int", Body: grammar.Sequence{grammar.Term("="), grammar.Ref("number")}},
						{Value: "word", Body: grammar.Sequence{grammar.Term("="), grammar.Ref("word")}},
						{Value: "list", Body: grammar.Sequence{
							grammar.Term("="),
							grammar.Term("["),
							grammar.List{Element: grammar.Ref("number"), Delimiter: grammar.Term(",")},
							grammar.Term("]"),
						}},
					},
				},
			},
			"kind":   leaf("kind", token.Span1(isWordByte)),
			"word":   leaf("word", token.Span1(isWordByte)),
			"number": leaf("number", token.Span1(isDigit)),
		},
	}
}

func leaf(name string, p parse.Parser[[]byte]) grammar.Node {
	capture := parse.Map(p, func(bs []byte) grammar.Value {
		return grammar.Value{Bytes: bs}
	})
	return grammar.Leaf{Name: name, Parser: capture}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
