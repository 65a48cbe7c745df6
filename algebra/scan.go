package algebra

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories for the expression reader. Single-character tokens
// ('+', '(', …) use their rune value as category.
const (
	tokEOF = 0
	tokNum = -2
	tokID  = -3
)

// The tokens representing literal one-char lexemes
var literals = []string{"+", "-", "*", "/", "^", "(", ")", ","}

type token struct {
	typ    int
	lexeme string
}

func (t token) String() string {
	return fmt.Sprintf("%q[%d]", t.lexeme, t.typ)
}

var initOnce sync.Once // monitors one-time DFA compilation
var lexer *lexmachine.Lexer
var lexerErr error

func initLexer() {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(tokNum))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(tokID))
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), makeToken(int(lit[0])))
		}
		lexer.Add([]byte(`( |\t|\n|\r)+`), skipToken)
		lexerErr = lexer.Compile()
		if lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{typ: id, lexeme: string(m.Bytes)}, nil
	}
}

func skipToken(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// scanTokens runs the lexmachine scanner over an input string and collects
// the token stream.
func scanTokens(input string) ([]token, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("unexpected input at position %d", ui.FailTC)
			}
			return nil, err
		}
		toks = append(toks, tok.(token))
	}
	toks = append(toks, token{typ: tokEOF})
	return toks, nil
}
