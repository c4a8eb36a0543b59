package selector

import (
	"bytes"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Token is a single lexical token of a rendered selector string.
type Token struct {
	Type string // token type name, e.g. "Ident", "Hash", "Delim"
	Text string // verbatim token text
}

// Inspect tokenizes a selector string for display. It is a plain token
// dump: no grammar is applied and nothing is validated, concatenating the
// token texts always reproduces the input.
func Inspect(sel string) []Token {
	var tokens []Token
	l := css.NewLexer(parse.NewInput(bytes.NewReader([]byte(sel))))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			// EOF or lexing failure, either way we are done
			return tokens
		}
		tokens = append(tokens, Token{Type: tt.String(), Text: string(data)})
	}
}
