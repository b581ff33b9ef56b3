// File: tokenize.go
// Title: Browser Input Tokenizer
// Description: Splits a raw input line into arguments. Supports quoted
//              blocks in which separators are literal and a single-character
//              escape prefix.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: TCOL lexer with typed tokens
// - 2026-10-19 v0.2.0: Replaced by a quote/escape aware argument splitter

package shell

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Syntax defines the special characters of the input language
type Syntax struct {
	Separator rune
	Quote     rune
	Escape    rune
}

// DefaultSyntax separates on space, quotes with '"' and escapes with '\'
var DefaultSyntax = Syntax{Separator: ' ', Quote: '"', Escape: '\\'}

// Tokenize splits raw with DefaultSyntax
func Tokenize(raw string) []string {
	return TokenizeWith(raw, DefaultSyntax)
}

// TokenizeWith splits raw into tokens. Every unquoted separator ends a token,
// so consecutive separators yield empty tokens. An unterminated quote is not
// an error: the rest of the input is read as quoted.
func TokenizeWith(raw string, syntax Syntax) []string {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		escaped bool
	)

	for _, r := range raw {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}

		switch {
		case r == syntax.Escape:
			escaped = true
		case r == syntax.Quote:
			quoted = !quoted
		case r == syntax.Separator && !quoted:
			tokens = append(tokens, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(tokens, current.String())
}

// TrimUnescaped removes leading whitespace and any trailing whitespace that
// is not preceded by an odd number of escape characters.
func TrimUnescaped(raw string, syntax Syntax) string {
	line := strings.TrimLeftFunc(raw, unicode.IsSpace)
	for line != "" {
		r, size := utf8.DecodeLastRuneInString(line)
		if !unicode.IsSpace(r) {
			break
		}
		rest := line[:len(line)-size]
		if trailingEscapes(rest, syntax.Escape)%2 == 1 {
			break
		}
		line = rest
	}
	return line
}

func trailingEscapes(s string, escape rune) int {
	n := 0
	for s != "" {
		r, size := utf8.DecodeLastRuneInString(s)
		if r != escape {
			break
		}
		n++
		s = s[:len(s)-size]
	}
	return n
}
