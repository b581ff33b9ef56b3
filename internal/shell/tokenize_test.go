package shell

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "help", []string{"help"}},
		{"simple split", "factorial 5", []string{"factorial", "5"}},
		{"quoted block", `a "b c" d`, []string{"a", "b c", "d"}},
		{"escaped separator", `a\ b`, []string{"a b"}},
		{"escaped quote", `say \"hi\"`, []string{"say", `"hi"`}},
		{"escaped escape", `a\\b`, []string{`a\b`}},
		{"quote inside token", `ab"c d"e`, []string{"abc de"}},
		{"empty input", "", []string{""}},
		{"consecutive separators", "a  b", []string{"a", "", "b"}},
		{"trailing separator", "a ", []string{"a", ""}},
		{"unterminated quote", `st plate "AB12 CDE`, []string{"st", "plate", "AB12 CDE"}},
		{"empty quotes", `a "" b`, []string{"a", "", "b"}},
		{"trailing escape", `a\`, []string{"a"}},
		{"unicode", "größe 5", []string{"größe", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTrimUnescaped(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  factorial 5  ", "factorial 5"},
		{"\tlist\r", "list"},
		{`a\ `, `a\ `},
		{`a\  `, `a\ `},
		{`a\\ `, `a\\`},
		{`a\\\ `, `a\\\ `},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TrimUnescaped(tt.input, DefaultSyntax), "input %q", tt.input)
	}
}

func TestTokenizeWithCustomSyntax(t *testing.T) {
	syntax := Syntax{Separator: ',', Quote: '\'', Escape: '^'}

	assert.Equal(t, []string{"a", "b,c", "d e"}, TokenizeWith(`a,'b,c',d e`, syntax))
	assert.Equal(t, []string{"a,b"}, TokenizeWith(`a^,b`, syntax))
}

func TestTokenizeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("plain words round-trip", prop.ForAll(
		func(words []string) bool {
			if len(words) == 0 {
				return true
			}
			got := Tokenize(strings.Join(words, " "))
			if len(got) != len(words) {
				return false
			}
			for i := range words {
				if got[i] != words[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("quoting a word keeps its spaces", prop.ForAll(
		func(a, b string) bool {
			got := Tokenize(`x "` + a + " " + b + `"`)
			return len(got) == 2 && got[1] == a+" "+b
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("escape never survives unless escaped", prop.ForAll(
		func(s string) bool {
			for _, tok := range Tokenize(s) {
				if strings.Contains(tok, `\`) && !strings.Contains(s, `\\`) {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("token count is unquoted separators plus one", prop.ForAll(
		func(s string) bool {
			return len(Tokenize(s)) == strings.Count(s, " ")+1
		},
		gen.AlphaString().Map(func(s string) string {
			return strings.ReplaceAll(s, "a", " ")
		}),
	))

	properties.TestingRun(t)
}
