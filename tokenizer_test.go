package latex_test

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/eolymp/go-latex-builder"
)

func TestTokenizer(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output []any
	}{
		{
			name:  "text",
			input: "one\ntwo\nthree",
			output: []any{
				latex.TextToken("one\n"),
				latex.TextToken("two\n"),
				latex.TextToken("three"),
			},
		},
		{
			name:  "command",
			input: "\\textbf{foo\\par bar}",
			output: []any{
				latex.CommandToken("\\textbf"),
				latex.ParameterStart{},
				latex.TextToken("foo"),
				latex.CommandToken("\\par"),
				latex.TextToken(" bar"),
				latex.ParameterEnd{},
			},
		},
		{
			name:  "starred command",
			input: "\\section*{A}",
			output: []any{
				latex.CommandToken("\\section*"),
				latex.ParameterStart{},
				latex.TextToken("A"),
				latex.ParameterEnd{},
			},
		},
		{
			name:  "escaped specials",
			input: "\\{50\\%\\}\\\\",
			output: []any{
				latex.TextToken("{"),
				latex.TextToken("50"),
				latex.TextToken("%"),
				latex.TextToken("}"),
				latex.CommandToken("\\\\"),
			},
		},
		{
			name:  "environment",
			input: "\\begin{center}x\\end {center}",
			output: []any{
				latex.EnvironmentStart{Name: "center"},
				latex.TextToken("x"),
				latex.EnvironmentEnd{Name: "center"},
			},
		},
		{
			name:  "starred environment",
			input: "\\begin{align*}\\end{align*}",
			output: []any{
				latex.EnvironmentStart{Name: "align*"},
				latex.EnvironmentEnd{Name: "align*"},
			},
		},
		{
			name:  "verbatim environment",
			input: "\\begin{verbatim}a{ \\begin{x}\\end{verbatim}b",
			output: []any{
				latex.VerbatimToken{Kind: "verbatim", Data: "a{ \\begin{x}"},
				latex.TextToken("b"),
			},
		},
		{
			name:  "verb",
			input: "\\verb|{|}",
			output: []any{
				latex.VerbatimToken{Kind: "\\verb", Data: "{"},
				latex.ParameterEnd{},
			},
		},
		{
			name:  "comment",
			input: "a % comment {\nb",
			output: []any{
				latex.TextToken("a "),
				latex.VerbatimToken{Kind: "%", Data: " comment {"},
				latex.TextToken("b"),
			},
		},
		{
			name:  "math",
			input: "foo $a_{i}^2$ bar",
			output: []any{
				latex.TextToken("foo "),
				latex.VerbatimToken{Kind: "$", Data: "a_{i}^2"},
				latex.TextToken(" bar"),
			},
		},
		{
			name:  "math block with escaped $ symbol",
			input: "$$x \\$ y$$",
			output: []any{
				latex.VerbatimToken{Kind: "$$", Data: "x \\$ y"},
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			lexer := latex.NewTokenizer(strings.NewReader(tc.input))

			var got []any

			for {
				token, err := lexer.Token()
				if err == io.EOF {
					break
				}

				if err != nil {
					t.Fatalf("Unable to read token: %v", err)
				}

				got = append(got, token)
			}

			want := tc.output

			if !reflect.DeepEqual(want, got) {
				t.Errorf("Tokens do not match:\n want %#v\n  got %#v\n", want, got)
			}
		})
	}
}

func TestTokenizerErrors(t *testing.T) {
	tt := map[string]string{
		"unclosed math":     "$x",
		"unclosed verbatim": "\\begin{verbatim}x",
		"unclosed verb":     "\\verb|x",
		"trailing slash":    "text\\",
		"environment name":  "\\begin{}",
		"invalid delimiter": "\\verb x ",
	}

	for name, input := range tt {
		t.Run(name, func(t *testing.T) {
			lexer := latex.NewTokenizer(strings.NewReader(input))

			for {
				_, err := lexer.Token()
				if err == io.EOF {
					t.Fatal("Expected error, got EOF")
				}

				if err != nil {
					return
				}
			}
		})
	}
}
