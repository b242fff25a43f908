package latex_test

import (
	"errors"
	"testing"

	"github.com/eolymp/go-latex-builder"
	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	tt := []struct {
		name  string
		input string
		open  []string // open groups and environments reported by the error, nil if markup is valid
		valid bool
	}{
		{name: "empty", input: "", valid: true},
		{name: "plain text", input: "just text, with [brackets] & tildes ~", valid: true},
		{name: "nested groups", input: "\\textbf{a \\textit{b}}", valid: true},
		{name: "nested environments", input: "\\begin{a}\\begin{b}{x}\\end{b}\\end{a}", valid: true},
		{name: "escaped braces", input: "\\{ \\}", valid: true},
		{name: "braces in comment", input: "% {\n", valid: true},
		{name: "braces in verbatim", input: "\\begin{verbatim}}{\\end{verbatim}", valid: true},
		{name: "braces in math", input: "$\\{$", valid: true},
		{name: "unclosed group", input: "\\textbf{a", open: []string{"{"}},
		{name: "unclosed environment", input: "\\begin{center}{}", open: []string{"center"}},
		{name: "environment closed inside group", input: "\\begin{a}{\\end{a}}", open: []string{"a", "{"}},
		{name: "mismatched environment", input: "\\begin{a}\\begin{b}\\end{a}\\end{b}", open: []string{"a", "b"}},
		{name: "unexpected end", input: "\\end{a}"},
		{name: "unexpected brace", input: "a}"},
		{name: "unclosed math", input: "$a"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := latex.Validate(tc.input)
			if tc.valid {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}

				return
			}

			var serr *latex.StructureError
			if !errors.As(err, &serr) {
				t.Fatalf("Expected *StructureError, got %v", err)
			}

			if !errors.Is(err, latex.ErrStructure) {
				t.Errorf("Error must match ErrStructure: %v", err)
			}

			if diff := cmp.Diff(tc.open, serr.Open); diff != "" {
				t.Errorf("Open groups do not match (-want +got):\n%s", diff)
			}
		})
	}
}
