package latex_test

import (
	"testing"

	"github.com/eolymp/go-latex-builder"
)

func TestEscape(t *testing.T) {
	tt := map[string]string{
		"plain text":        "plain text",
		"a & b":             "a \\& b",
		"\\":                "\\textbackslash{}",
		"{}":                "\\{\\}",
		"100% of $5":        "100\\% of \\$5",
		"#1_x^2~":           "\\#1\\_x\\textasciicircum{}2\\textasciitilde{}",
		"\\textbf{x}":       "\\textbackslash{}textbf\\{x\\}",
		"Привіт, світ 👋":   "Привіт, світ 👋",
		"[brackets] <angle>": "[brackets] <angle>",
	}

	for input, want := range tt {
		t.Run(input, func(t *testing.T) {
			got := latex.Escape(input)
			if got != want {
				t.Errorf("Escaped text does not match:\n want %#v\n  got %#v", want, got)
			}

			if err := latex.Validate(got); err != nil {
				t.Errorf("Escaped text is not well-formed: %v", err)
			}
		})
	}
}
