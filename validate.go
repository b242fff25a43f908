package latex

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

var identifier = regexp.MustCompile("^\\\\(?:[a-zA-Z]+\\*?|[^a-zA-Z])$")

// Validate checks that markup is structurally well-formed: every group opened with { is closed with } and every
// \begin{x} has a matching \end{x}, in the right order. Commands and their arguments are not checked.
func Validate(markup string) error {
	tokens := NewTokenizer(strings.NewReader(markup))

	var open []string // "{" for groups and environment names, innermost last
	for {
		t, err := tokens.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return &StructureError{Op: "validate", Reason: err.Error()}
		}

		switch t := t.(type) {
		case ParameterStart:
			open = append(open, "{")
		case ParameterEnd:
			if len(open) == 0 || open[len(open)-1] != "{" {
				return &StructureError{Op: "validate", Reason: "unexpected }", Open: open}
			}

			open = open[:len(open)-1]
		case EnvironmentStart:
			open = append(open, t.Name)
		case EnvironmentEnd:
			if len(open) == 0 || open[len(open)-1] != t.Name {
				return &StructureError{Op: "validate", Reason: fmt.Sprintf("unexpected \\end{%s}", t.Name), Open: open}
			}

			open = open[:len(open)-1]
		}
	}

	if len(open) > 0 {
		return &StructureError{Op: "validate", Reason: "unclosed group or environment", Open: open}
	}

	return nil
}
