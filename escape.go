package latex

import "strings"

// specials maps reserved characters to the markup which displays them literally
var specials = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"{", "\\{",
	"}", "\\}",
	"$", "\\$",
	"&", "\\&",
	"#", "\\#",
	"%", "\\%",
	"_", "\\_",
	"^", "\\textasciicircum{}",
	"~", "\\textasciitilde{}",
)

// Escape replaces reserved characters in text so it is displayed as is.
//
// Replacement is done in a single pass, braces produced for backslash are never escaped again.
func Escape(text string) string {
	return specials.Replace(text)
}
