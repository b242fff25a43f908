package latex

import "strings"

// Environment describes \begin{Name}Params ... \end{Name} block. Params is written right after \begin{Name} as is.
type Environment struct {
	Name   string
	Params string
}

var (
	Abstract    = Environment{Name: "abstract"}
	Center      = Environment{Name: "center"}
	Description = Environment{Name: "description"}
	DisplayMath = Environment{Name: "displaymath"}
	Enumerate   = Environment{Name: "enumerate"}
	EqnArray    = Environment{Name: "eqnarray"}
	Equation    = Environment{Name: "equation"}
	FlushLeft   = Environment{Name: "flushleft"}
	FlushRight  = Environment{Name: "flushright"}
	Itemize     = Environment{Name: "itemize"}
	Math        = Environment{Name: "math"}
	Quotation   = Environment{Name: "quotation"}
	Quote       = Environment{Name: "quote"}
	Tabbing     = Environment{Name: "tabbing"}
	Theorem     = Environment{Name: "theorem"}
	TitlePage   = Environment{Name: "titlepage"}
	TrivList    = Environment{Name: "trivlist"}
	Verbatim    = Environment{Name: "verbatim"}
	Verse       = Environment{Name: "verse"}
)

// Env creates environment with arbitrary name and no parameters.
func Env(name string) Environment {
	return Environment{Name: name}
}

// Array environment: \begin{array}[pos]{cols}
func Array(cols, pos string) Environment {
	return Environment{Name: "array", Params: optional(pos) + required(cols)}
}

// Figure environment: \begin{figure}[placement]
func Figure(placement string) Environment {
	return Environment{Name: "figure", Params: optional(placement)}
}

// Table environment: \begin{table}[placement]
func Table(placement string) Environment {
	return Environment{Name: "table", Params: optional(placement)}
}

// TabularEnv environment: \begin{tabular}[pos]{cols}, use Builder.Tabular to render rows from data.
func TabularEnv(cols, pos string) Environment {
	return Environment{Name: "tabular", Params: optional(pos) + required(cols)}
}

// FileContents environment: \begin{filecontents}[option]{filename}
func FileContents(filename, option string) Environment {
	return Environment{Name: "filecontents", Params: optional(option) + required(filename)}
}

// List environment: \begin{list}{labeling}{spacing}
func List(labeling, spacing string) Environment {
	return Environment{Name: "list", Params: required(labeling) + required(spacing)}
}

// TheBibliography environment: \begin{thebibliography}{widest label}
func TheBibliography(widest string) Environment {
	return Environment{Name: "thebibliography", Params: required(widest)}
}

// Minipage environment: \begin{minipage}[position][height][inner-pos]{width}
//
// Optional parameters are positional, so an empty one is kept as [] when a later one is set.
func Minipage(width, position, height, innerPos string) Environment {
	opts := []string{position, height, innerPos}
	for len(opts) > 0 && opts[len(opts)-1] == "" {
		opts = opts[:len(opts)-1]
	}

	var params strings.Builder
	for _, o := range opts {
		params.WriteString("[" + o + "]")
	}

	params.WriteString(required(width))

	return Environment{Name: "minipage", Params: params.String()}
}

// Picture environment: \begin{picture}(width,height)(x,y), offset is omitted when both x and y are empty.
func Picture(width, height, x, y string) Environment {
	params := "(" + width + "," + height + ")"
	if x != "" || y != "" {
		params += "(" + x + "," + y + ")"
	}

	return Environment{Name: "picture", Params: params}
}

// isVerbatim returns true for environments where body is written without escaping
func isVerbatim(name string) bool {
	switch name {
	case "verbatim", "verbatim*", "filecontents", "filecontents*", "lstlisting", "comment":
		return true
	default:
		return false
	}
}

func optional(v string) string {
	if v == "" {
		return ""
	}

	return "[" + v + "]"
}

func required(v string) string {
	return "{" + v + "}"
}
