package latex

import "regexp"

var whitespaces = regexp.MustCompile("[ \n\t\r]+")

type ColumnSpec struct {
	BorderLeft  bool   // column should have left border
	BorderRight bool   // column should have right border
	Align       string // column alignment: c, l, r or p, m, b for paragraph columns
	Width       string // width of paragraph column
}

// ColumnSpecs parses column spec of tabular environment, for example "|l|c|p{3cm}|".
// todo: add support for repeated syntax *{x}{...}
func ColumnSpecs(raw string) (spec []ColumnSpec) {
	raw = whitespaces.ReplaceAllString(raw, "") // remove all spaces since they don't have any meaning
	for pos := 0; pos < len(raw); pos++ {
		char := raw[pos]
		switch char {
		case 'c', 'l', 'r':
			spec = append(spec, ColumnSpec{
				BorderLeft:  pos > 0 && raw[pos-1] == '|',
				BorderRight: pos < len(raw)-1 && raw[pos+1] == '|',
				Align:       string(char),
			})
		case 'p', 'm', 'b':
			width, end := group(raw, pos+1)
			spec = append(spec, ColumnSpec{
				BorderLeft:  pos > 0 && raw[pos-1] == '|',
				BorderRight: end < len(raw)-1 && raw[end+1] == '|',
				Align:       string(char),
				Width:       width,
			})
			pos = end
		case '@', '!', '>', '<':
			// inter-column material and column modifiers are not columns
			_, pos = group(raw, pos+1)
		}
	}

	return
}

// group reads {...} group starting at pos, it returns group content and position of the closing brace
func group(raw string, pos int) (string, int) {
	if pos >= len(raw) || raw[pos] != '{' {
		return "", pos - 1
	}

	depth := 0
	for i := pos; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[pos+1 : i], i
			}
		}
	}

	return raw[pos+1:], len(raw) - 1
}
