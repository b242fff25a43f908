package latex

import (
	"fmt"
	"io"
	"strings"
)

// Render writes node as LaTeX markup, one top level construct per line.
func Render(w io.Writer, node *Node) error {
	return renderer{}.render(w, node, 0)
}

// renderer is stateless, indent is written once per nesting level in front of environment body lines
type renderer struct {
	indent string
}

func (r renderer) render(w io.Writer, node *Node, depth int) error {
	switch node.Kind {
	case DocumentKind:
		return r.renderLines(w, node.Children, depth)
	case TextKind:
		_, err := fmt.Fprint(w, Escape(node.Data))
		return err
	case RawKind:
		_, err := fmt.Fprint(w, node.Data)
		return err
	case FormattedKind, SectionKind, MetaKind:
		_, err := fmt.Fprint(w, node.Name, "{", Escape(node.Data), "}")
		return err
	case LabelKind:
		_, err := fmt.Fprint(w, "\\label{", node.Data, "}")
		return err
	case ReferenceKind:
		_, err := fmt.Fprint(w, "\\ref{", node.Data, "}")
		return err
	case CommandKind:
		return renderCommand(w, node)
	case ClassKind:
		_, err := fmt.Fprint(w, "\\documentclass", options(node.Options), "{", node.Data, "}")
		return err
	case PackageKind:
		_, err := fmt.Fprint(w, "\\usepackage", options(node.Options), "{", node.Data, "}")
		return err
	case LineKind:
		for _, child := range node.Children {
			if err := r.render(w, child, depth); err != nil {
				return err
			}
		}

		return nil
	case EnvironmentKind:
		return r.renderEnvironment(w, node, depth)
	case TabularKind:
		return r.renderTabular(w, node, depth)
	default:
		return fmt.Errorf("unknown node kind %v", node.Kind)
	}
}

// renderLines writes each node on its own line, every line is terminated by a line break
func (r renderer) renderLines(w io.Writer, nodes []*Node, depth int) error {
	prefix := strings.Repeat(r.indent, depth)
	for _, node := range nodes {
		if _, err := fmt.Fprint(w, prefix); err != nil {
			return err
		}

		if err := r.render(w, node, depth); err != nil {
			return err
		}

		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

func (r renderer) renderEnvironment(w io.Writer, node *Node, depth int) error {
	if _, err := fmt.Fprint(w, "\\begin{", node.Name, "}", node.Params, "\n"); err != nil {
		return err
	}

	if isVerbatim(node.Name) {
		for _, child := range node.Children {
			if err := renderVerbatim(w, child); err != nil {
				return err
			}

			if _, err := fmt.Fprint(w, "\n"); err != nil {
				return err
			}
		}
	} else if err := r.renderLines(w, node.Children, depth+1); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, strings.Repeat(r.indent, depth), "\\end{", node.Name, "}")
	return err
}

// renderVerbatim writes text as is, without escaping, other nodes are rendered normally
func renderVerbatim(w io.Writer, node *Node) error {
	switch node.Kind {
	case TextKind, RawKind:
		_, err := fmt.Fprint(w, node.Data)
		return err
	case LineKind:
		for _, child := range node.Children {
			if err := renderVerbatim(w, child); err != nil {
				return err
			}
		}

		return nil
	default:
		return renderer{}.render(w, node, 0)
	}
}

func (r renderer) renderTabular(w io.Writer, node *Node, depth int) error {
	prefix := strings.Repeat(r.indent, depth)

	var rows []string
	for index, row := range node.Rows {
		if len(row) == 0 {
			rows = append(rows, prefix+r.indent+"\\hline")
			continue
		}

		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.TrimSpace(Escape(cell))
		}

		suffix := " \\\\"
		if index == len(node.Rows)-1 {
			suffix = ""
		}

		rows = append(rows, prefix+r.indent+strings.Join(cells, " & ")+suffix)
	}

	body := ""
	if len(rows) > 0 {
		body = strings.Join(rows, "\n") + "\n"
	}

	_, err := fmt.Fprint(w, "\\begin{tabular}", node.Params, "\n", body, prefix, "\\end{tabular}")
	return err
}

func renderCommand(w io.Writer, node *Node) error {
	if _, err := fmt.Fprint(w, node.Name, options(node.Options)); err != nil {
		return err
	}

	for _, arg := range node.Args {
		if _, err := fmt.Fprint(w, "{", Escape(arg), "}"); err != nil {
			return err
		}
	}

	return nil
}

// options renders [a,b,c] or nothing at all if there are no options
func options(opts []string) string {
	if len(opts) == 0 {
		return ""
	}

	return "[" + strings.Join(opts, ",") + "]"
}
