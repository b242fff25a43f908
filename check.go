package latex

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	// key matches label keys, file, class and package names: anything which can not close or open a group
	key = regexp.MustCompile(`^[^{}\\\[\],%#\s]+$`)

	// option matches one entry of [a,b,c] list
	option = regexp.MustCompile(`^[^{}\[\],%]+$`)

	// environment matches environment names the tokenizer reads back
	environment = regexp.MustCompile(`^[a-zA-Z]+\*?$`)
)

func checkKey(op, what, value string) error {
	if !key.MatchString(value) {
		return &StructureError{Op: op, Reason: fmt.Sprintf("invalid %s %q", what, value)}
	}

	return nil
}

func checkOptions(op string, opts []string) error {
	for _, o := range opts {
		if !option.MatchString(o) {
			return &StructureError{Op: op, Reason: fmt.Sprintf("invalid option %q", o)}
		}
	}

	return nil
}

func checkCommand(op, name string) error {
	if !identifier.MatchString(name) {
		return &StructureError{Op: op, Reason: fmt.Sprintf("invalid command name %q", name)}
	}

	return nil
}

func checkEnvironment(op string, env Environment) error {
	switch {
	case env.Name == "":
		return &StructureError{Op: op, Reason: "environment name is required"}
	case env.Name == "document":
		return &StructureError{Op: op, Reason: "document environment is managed by BeginDocument and EndDocument"}
	case !environment.MatchString(env.Name):
		return &StructureError{Op: op, Reason: fmt.Sprintf("invalid environment name %q", env.Name)}
	}

	if err := Validate(env.Params); err != nil {
		return fmt.Errorf("%s: %s parameters: %w", op, env.Name, err)
	}

	return nil
}

// checkNode rejects nodes which can not be rendered inside document body, children are checked too
func checkNode(op string, node *Node) error {
	switch node.Kind {
	case DocumentKind, ClassKind, PackageKind:
		return &StructureError{Op: op, Reason: "preamble node in document body"}
	case TextKind, LineKind:
	case RawKind:
		if err := Validate(node.Data); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	case FormattedKind, SectionKind, MetaKind:
		if err := checkCommand(op, node.Name); err != nil {
			return err
		}
	case LabelKind:
		if err := checkKey(op, "label key", node.Data); err != nil {
			return err
		}
	case ReferenceKind:
		if err := checkKey(op, "reference key", node.Data); err != nil {
			return err
		}
	case CommandKind:
		if err := checkCommand(op, node.Name); err != nil {
			return err
		}

		if err := checkOptions(op, node.Options); err != nil {
			return err
		}
	case EnvironmentKind:
		if err := checkEnvironment(op, Environment{Name: node.Name, Params: node.Params}); err != nil {
			return err
		}

		if isVerbatim(node.Name) {
			if err := checkVerbatim(op, node.Name, node.Children...); err != nil {
				return err
			}
		}
	case TabularKind:
		if err := Validate(node.Params); err != nil {
			return fmt.Errorf("%s: tabular parameters: %w", op, err)
		}
	default:
		return &StructureError{Op: op, Reason: fmt.Sprintf("unknown node kind %v", node.Kind)}
	}

	for _, child := range node.Children {
		if err := checkNode(op, child); err != nil {
			return err
		}
	}

	return nil
}

// checkVerbatim rejects verbatim content which would end environment name before its \end
func checkVerbatim(op, name string, nodes ...*Node) error {
	closing := "\\end{" + name + "}"

	for _, node := range nodes {
		var out strings.Builder
		_ = renderVerbatim(&out, node)

		if strings.Contains(out.String(), closing) {
			return &StructureError{Op: op, Reason: fmt.Sprintf("%s body contains %s", name, closing)}
		}
	}

	return nil
}

// clone returns deep copy of the node, path holds nodes on the way from the root to detect cycles
func clone(node *Node, path map[*Node]bool) (*Node, error) {
	if node == nil {
		return nil, errors.New("nil node")
	}

	if path[node] {
		return nil, errors.New("node contains itself")
	}

	path[node] = true
	defer delete(path, node)

	c := *node
	c.Options = slices.Clone(node.Options)
	c.Args = slices.Clone(node.Args)
	c.Rows = cloneRows(node.Rows)
	c.Children = nil

	for _, child := range node.Children {
		cc, err := clone(child, path)
		if err != nil {
			return nil, err
		}

		c.Children = append(c.Children, cc)
	}

	return &c, nil
}

func cloneRows(rows [][]string) [][]string {
	if rows == nil {
		return nil
	}

	c := make([][]string, len(rows))
	for i, row := range rows {
		c[i] = slices.Clone(row)
	}

	return c
}
