package latex

import (
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Builder accumulates document content in call order and renders it into LaTeX markup.
//
// Builder is not safe for concurrent use. Build and Render do not modify the builder, once mutation has stopped
// they can be called any number of times, including from multiple goroutines.
type Builder struct {
	state    State
	class    bool
	preamble []*Node
	body     []*Node
	stack    []*Node // open environments, innermost last
	indent   string
	log      *slog.Logger
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{log: nopLogger()}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// State returns current state of the builder.
func (b *Builder) State() State {
	return b.state
}

// Depth returns number of environments opened with BeginEnv and not closed yet.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// SetDocumentClass adds \documentclass[options]{class}, it can be called only once and only in the preamble.
func (b *Builder) SetDocumentClass(class Class, options ...string) error {
	if err := b.expect("documentclass", Preamble); err != nil {
		return err
	}

	if b.class {
		return b.reject(&StateError{Op: "documentclass", State: b.state}, "document class is already set")
	}

	if err := b.checkHeader("documentclass", "class name", string(class), options); err != nil {
		return err
	}

	b.class = true
	b.preamble = append(b.preamble, &Node{Kind: ClassKind, Data: string(class), Options: slices.Clone(options)})

	return nil
}

// UsePackage adds \usepackage[options]{name}. Packages are not deduplicated.
func (b *Builder) UsePackage(name string, options ...string) error {
	if err := b.expect("usepackage", Preamble); err != nil {
		return err
	}

	if err := b.checkHeader("usepackage", "package name", name, options); err != nil {
		return err
	}

	return b.insert("usepackage", &Node{Kind: PackageKind, Data: name, Options: slices.Clone(options)})
}

// BeginDocument ends the preamble and starts the document body.
func (b *Builder) BeginDocument() error {
	if err := b.expect("begin document", Preamble); err != nil {
		return err
	}

	b.transition(InDocument)
	return nil
}

// EndDocument closes the document body, no content can be added afterward.
func (b *Builder) EndDocument() error {
	if err := b.expect("end document", InDocument); err != nil {
		return err
	}

	if len(b.stack) > 0 {
		return b.reject(b.unclosed("end document"), "environment is open")
	}

	b.transition(Closed)
	return nil
}

// Add appends nodes at the current insertion point, the structured counterpart of other content methods.
// Nodes are copied, changing them afterward does not affect the document.
func (b *Builder) Add(nodes ...*Node) error {
	if err := b.expect("add", InDocument); err != nil {
		return err
	}

	copies, err := b.checkNodes("add", nodes)
	if err != nil {
		return err
	}

	if err := b.checkInsert("add", copies...); err != nil {
		return err
	}

	for _, node := range copies {
		b.append(node)
	}

	return nil
}

// Env adds environment with a single text body, text is escaped unless the environment is verbatim.
func (b *Builder) Env(env Environment, body string) error {
	return b.EnvNodes(env, Text(body))
}

// EnvNodes adds environment with a body made of nodes, nodes may contain other environments.
func (b *Builder) EnvNodes(env Environment, children ...*Node) error {
	if err := b.expect("env", InDocument); err != nil {
		return err
	}

	if err := b.checkEnv("env", env); err != nil {
		return err
	}

	copies, err := b.checkNodes("env", children)
	if err != nil {
		return err
	}

	node := EnvNode(env, copies...)
	if isVerbatim(env.Name) {
		if err := checkVerbatim("env", env.Name, copies...); err != nil {
			return b.reject(err, "invalid node")
		}
	}

	return b.insert("env", node)
}

// BeginEnv opens environment, following content is added into it until EndEnv is called.
func (b *Builder) BeginEnv(env Environment) error {
	if err := b.expect("begin env", InDocument); err != nil {
		return err
	}

	if err := b.checkEnv("begin env", env); err != nil {
		return err
	}

	node := EnvNode(env)
	if err := b.insert("begin env", node); err != nil {
		return err
	}

	b.stack = append(b.stack, node)
	b.log.Debug("Environment opened", "env", env.Name, "depth", len(b.stack))

	return nil
}

// EndEnv closes the innermost environment opened with BeginEnv.
func (b *Builder) EndEnv() error {
	if err := b.expect("end env", InDocument); err != nil {
		return err
	}

	if len(b.stack) == 0 {
		return b.reject(&StructureError{Op: "end env", Reason: "no open environment"}, "unbalanced environment")
	}

	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.log.Debug("Environment closed", "env", top.Name, "depth", len(b.stack))

	return nil
}

// Build renders the document into a string, see Render.
func (b *Builder) Build() (string, error) {
	var out strings.Builder
	if err := b.Render(&out); err != nil {
		return "", err
	}

	return out.String(), nil
}

// Render writes the document: preamble, \begin{document} once the body has started, body and \end{document} once the
// document is closed. Render fails if an environment opened with BeginEnv is not closed.
func (b *Builder) Render(w io.Writer) error {
	if len(b.stack) > 0 {
		return b.unclosed("render")
	}

	r := renderer{indent: b.indent}
	if err := r.renderLines(w, b.preamble, 0); err != nil {
		return err
	}

	if b.state == Preamble {
		return nil
	}

	if _, err := io.WriteString(w, "\\begin{document}\n"); err != nil {
		return err
	}

	if err := r.renderLines(w, b.body, 0); err != nil {
		return err
	}

	if b.state == Closed {
		if _, err := io.WriteString(w, "\\end{document}\n"); err != nil {
			return err
		}
	}

	return nil
}

// add appends node at insertion point if builder is in one of the given states
func (b *Builder) add(op string, node *Node, states ...State) error {
	if err := b.expect(op, states...); err != nil {
		return err
	}

	return b.insert(op, node)
}

// insert appends node at insertion point unless it would end an open verbatim environment
func (b *Builder) insert(op string, node *Node) error {
	if err := b.checkInsert(op, node); err != nil {
		return err
	}

	b.append(node)
	return nil
}

func (b *Builder) append(node *Node) {
	switch {
	case len(b.stack) > 0:
		top := b.stack[len(b.stack)-1]
		top.Children = append(top.Children, node)
	case b.state == Preamble:
		b.preamble = append(b.preamble, node)
	default:
		b.body = append(b.body, node)
	}
}

func (b *Builder) expect(op string, states ...State) error {
	for _, s := range states {
		if b.state == s {
			return nil
		}
	}

	return b.reject(&StateError{Op: op, State: b.state}, "operation is not allowed")
}

func (b *Builder) checkEnv(op string, env Environment) error {
	if err := checkEnvironment(op, env); err != nil {
		return b.reject(err, "invalid environment")
	}

	return nil
}

func (b *Builder) checkHeader(op, what, name string, options []string) error {
	if err := checkKey(op, what, name); err != nil {
		return b.reject(err, "invalid "+what)
	}

	if err := checkOptions(op, options); err != nil {
		return b.reject(err, "invalid option")
	}

	return nil
}

// checkNodes returns checked deep copies of the nodes
func (b *Builder) checkNodes(op string, nodes []*Node) ([]*Node, error) {
	copies := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		c, err := clone(node, map[*Node]bool{})
		if err != nil {
			return nil, b.reject(&StructureError{Op: op, Reason: err.Error()}, "invalid node")
		}

		if err := checkNode(op, c); err != nil {
			return nil, b.reject(err, "invalid node")
		}

		copies = append(copies, c)
	}

	return copies, nil
}

// checkInsert rejects nodes which would terminate any of open verbatim environments
func (b *Builder) checkInsert(op string, nodes ...*Node) error {
	for _, env := range b.stack {
		if !isVerbatim(env.Name) {
			continue
		}

		if err := checkVerbatim(op, env.Name, nodes...); err != nil {
			return b.reject(err, "invalid node")
		}
	}

	return nil
}

func (b *Builder) unclosed(op string) *StructureError {
	open := make([]string, len(b.stack))
	for i, node := range b.stack {
		open[i] = node.Name
	}

	return &StructureError{Op: op, Reason: "unclosed environment", Open: open}
}

func (b *Builder) transition(to State) {
	b.log.Debug("Builder state changed", "from", b.state.String(), "to", to.String())
	b.state = to
}

func (b *Builder) reject(err error, msg string) error {
	b.log.Debug(msg, "state", b.state.String(), "err", err)
	return err
}
