package latex

type Kind int

const (
	DocumentKind Kind = iota
	TextKind
	RawKind
	FormattedKind
	SectionKind
	EnvironmentKind
	LabelKind
	ReferenceKind
	MetaKind
	CommandKind
	ClassKind
	PackageKind
	LineKind
	TabularKind
)

// Node is one unit of document content. Which fields are meaningful depends on Kind:
//
//   - TextKind, RawKind: Data holds the text
//   - FormattedKind, SectionKind, MetaKind: Name holds the command (eg. \textbf), Data holds the text
//   - LabelKind, ReferenceKind: Data holds the key
//   - CommandKind: Name, Options and Args
//   - ClassKind, PackageKind: Data holds the class or package name, Options its options
//   - EnvironmentKind: Name, Params and Children
//   - DocumentKind, LineKind: Children
//   - TabularKind: Params (column spec) and Rows
type Node struct {
	Kind     Kind
	Name     string
	Data     string
	Params   string
	Options  []string
	Args     []string
	Children []*Node
	Rows     [][]string
}

func Text(text string) *Node {
	return &Node{Kind: TextKind, Data: text}
}

// Raw creates node with markup which is written as is. Use Validate to make sure markup is balanced.
func Raw(markup string) *Node {
	return &Node{Kind: RawKind, Data: markup}
}

func Bold(text string) *Node {
	return &Node{Kind: FormattedKind, Name: "\\textbf", Data: text}
}

func Italic(text string) *Node {
	return &Node{Kind: FormattedKind, Name: "\\textit", Data: text}
}

func Underline(text string) *Node {
	return &Node{Kind: FormattedKind, Name: "\\underline", Data: text}
}

func Label(key string) *Node {
	return &Node{Kind: LabelKind, Data: key}
}

func Ref(key string) *Node {
	return &Node{Kind: ReferenceKind, Data: key}
}

// Cmd creates arbitrary command, name must include leading backslash. Arguments are escaped.
func Cmd(name string, args ...string) *Node {
	return &Node{Kind: CommandKind, Name: name, Args: args}
}

// Line groups inline nodes, they are rendered one after another without line breaks.
func Line(children ...*Node) *Node {
	return &Node{Kind: LineKind, Children: children}
}

// EnvNode creates environment with given body.
func EnvNode(env Environment, children ...*Node) *Node {
	return &Node{Kind: EnvironmentKind, Name: env.Name, Params: env.Params, Children: children}
}
