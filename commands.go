package latex

import (
	"fmt"
	"slices"
	"strings"
)

// Title adds \title{text}.
func (b *Builder) Title(text string) error {
	return b.add("title", &Node{Kind: MetaKind, Name: "\\title", Data: text}, InDocument)
}

// Author adds \author{text}.
func (b *Builder) Author(text string) error {
	return b.add("author", &Node{Kind: MetaKind, Name: "\\author", Data: text}, InDocument)
}

// Date adds \date{text}.
func (b *Builder) Date(text string) error {
	return b.add("date", &Node{Kind: MetaKind, Name: "\\date", Data: text}, InDocument)
}

// MakeTitle adds \maketitle at the current position.
func (b *Builder) MakeTitle() error {
	return b.add("maketitle", Cmd("\\maketitle"), InDocument)
}

func (b *Builder) Section(title string) error {
	return b.sectioning("\\section", title)
}

func (b *Builder) Subsection(title string) error {
	return b.sectioning("\\subsection", title)
}

func (b *Builder) Subsubsection(title string) error {
	return b.sectioning("\\subsubsection", title)
}

func (b *Builder) Paragraph(title string) error {
	return b.sectioning("\\paragraph", title)
}

func (b *Builder) Subparagraph(title string) error {
	return b.sectioning("\\subparagraph", title)
}

// Literal adds text, reserved characters are escaped.
func (b *Builder) Literal(text string) error {
	return b.add("literal", Text(text), InDocument)
}

func (b *Builder) Bold(text string) error {
	return b.add("bold", Bold(text), InDocument)
}

func (b *Builder) Italic(text string) error {
	return b.add("italic", Italic(text), InDocument)
}

func (b *Builder) Underline(text string) error {
	return b.add("underline", Underline(text), InDocument)
}

// Label adds \label{key}. Keys are not checked for uniqueness, but may not contain braces, brackets, commas, % or #.
func (b *Builder) Label(key string) error {
	return b.keyed("label", "label key", key, Label(key))
}

// Ref adds \ref{key}. The label does not have to exist.
func (b *Builder) Ref(key string) error {
	return b.keyed("ref", "reference key", key, Ref(key))
}

// Cite adds \cite[note]{key}, the note is omitted when empty.
func (b *Builder) Cite(key, note string) error {
	if err := b.expect("cite", InDocument); err != nil {
		return err
	}

	if err := checkKey("cite", "citation key", key); err != nil {
		return b.reject(err, "invalid key")
	}

	if strings.Contains(note, "]") {
		return b.reject(&StructureError{Op: "cite", Reason: fmt.Sprintf("invalid note %q", note)}, "invalid note")
	}

	return b.insert("cite", &Node{Kind: RawKind, Data: "\\cite" + optional(Escape(note)) + required(key)})
}

func (b *Builder) Footnote(text string) error {
	return b.add("footnote", Cmd("\\footnote", text), InDocument)
}

// TextColor adds \textcolor[model]{color}{text}, the model is omitted when empty.
func (b *Builder) TextColor(text, color string, model ColorModel) error {
	if err := b.expect("textcolor", InDocument); err != nil {
		return err
	}

	node := &Node{Kind: CommandKind, Name: "\\textcolor", Args: []string{color, text}}
	if model != "" {
		node.Options = []string{string(model)}
	}

	if err := checkOptions("textcolor", node.Options); err != nil {
		return b.reject(err, "invalid color model")
	}

	return b.insert("textcolor", node)
}

// HSpace adds \hspace{length}, length must be a number followed by a unit, for example 1.5cm or 0.5\textwidth.
func (b *Builder) HSpace(length string) error {
	return b.space("\\hspace", length)
}

// VSpace adds \vspace{length}, see HSpace.
func (b *Builder) VSpace(length string) error {
	return b.space("\\vspace", length)
}

func (b *Builder) Include(filename string) error {
	return b.keyed("include", "file name", filename, Raw("\\include"+required(filename)))
}

func (b *Builder) Input(filename string) error {
	return b.keyed("input", "file name", filename, Raw("\\input"+required(filename)))
}

// NewLine adds forced line break \\.
func (b *Builder) NewLine() error {
	return b.add("newline", Cmd("\\\\"), InDocument)
}

func (b *Builder) ClearPage() error {
	return b.add("clearpage", Cmd("\\clearpage"), InDocument)
}

func (b *Builder) NewPage() error {
	return b.add("newpage", Cmd("\\newpage"), InDocument)
}

func (b *Builder) LineBreak() error {
	return b.add("linebreak", Cmd("\\linebreak"), InDocument)
}

func (b *Builder) PageBreak() error {
	return b.add("pagebreak", Cmd("\\pagebreak"), InDocument)
}

func (b *Builder) NoIndent() error {
	return b.add("noindent", Cmd("\\noindent"), InDocument)
}

func (b *Builder) Centering() error {
	return b.add("centering", Cmd("\\centering"), InDocument)
}

// Item adds \item text, normally inside itemize or enumerate environment.
func (b *Builder) Item(text string) error {
	return b.add("item", Line(Raw("\\item "), Text(text)), InDocument)
}

// Command adds arbitrary command, name must include leading backslash. It is allowed in the preamble too, for example
// to add \newcommand definitions.
func (b *Builder) Command(name string, args ...string) error {
	return b.CommandWithOptions(name, nil, args...)
}

// CommandWithOptions adds \name[options]{args}..., arguments are escaped, options are not.
func (b *Builder) CommandWithOptions(name string, options []string, args ...string) error {
	if err := b.expect("command", Preamble, InDocument); err != nil {
		return err
	}

	if err := checkCommand("command", name); err != nil {
		return b.reject(err, "invalid command")
	}

	if err := checkOptions("command", options); err != nil {
		return b.reject(err, "invalid option")
	}

	return b.insert("command", &Node{Kind: CommandKind, Name: name, Options: slices.Clone(options), Args: slices.Clone(args)})
}

// Raw adds markup as is, it is allowed in the preamble too. The markup must have balanced braces and environments.
func (b *Builder) Raw(markup string) error {
	if err := b.expect("raw", Preamble, InDocument); err != nil {
		return err
	}

	if err := Validate(markup); err != nil {
		return b.reject(fmt.Errorf("raw: %w", err), "invalid markup")
	}

	return b.insert("raw", Raw(markup))
}

// Tabular adds tabular environment with given column spec and rows, an empty row is rendered as \hline.
// Rows may not have more cells than columns declared in the spec.
func (b *Builder) Tabular(spec string, rows [][]string) error {
	if err := b.expect("tabular", InDocument); err != nil {
		return err
	}

	node, err := NewTabular(spec, "", rows)
	if err != nil {
		return b.reject(fmt.Errorf("tabular: %w", err), "invalid table")
	}

	return b.insert("tabular", node)
}

func (b *Builder) sectioning(command, title string) error {
	return b.add(command[1:], &Node{Kind: SectionKind, Name: command, Data: title}, InDocument)
}

func (b *Builder) space(command, length string) error {
	if err := b.expect(command[1:], InDocument); err != nil {
		return err
	}

	if _, _, err := Measure(length); err != nil {
		return b.reject(fmt.Errorf("%s: %w", command[1:], err), "invalid length")
	}

	return b.insert(command[1:], &Node{Kind: RawKind, Data: command + required(length)})
}

// keyed adds node referring to a key or a file name
func (b *Builder) keyed(op, what, key string, node *Node) error {
	if err := b.expect(op, InDocument); err != nil {
		return err
	}

	if err := checkKey(op, what, key); err != nil {
		return b.reject(err, "invalid "+what)
	}

	return b.insert(op, node)
}
