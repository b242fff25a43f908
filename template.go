package latex

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template is a declarative description of a document, usually loaded from YAML:
//
//	class: article
//	packages:
//	  - name: amsmath
//	title: My First Document
//	maketitle: true
//	body:
//	  - section: Introduction
//	  - text: This is the introduction.
type Template struct {
	Class        Class     `yaml:"class"`
	ClassOptions []string  `yaml:"classOptions"`
	Packages     []Package `yaml:"packages"`
	Preamble     []string  `yaml:"preamble"` // raw markup, for example \newcommand definitions
	Title        string    `yaml:"title"`
	Author       string    `yaml:"author"`
	Date         string    `yaml:"date"`
	MakeTitle    bool      `yaml:"maketitle"`
	Body         []Block   `yaml:"body"`
}

type Package struct {
	Name    string   `yaml:"name"`
	Options []string `yaml:"options"`
}

// Block is one element of the document body, exactly one content field must be set.
type Block struct {
	Section       string `yaml:"section"`
	Subsection    string `yaml:"subsection"`
	Subsubsection string `yaml:"subsubsection"`
	Paragraph     string `yaml:"paragraph"`
	Subparagraph  string `yaml:"subparagraph"`
	Text          string `yaml:"text"`
	Bold          string `yaml:"bold"`
	Italic        string `yaml:"italic"`
	Underline     string `yaml:"underline"`
	Footnote      string `yaml:"footnote"`
	Item          string `yaml:"item"`
	Label         string `yaml:"label"`
	Ref           string `yaml:"ref"`
	Raw           string `yaml:"raw"`

	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`

	Env    string  `yaml:"env"`
	Params string  `yaml:"params"`
	Body   []Block `yaml:"body"`

	Table *TableBlock `yaml:"table"`

	NewLine   bool `yaml:"newline"`
	NewPage   bool `yaml:"newpage"`
	ClearPage bool `yaml:"clearpage"`
}

type TableBlock struct {
	Spec string     `yaml:"spec"`
	Rows [][]string `yaml:"rows"`
}

// LoadTemplate decodes YAML template, unknown fields are rejected.
func LoadTemplate(r io.Reader) (*Template, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Template
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("template is empty")
		}

		return nil, fmt.Errorf("unable to decode template: %w", err)
	}

	return &t, nil
}

// Build replays template onto a new closed Builder. Class defaults to article.
func (t *Template) Build(opts ...Option) (*Builder, error) {
	b := NewBuilder(opts...)

	class := t.Class
	if class == "" {
		class = Article
	}

	if err := b.SetDocumentClass(class, t.ClassOptions...); err != nil {
		return nil, err
	}

	for index, pkg := range t.Packages {
		if pkg.Name == "" {
			return nil, fmt.Errorf("packages[%d]: package name is required", index)
		}

		if err := b.UsePackage(pkg.Name, pkg.Options...); err != nil {
			return nil, err
		}
	}

	for index, markup := range t.Preamble {
		if err := b.Raw(markup); err != nil {
			return nil, fmt.Errorf("preamble[%d]: %w", index, err)
		}
	}

	if err := b.BeginDocument(); err != nil {
		return nil, err
	}

	meta := []struct {
		value string
		add   func(string) error
	}{
		{t.Title, b.Title},
		{t.Author, b.Author},
		{t.Date, b.Date},
	}

	for _, m := range meta {
		if m.value == "" {
			continue
		}

		if err := m.add(m.value); err != nil {
			return nil, err
		}
	}

	if t.MakeTitle {
		if err := b.MakeTitle(); err != nil {
			return nil, err
		}
	}

	if err := applyBlocks(b, t.Body, "body"); err != nil {
		return nil, err
	}

	if err := b.EndDocument(); err != nil {
		return nil, err
	}

	return b, nil
}

func applyBlocks(b *Builder, blocks []Block, path string) error {
	for index, block := range blocks {
		if err := applyBlock(b, block, fmt.Sprintf("%s[%d]", path, index)); err != nil {
			return err
		}
	}

	return nil
}

// applyBlock adds block content, errors are prefixed with the block path, eg. body[2].body[0]
func applyBlock(b *Builder, block Block, where string) error {
	wrap := func(err error) error {
		if err == nil {
			return nil
		}

		return fmt.Errorf("%s: %w", where, err)
	}

	var set []string

	texts := []struct {
		name  string
		value string
		add   func(string) error
	}{
		{"section", block.Section, b.Section},
		{"subsection", block.Subsection, b.Subsection},
		{"subsubsection", block.Subsubsection, b.Subsubsection},
		{"paragraph", block.Paragraph, b.Paragraph},
		{"subparagraph", block.Subparagraph, b.Subparagraph},
		{"text", block.Text, b.Literal},
		{"bold", block.Bold, b.Bold},
		{"italic", block.Italic, b.Italic},
		{"underline", block.Underline, b.Underline},
		{"footnote", block.Footnote, b.Footnote},
		{"item", block.Item, b.Item},
		{"label", block.Label, b.Label},
		{"ref", block.Ref, b.Ref},
		{"raw", block.Raw, b.Raw},
	}

	var add func() error
	for _, t := range texts {
		t := t
		if t.value == "" {
			continue
		}

		set = append(set, t.name)
		add = func() error { return wrap(t.add(t.value)) }
	}

	if block.Command != "" {
		set = append(set, "command")
		add = func() error { return wrap(b.Command(block.Command, block.Args...)) }
	}

	if block.Env != "" {
		set = append(set, "env")
		add = func() error {
			if err := b.BeginEnv(Environment{Name: block.Env, Params: block.Params}); err != nil {
				return wrap(err)
			}

			if err := applyBlocks(b, block.Body, where+".body"); err != nil {
				return err
			}

			return wrap(b.EndEnv())
		}
	}

	if block.Table != nil {
		set = append(set, "table")
		add = func() error { return wrap(b.Tabular(block.Table.Spec, block.Table.Rows)) }
	}

	flags := []struct {
		name  string
		value bool
		add   func() error
	}{
		{"newline", block.NewLine, b.NewLine},
		{"newpage", block.NewPage, b.NewPage},
		{"clearpage", block.ClearPage, b.ClearPage},
	}

	for _, f := range flags {
		f := f
		if !f.value {
			continue
		}

		set = append(set, f.name)
		add = func() error { return wrap(f.add()) }
	}

	switch len(set) {
	case 0:
		return wrap(errors.New("block does not have any content"))
	case 1:
		return add()
	default:
		return wrap(fmt.Errorf("block must have exactly one content field, got: %s", strings.Join(set, ", ")))
	}
}
