package latex

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Tokenizer splits markup into tokens which are relevant for document structure: groups, environments, commands,
// verbatim blocks and text. It does not interpret commands.
type Tokenizer struct {
	r io.RuneScanner
}

func NewTokenizer(r io.RuneScanner) *Tokenizer {
	return &Tokenizer{r: r}
}

// Token returns next token or io.EOF when input is over.
func (l *Tokenizer) Token() (any, error) {
	char, _, err := l.r.ReadRune()
	if err != nil {
		return nil, err
	}

	switch char {
	case '{':
		return ParameterStart{}, nil
	case '}':
		return ParameterEnd{}, nil
	case '%':
		return l.readLineComment()
	case '$':
		return l.readMath()
	case '\\':
		return l.readBackslash()
	default:
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readText()
	}
}

func (l *Tokenizer) readText() (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return TextToken(runes), nil
		}

		if err != nil {
			return nil, err
		}

		if isSpecial(read) {
			return TextToken(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)

		if read == '\n' {
			return TextToken(runes), nil
		}
	}
}

func (l *Tokenizer) readMath() (any, error) {
	// we already entered math with one $, check if next one is $ too (ie. math block)
	read, _, err := l.r.ReadRune()
	if err == io.EOF {
		return nil, errors.New("EOF: math is not closed")
	}

	if err != nil {
		return nil, err
	}

	isBlock := read == '$' // math is described in block (two $$ in the beginning and in the end)
	isClosing := false     // we found first closing $ for block and expecting one more

	var runes = []rune{'$', read}

	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, errors.New("EOF: math is not closed")
		}

		if err != nil {
			return nil, err
		}

		if read == '$' && !escaped(runes) {
			if !isBlock {
				return VerbatimToken{Kind: "$", Data: string(runes[1:])}, nil
			}

			if isClosing {
				return VerbatimToken{Kind: "$$", Data: string(runes[2:])}, nil
			}

			isClosing = true
			continue
		}

		// previous rune was $, but this one is not, so let's add $ because it's not part of the closing sequence
		if isClosing {
			runes = append(runes, '$')
		}

		isClosing = false
		runes = append(runes, read)
	}
}

func (l *Tokenizer) readBackslash() (any, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return nil, errors.New("EOF: command name is expected after \\")
	}

	if err != nil {
		return nil, err
	}

	// one symbol command: \\ and \\*
	if r == '\\' {
		star, err := l.star()
		if err != nil {
			return nil, err
		}

		if star {
			return CommandToken("\\\\*"), nil
		}

		return CommandToken("\\\\"), nil
	}

	// a letter means it's a named command \xyz
	if isLetter(r) {
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readCommand()
	}

	// special character escaped by \\
	return TextToken(r), nil
}

func (l *Tokenizer) readCommand() (any, error) {
	runes := []rune{'\\'}
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		if isLetter(read) {
			runes = append(runes, read)
			continue
		}

		// command names may include * in the end (except for begin and end)
		if read == '*' && string(runes) != "\\begin" && string(runes) != "\\end" {
			runes = append(runes, read)
			break
		}

		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		break
	}

	command := string(runes)

	switch command {
	case "\\verb", "\\verb*":
		return l.readVerbatim(command)
	case "\\begin":
		return l.readBlockStart()
	case "\\end":
		return l.readBlockEnd()
	default:
		return CommandToken(command), nil
	}
}

func (l *Tokenizer) readBlockStart() (any, error) {
	name, err := l.environmentName()
	if err != nil {
		return nil, err
	}

	if isVerbatim(name) {
		return l.readVerbatimBlock(name)
	}

	return EnvironmentStart{Name: name}, nil
}

func (l *Tokenizer) readBlockEnd() (any, error) {
	name, err := l.environmentName()
	if err != nil {
		return nil, err
	}

	return EnvironmentEnd{Name: name}, nil
}

// environmentName reads {name} after \begin and \end
func (l *Tokenizer) environmentName() (string, error) {
	if err := l.forwardTo('{'); err != nil {
		return "", err
	}

	word, err := l.word()
	if err != nil {
		return "", err
	}

	star, err := l.star()
	if err != nil {
		return "", err
	}

	if word == "" {
		return "", errors.New("environment name is expected")
	}

	if star {
		word += "*"
	}

	if err := l.expect('}'); err != nil {
		return "", err
	}

	return word, nil
}

// readLineComment reads one line comment after %
func (l *Tokenizer) readLineComment() (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF || read == '\n' {
			return VerbatimToken{Kind: "%", Data: string(runes)}, nil
		}

		if err != nil {
			return nil, err
		}

		runes = append(runes, read)
	}
}

// readVerbatimBlock reads verbatim block (ie. block where all markup is ignored) of a given type (eg. comment, verbatim etc)
// until it finds closing \\end command.
func (l *Tokenizer) readVerbatimBlock(kind string) (any, error) {
	closing := "\\end{" + kind + "}"

	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, fmt.Errorf("EOF: %s environment is not closed", kind)
		}

		if err != nil {
			return nil, err
		}

		runes = append(runes, read)

		if read == '}' && strings.HasSuffix(string(runes), closing) {
			return VerbatimToken{Kind: kind, Data: strings.TrimSuffix(string(runes), closing)}, nil
		}
	}
}

func (l *Tokenizer) readVerbatim(command string) (any, error) {
	delimiter, _, err := l.r.ReadRune()
	if err == io.EOF {
		return nil, fmt.Errorf("EOF: %s delimiter is expected", command)
	}

	if err != nil {
		return nil, err
	}

	if isWhitespace(delimiter) || isLetter(delimiter) || delimiter == '*' {
		return nil, fmt.Errorf("delimiter character \"%c\" is not allowed", delimiter)
	}

	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, fmt.Errorf("EOF: %s is not closed", command)
		}

		if err != nil {
			return nil, err
		}

		if read == delimiter {
			return VerbatimToken{Kind: command, Data: string(runes)}, nil
		}

		runes = append(runes, read)
	}
}

// whitespaces skips until next non-whitespace symbol
func (l *Tokenizer) whitespaces() error {
	for {
		r, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if !isWhitespace(r) {
			return l.r.UnreadRune()
		}
	}
}

// forwardTo skips whitespaces and makes sure next symbol is "e"
func (l *Tokenizer) forwardTo(e rune) error {
	if err := l.whitespaces(); err != nil {
		return err
	}

	return l.expect(e)
}

// expect verifies than following symbol is "e"
func (l *Tokenizer) expect(e rune) error {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return fmt.Errorf("EOF: expected symbol %c", e)
	}

	if err != nil {
		return err
	}

	if r != e {
		return fmt.Errorf("expected symbol %c, got %c instead", e, r)
	}

	return nil
}

// star reads following star symbol, if present
func (l *Tokenizer) star() (bool, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if r == '*' {
		return true, nil
	}

	return false, l.r.UnreadRune()
}

// word reads sequence of letters
func (l *Tokenizer) word() (string, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return string(runes), nil
		}

		if err != nil {
			return "", err
		}

		if !isLetter(read) {
			return string(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)
	}
}

// escaped returns true if runes end with an odd number of backslashes, ie. the following symbol is escaped
func escaped(runes []rune) bool {
	count := 0
	for i := len(runes) - 1; i >= 0 && runes[i] == '\\'; i-- {
		count++
	}

	return count%2 == 1
}

// isLetter returns true for a letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isSpecial returns true if a symbol has a special meaning and should interrupt text reading
func isSpecial(r rune) bool {
	switch r {
	case '$', '%', '{', '}', '\\':
		return true
	default:
		return false
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
