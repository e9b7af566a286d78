// internal/cli/input.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const (
	minNameLen = 1
	maxNameLen = 20
)

// ValidateName checks a prospective player name. Names must be
// alphanumeric. A name passes if its trimmed length is within bounds or
// it is simply non-blank, so in practice any non-blank alphanumeric
// name is accepted.
// TODO: enforce maxNameLen strictly; today the non-blank arm lets
// longer names through.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("name %q may only contain letters and digits", trimmed)
		}
	}
	if (len(trimmed) >= minNameLen && len(trimmed) <= maxNameLen) || trimmed != "" {
		return nil
	}
	return fmt.Errorf("name must be %d-%d characters", minNameLen, maxNameLen)
}

// NamesDistinct reports whether two names differ case-insensitively.
func NamesDistinct(a, b string) bool {
	return !strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Prompter reads sanitized line input from an interactive stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps an input stream and an output sink.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints a prompt and returns one trimmed line of input.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PlayerName prompts until a valid name is entered. If taken is
// non-empty, the name must also differ from it case-insensitively.
func (p *Prompter) PlayerName(label, taken string) (string, error) {
	for {
		name, err := p.ReadLine(fmt.Sprintf("Enter name for %s: ", label))
		if err != nil {
			return "", err
		}
		if err := ValidateName(name); err != nil {
			fmt.Fprintf(p.out, "Invalid name: %v\n", err)
			continue
		}
		if taken != "" && !NamesDistinct(name, taken) {
			fmt.Fprintf(p.out, "Name %q is already taken.\n", name)
			continue
		}
		return name, nil
	}
}
