package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/ali/internal/handlers/ui"
	"github.com/mattn/go-isatty"
)

// ErrInputClosed is returned when input ends before a prompt was answered.
var ErrInputClosed = errors.New("input closed before an answer was given")

// prompter reads one answer per line. Prompt text is only printed when the
// input is a terminal, so answers piped from a script produce clean output.
type prompter struct {
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: isTerminal(in),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ask prints question and returns the next line.
func (p *prompter) ask(question string) (string, error) {
	if p.interactive {
		fmt.Fprintln(p.out, ui.PromptColor(question))
	}
	return p.readLine()
}

// readLine returns the next line without its line ending.
// A final line without a newline is still returned.
func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks question until the answer is exactly "y" or "n".
func (p *prompter) confirm(question string) (bool, error) {
	if p.interactive {
		fmt.Fprintln(p.out, ui.PromptColor(question+" (y/n)"))
	}
	for {
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}
