package cli

import (
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/handlers/ui"
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Names outside this set are stored, but the shell may refuse them.
var portableAliasNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// readEntry collects an entry from p. Name and command are asked again while blank.
func readEntry(p *prompter) (alias.Entry, error) {
	name, err := askNonBlank(p, "Enter name for alias: ")
	if err != nil {
		return alias.Entry{}, err
	}
	command, err := askNonBlank(p, "Enter command for alias: ")
	if err != nil {
		return alias.Entry{}, err
	}
	description, err := p.ask("Enter description of alias: ")
	if err != nil {
		return alias.Entry{}, err
	}
	tagLine, err := p.ask("Enter tags for alias (space separated): ")
	if err != nil {
		return alias.Entry{}, err
	}

	return alias.Entry{
		Name:        name,
		Command:     command,
		Description: description,
		Tags:        splitTags(tagLine),
	}, nil
}

func askNonBlank(p *prompter, question string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(answer) != "" {
			return answer, nil
		}
	}
}

// splitTags splits on runs of whitespace and never returns nil.
func splitTags(line string) []string {
	tags := strings.Fields(line)
	if tags == nil {
		return []string{}
	}
	return tags
}

// nameWarnings lists reasons the shell may not behave as expected with name.
func nameWarnings(name string) []string {
	var warnings []string
	if !portableAliasNameRegex.MatchString(name) {
		warnings = append(warnings, fmt.Sprintf("'%s' contains characters some shells reject in alias names.", name))
	}
	if path, err := lookPath(name); err == nil {
		warnings = append(warnings, fmt.Sprintf("'%s' shadows the command %s.", name, path))
	}
	return warnings
}

func printSourceHint(out io.Writer, definitionsPath string) {
	fmt.Fprintln(out, ui.InfoColor("\nTo use your aliases, add this line to your shell configuration (e.g., ~/.bashrc, ~/.zshrc):"))
	fmt.Fprintln(out, ui.AliasCmdColor(fmt.Sprintf(`   [ -f "%s" ] && . "%s"`, definitionsPath, definitionsPath)))
	fmt.Fprintln(out, ui.InfoColor("Then reload your shell configuration or open a new terminal session."))
}
