/*
Package shelldefs reads alias definitions out of existing shell files, such as a
~/.bashrc or a previously generated definitions file, so they can be imported
into the alias store.
*/
package shelldefs

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/core/ports"
	"github.com/spf13/afero"
)

/*
ParseFile returns an entry for every `alias name=command` line in the file at
path, in order of first appearance. A later definition of the same name replaces
the command of the earlier one, as it would when the file is sourced. Imported
entries have no description and no tags.
*/
func ParseFile(fs afero.Fs, path string) ([]alias.Entry, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alias file %s: %w", path, err)
	}
	defer file.Close()

	var entries []alias.Entry
	indexByName := make(map[string]int)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name, command, isAlias := parseAliasLine(scanner.Text())
		if !isAlias || name == "" {
			continue
		}
		if i, seen := indexByName[name]; seen {
			entries[i].Command = command
			continue
		}
		indexByName[name] = len(entries)
		entries = append(entries, alias.Entry{Name: name, Command: command, Tags: []string{}})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning alias file %s: %w", path, err)
	}
	return entries, nil
}

// parseAliasLine splits a line of the form `alias name=command`. Matching single
// or double quotes around the command are stripped. Lines holding options such
// as zsh's `alias -g`, several definitions, or trailing text after the value are
// not imported.
func parseAliasLine(line string) (name string, command string, isAlias bool) {
	trimmedLine := strings.TrimSpace(line)

	if strings.HasPrefix(trimmedLine, "#") || !strings.HasPrefix(trimmedLine, "alias ") {
		return "", "", false
	}

	content := strings.TrimPrefix(trimmedLine, "alias ")

	parts := strings.SplitN(content, "=", 2)
	if len(parts) < 2 {
		// "alias foo" prints a definition, it does not define one.
		return "", "", false
	}

	name = strings.TrimSpace(parts[0])
	if strings.HasPrefix(name, "-") || strings.ContainsAny(name, " \t") {
		return "", "", false
	}

	command, ok := unquoteValue(strings.TrimSpace(parts[1]))
	if !ok {
		return "", "", false
	}
	return name, command, true
}

// unquoteValue returns the single word value, either quoted as a whole or bare.
// It reports false when the value is unterminated or followed by more words.
func unquoteValue(value string) (string, bool) {
	if value == "" {
		return "", true
	}
	quote := value[0]
	if quote != '\'' && quote != '"' {
		if strings.ContainsAny(value, " \t'\"") {
			return "", false
		}
		return value, true
	}

	for i := 1; i < len(value); i++ {
		switch {
		case quote == '"' && value[i] == '\\':
			i++
		case value[i] == quote:
			if i != len(value)-1 {
				return "", false
			}
			return value[1:i], true
		}
	}
	return "", false
}

// FileSource exposes a shell file as a ports.AliasSource.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a source reading alias lines from path.
func NewFileSource(fs afero.Fs, path string) ports.AliasSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileSource{fs: fs, path: path}
}

// LoadAliases implements the ports.AliasSource interface.
func (s *FileSource) LoadAliases() ([]alias.Entry, error) {
	return ParseFile(s.fs, s.path)
}

// Describe implements the ports.AliasSource interface.
func (s *FileSource) Describe() string {
	return fmt.Sprintf("shell file %s", s.path)
}
