/*
Package aliaspack reads alias packs: YAML lists of ready-made aliases that can be
imported into the store in one go.

	- name: gs
	  command: git status
	  description: Show the working tree status
	  tags: [git, vcs]
*/
package aliaspack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/core/ports"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the AliasSource interface by reading a YAML alias pack.
type YAMLProvider struct {
	fs       afero.Fs
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider for the pack at filePath.
func NewYAMLProvider(fs afero.Fs, filePath string) (ports.AliasSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &YAMLProvider{fs: fs, filePath: filePath}, nil
}

// LoadAliases reads and parses the pack. A missing or empty file yields no
// entries and no error. Unknown keys and entries without a name are rejected.
func (p *YAMLProvider) LoadAliases() ([]alias.Entry, error) {
	entries := []alias.Entry{}

	yamlFile, err := afero.ReadFile(p.fs, p.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("failed to read alias pack %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return entries, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&entries); err != nil {
		// A file holding only comments or "---" has no documents.
		if errors.Is(err, io.EOF) {
			return []alias.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal alias pack %s: %w", p.filePath, err)
	}

	for i := range entries {
		if strings.TrimSpace(entries[i].Name) == "" {
			return nil, fmt.Errorf("alias pack %s: entry %d has no name", p.filePath, i)
		}
		if entries[i].Tags == nil {
			entries[i].Tags = []string{}
		}
	}
	return entries, nil
}

// Describe implements the ports.AliasSource interface.
func (p *YAMLProvider) Describe() string {
	return fmt.Sprintf("alias pack %s", p.filePath)
}
