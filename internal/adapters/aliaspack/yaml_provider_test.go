package aliaspack

import (
	"testing"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packPath = "/packs/git.yaml"

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider(afero.NewMemMapFs(), packPath)
	require.NoError(t, err)
	require.IsType(t, &YAMLProvider{}, provider)
	assert.Equal(t, "alias pack /packs/git.yaml", provider.Describe())

	_, err = NewYAMLProvider(afero.NewMemMapFs(), "")
	assert.Error(t, err)
}

func TestYAMLProvider_LoadAliases(t *testing.T) {
	validPack := `
- name: gs
  command: git status
  description: Show the working tree status
  tags: [git, vcs]
- name: k
  command: kubectl
`
	tests := []struct {
		name                string
		content             *string
		wantAliases         []alias.Entry
		wantErrorMsgSnippet string
	}{
		{
			name:        "file does not exist",
			wantAliases: []alias.Entry{},
		},
		{
			name:        "empty file",
			content:     strPtr(""),
			wantAliases: []alias.Entry{},
		},
		{
			name:        "only comments",
			content:     strPtr("# nothing yet\n"),
			wantAliases: []alias.Entry{},
		},
		{
			name:        "empty list",
			content:     strPtr("[]"),
			wantAliases: []alias.Entry{},
		},
		{
			name:    "valid pack",
			content: strPtr(validPack),
			wantAliases: []alias.Entry{
				{Name: "gs", Command: "git status", Description: "Show the working tree status", Tags: []string{"git", "vcs"}},
				{Name: "k", Command: "kubectl", Tags: []string{}},
			},
		},
		{
			name:                "unknown field",
			content:             strPtr("- name: g\n  command: git\n  alias: g\n"),
			wantErrorMsgSnippet: "failed to unmarshal alias pack",
		},
		{
			name:                "entry without a name",
			content:             strPtr("- name: g\n  command: git\n- command: orphan\n"),
			wantErrorMsgSnippet: "entry 1 has no name",
		},
		{
			name:                "blank name",
			content:             strPtr("- name: \"  \"\n  command: orphan\n"),
			wantErrorMsgSnippet: "entry 0 has no name",
		},
		{
			name:                "not a list",
			content:             strPtr("name: g command: git"),
			wantErrorMsgSnippet: "failed to unmarshal alias pack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != nil {
				require.NoError(t, afero.WriteFile(fs, packPath, []byte(*tt.content), 0644))
			}
			provider, err := NewYAMLProvider(fs, packPath)
			require.NoError(t, err)

			aliases, err := provider.LoadAliases()

			if tt.wantErrorMsgSnippet != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorMsgSnippet)
				assert.Nil(t, aliases)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAliases, aliases)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
