package shelldefs

import (
	"testing"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAliasLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantName    string
		wantCommand string
		wantIsAlias bool
	}{
		{name: "double quotes", line: `alias ll="ls -alF"`, wantName: "ll", wantCommand: "ls -alF", wantIsAlias: true},
		{name: "single quotes", line: `alias gp='git push'`, wantName: "gp", wantCommand: "git push", wantIsAlias: true},
		{name: "no quotes", line: `alias g=git`, wantName: "g", wantCommand: "git", wantIsAlias: true},
		{name: "spaces around equals", line: `alias   ga   =  "git add"`, wantName: "ga", wantCommand: "git add", wantIsAlias: true},
		{name: "surrounding whitespace", line: `  alias k=kubectl  `, wantName: "k", wantCommand: "kubectl", wantIsAlias: true},
		{name: "empty quoted command", line: `alias e=""`, wantName: "e", wantCommand: "", wantIsAlias: true},
		{name: "unterminated quote", line: `alias m="ls'`},
		{name: "several definitions on one line", line: `alias a='x' b='y'`},
		{name: "several bare definitions", line: `alias a=x b=y`},
		{name: "zsh global flag", line: `alias -g foo=bar`},
		{name: "suffix flag", line: `alias -s txt=vim`},
		{name: "trailing comment", line: `alias ll='ls -la' # long`},
		{name: "escaped double quote", line: `alias say="echo \"hi\""`, wantName: "say", wantCommand: `echo \"hi\"`, wantIsAlias: true},
		{name: "single quote inside double quotes", line: `alias it="echo it's"`, wantName: "it", wantCommand: "echo it's", wantIsAlias: true},
		{name: "equals inside command", line: `alias env='FOO=bar run'`, wantName: "env", wantCommand: "FOO=bar run", wantIsAlias: true},
		{name: "comment", line: `# alias ll="ls"`},
		{name: "not an alias", line: `export PATH=$PATH:/bin`},
		{name: "alias without definition", line: `alias ll`},
		{name: "empty line", line: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, command, isAlias := parseAliasLine(tt.line)
			assert.Equal(t, tt.wantIsAlias, isAlias)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantCommand, command)
		})
	}
}

func TestParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `# managed by hand
export EDITOR=vim
alias ll='ls -la'
alias gs="git status"
alias ll="ls -lah"
alias =orphan
alias -g G='| grep'
alias a='x' b='y'
`
	require.NoError(t, afero.WriteFile(fs, "/home/user/.bashrc", []byte(content), 0644))

	entries, err := ParseFile(fs, "/home/user/.bashrc")
	require.NoError(t, err)

	assert.Equal(t, []alias.Entry{
		{Name: "ll", Command: "ls -lah", Tags: []string{}},
		{Name: "gs", Command: "git status", Tags: []string{}},
	}, entries)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(afero.NewMemMapFs(), "/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open alias file /nope")
}

func TestFileSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/defs.sh", []byte("alias k=kubectl\n"), 0644))

	src := NewFileSource(fs, "/defs.sh")
	entries, err := src.LoadAliases()

	require.NoError(t, err)
	assert.Equal(t, []alias.Entry{{Name: "k", Command: "kubectl", Tags: []string{}}}, entries)
	assert.Equal(t, "shell file /defs.sh", src.Describe())
}
