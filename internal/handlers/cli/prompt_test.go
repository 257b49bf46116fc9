package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("first\r\nsecond\nlast"), &out)

	for _, want := range []string{"first", "second", "last"} {
		got, err := p.ask("question?")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.ask("question?")
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Empty(t, out.String(), "prompts are not printed when input is not a terminal")
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr error
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "asks again on other answers", input: "yes\nN\n\nn\n", want: false},
		{name: "input ends", input: "maybe\n", wantErr: ErrInputClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.confirm("delete?")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{}, splitTags(""))
	assert.Equal(t, []string{}, splitTags("   "))
	assert.Equal(t, []string{"a", "b"}, splitTags(" a \t b "))
}

func TestNameWarnings(t *testing.T) {
	original := lookPath
	t.Cleanup(func() { lookPath = original })
	lookPath = func(name string) (string, error) {
		if name == "ls" {
			return "/bin/ls", nil
		}
		return "", assert.AnError
	}

	assert.Empty(t, nameWarnings("ll"))
	assert.Len(t, nameWarnings("ls"), 1)
	assert.Len(t, nameWarnings("my alias"), 1)
}
