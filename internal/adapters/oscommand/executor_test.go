package oscommand

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSCommandExecutor_ResolveShell(t *testing.T) {
	e := &OSCommandExecutor{lookPath: func(file string) (string, error) {
		if file == "zsh" {
			return "/usr/bin/zsh", nil
		}
		return "", errors.New("not found")
	}}

	tests := []struct {
		shellName string
		want      string
	}{
		{shellName: "", want: "/bin/sh"},
		{shellName: "/usr/local/bin/bash", want: "/usr/local/bin/bash"},
		{shellName: "zsh", want: "/usr/bin/zsh"},
		{shellName: "fish", want: "/bin/sh"},
	}

	for _, tt := range tests {
		t.Run(tt.shellName, func(t *testing.T) {
			assert.Equal(t, tt.want, e.resolveShell(tt.shellName))
		})
	}
}
