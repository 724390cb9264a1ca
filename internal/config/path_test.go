package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare tilde", input: "~", want: home},
		{name: "tilde prefix", input: "~/exports/out.csv", want: filepath.Join(home, "exports", "out.csv")},
		{name: "absolute untouched", input: "/tmp/out.csv", want: "/tmp/out.csv"},
		{name: "relative untouched", input: "out.csv", want: "out.csv"},
		{name: "tilde mid-path untouched", input: "dir/~file", want: "dir/~file"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
