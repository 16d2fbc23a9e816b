package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Single Line", "ABCDEFGHIJKLMNOPQRSTUVWXYZ\n", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"No Trailing Newline", "ABC", "ABC"},
		{"Multiple Lines", "ABCDEFGHIJKLM\nNOPQRSTUVWXYZ\n", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"CRLF And Indentation", "  ABC \r\n\tDEF\r\n", "ABCDEF"},
		{"Inner Spaces Kept", "AB CD\n", "AB CD"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadSeed(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(strings.NewReader("ABC")))
}
