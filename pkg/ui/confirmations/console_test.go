package confirmations

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  y  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
		{"y", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			confirm := Console(strings.NewReader(tt.input), &out)

			assert.Equal(t, tt.want, confirm("Delete GitHub repo own/to-alex?"))
			assert.Contains(t, out.String(), "Delete GitHub repo own/to-alex? [y/N]")
		})
	}
}

func TestConsole_MultiplePrompts(t *testing.T) {
	confirm := Console(strings.NewReader("n\ny\n"), &bytes.Buffer{})

	assert.False(t, confirm("first?"))
	assert.True(t, confirm("second?"))
	assert.False(t, confirm("third?"))
}

func TestFixed(t *testing.T) {
	assert.True(t, Fixed(true)("anything"))
	assert.False(t, Fixed(false)("anything"))
}
