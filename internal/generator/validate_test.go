package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple lowercase", "myapp", true},
		{"snake case", "my_app", true},
		{"digits", "app2", true},
		{"leading digit", "2app", true},
		{"mixed case", "MyApp", true},
		{"underscore only", "_", true},
		{"empty", "", false},
		{"hyphen", "my-app", false},
		{"dot", "my.app", false},
		{"space", "my app", false},
		{"slash", "my/app", false},
		{"backslash", `my\app`, false},
		{"path traversal", "../app", false},
		{"leading dash", "-app", false},
		{"punctuation", "bad-name!", false},
		{"unicode letter", "appé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.input))
		})
	}
}

func TestNamePattern(t *testing.T) {
	assert.Equal(t, "^[A-Za-z0-9_]+$", NamePattern())
}
