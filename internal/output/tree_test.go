package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	files := map[string]string{
		"pyproject.toml":     "Project manifest",
		"Makefile":           "",
		"src/my_app/main.py": "Application entry point",
		"tests/test_main.py": "Test suite",
		"tests/__init__.py":  "",
	}

	out := RenderFileTree("my_app", files)

	assert.True(t, strings.HasPrefix(out, "my_app/"), "tree starts with root dir")
	assert.Contains(t, out, "pyproject.toml")
	assert.Contains(t, out, "Project manifest")
	assert.Contains(t, out, "main.py")
	assert.Contains(t, out, treeLast)
}

func TestRenderFileTreeEmpty(t *testing.T) {
	assert.Empty(t, RenderFileTree("my_app", nil))
	assert.Empty(t, RenderFileTree("my_app", map[string]string{}))
}

func TestRenderFileTreeDirectoriesFirst(t *testing.T) {
	files := map[string]string{
		"aaa.txt":     "",
		"zzz/file.py": "",
	}

	out := RenderFileTree("proj", files)

	// zzz/ is a directory so it renders before aaa.txt despite sorting after it
	assert.Less(t, strings.Index(out, "zzz/"), strings.Index(out, "aaa.txt"))
}

func TestRenderFileTreeNestedPrefixes(t *testing.T) {
	files := map[string]string{
		"src/my_app/__init__.py": "",
		"src/my_app/main.py":     "",
	}

	out := RenderFileTree("my_app", files)

	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "my_app/")
	assert.Contains(t, out, "__init__.py")
}
