package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureManifest = `[project]
name = "hello_world"
version = "0.1.0"
dependencies = [
    "fastapi[standard]>=0.115",
]

[project.scripts]
start = "hello_world.main:app"
`

func writeFixtureProject(t *testing.T, module string) string {
	t.Helper()
	dest := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dest, "src", module), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "tests"), 0o755))

	write := func(rel, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dest, rel), []byte(content), 0o644))
	}

	write("pyproject.toml", fixtureManifest)
	write(filepath.Join("src", module, "main.py"), "app = None\n")
	write(filepath.Join("tests", "__init__.py"), "import hello_world\n")
	write(filepath.Join("tests", "test_main.py"),
		"from hello_world.main import app\nimport hello_world\n")

	return dest
}

func TestRewriteRenamesModuleDir(t *testing.T) {
	dest := writeFixtureProject(t, "hello_world")

	require.NoError(t, Rewrite(dest, "hello_world", "my_app"))

	assert.NoDirExists(t, filepath.Join(dest, "src", "hello_world"))
	assert.DirExists(t, filepath.Join(dest, "src", "my_app"))
	assert.FileExists(t, filepath.Join(dest, "src", "my_app", "main.py"))
}

func TestRewriteMissingModuleDirIsNoop(t *testing.T) {
	dest := writeFixtureProject(t, "other_layout")

	require.NoError(t, Rewrite(dest, "hello_world", "my_app"))

	assert.DirExists(t, filepath.Join(dest, "src", "other_layout"))
}

func TestRewriteManifest(t *testing.T) {
	dest := writeFixtureProject(t, "hello_world")

	require.NoError(t, Rewrite(dest, "hello_world", "my_app"))

	content, err := os.ReadFile(filepath.Join(dest, "pyproject.toml"))
	require.NoError(t, err)

	assert.Contains(t, string(content), `name = "my_app"`)
	assert.Contains(t, string(content), `start = "my_app.main:app"`)
	assert.NotContains(t, string(content), "hello_world")
}

func TestRewriteManifestFirstNameFieldOnly(t *testing.T) {
	dest := t.TempDir()
	manifest := "[project]\nname = \"hello_world\"\n\n[tool.other]\nname = \"keepme\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dest, "pyproject.toml"), []byte(manifest), 0o644))

	require.NoError(t, Rewrite(dest, "hello_world", "my_app"))

	content, err := os.ReadFile(filepath.Join(dest, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `name = "my_app"`)
	assert.Contains(t, string(content), `name = "keepme"`)
}

func TestRewriteTestImports(t *testing.T) {
	dest := writeFixtureProject(t, "hello_world")

	require.NoError(t, Rewrite(dest, "hello_world", "my_app"))

	content, err := os.ReadFile(filepath.Join(dest, "tests", "test_main.py"))
	require.NoError(t, err)
	assert.Equal(t, "from my_app.main import app\nimport my_app\n", string(content))

	// The package initializer is left untouched
	content, err = os.ReadFile(filepath.Join(dest, "tests", "__init__.py"))
	require.NoError(t, err)
	assert.Equal(t, "import hello_world\n", string(content))
}

func TestRewriteWholeTokenMatchesOnly(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "tests"), 0o755))

	// nlp appears as a substring of unrelated identifiers
	testFile := "from nlp.main import app\nimport nlp\nimport my_nlp.helpers\nfrom nlp_utils.extra import x\n"
	require.NoError(t, os.WriteFile(filepath.Join(dest, "tests", "test_main.py"), []byte(testFile), 0o644))

	require.NoError(t, Rewrite(dest, "nlp", "engine"))

	content, err := os.ReadFile(filepath.Join(dest, "tests", "test_main.py"))
	require.NoError(t, err)
	assert.Equal(t,
		"from engine.main import app\nimport engine\nimport my_nlp.helpers\nfrom nlp_utils.extra import x\n",
		string(content))
}

func TestRewriteMissingManifestAndTestsIsNoop(t *testing.T) {
	dest := t.TempDir()

	assert.NoError(t, Rewrite(dest, "hello_world", "my_app"))
}
