package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// manifestNameRegex matches the first name declaration in pyproject.toml.
var manifestNameRegex = regexp.MustCompile(`(?m)^name\s*=\s*"[^"]*"`)

// Rewrite renames the template's internal module to the project name inside
// dest: the src/<oldModule> directory, the pyproject.toml name field and
// dotted module references, and the import statements in test files. All
// textual replacements are anchored on word boundaries so module names that
// happen to be substrings of unrelated identifiers are left alone.
func Rewrite(dest, oldModule, newModule string) error {
	if err := renameModuleDir(dest, oldModule, newModule); err != nil {
		return err
	}
	if err := rewriteManifest(filepath.Join(dest, "pyproject.toml"), oldModule, newModule); err != nil {
		return err
	}
	return rewriteTestImports(filepath.Join(dest, "tests"), oldModule, newModule)
}

// renameModuleDir renames src/<oldModule> to src/<newModule>. Missing source
// directory is a no-op: not every template uses the renamed-directory layout.
func renameModuleDir(dest, oldModule, newModule string) error {
	oldDir := filepath.Join(dest, "src", oldModule)
	newDir := filepath.Join(dest, "src", newModule)

	if _, err := os.Stat(oldDir); os.IsNotExist(err) {
		return nil
	}

	if err := os.Rename(oldDir, newDir); err != nil {
		return fmt.Errorf("renaming module directory: %w", err)
	}
	return nil
}

// rewriteManifest replaces the manifest's name declaration with newModule and
// rewrites <oldModule>. dotted prefixes in script entries. Missing manifest is
// a no-op.
func rewriteManifest(path, oldModule, newModule string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	text := string(content)

	// First name field only; the manifest declares its name once
	replaced := false
	text = manifestNameRegex.ReplaceAllStringFunc(text, func(m string) string {
		if replaced {
			return m
		}
		replaced = true
		return `name = "` + newModule + `"`
	})

	text = modulePrefixRegex(oldModule).ReplaceAllString(text, newModule+".")

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// rewriteTestImports updates import statements in every Python file directly
// under the tests directory, leaving the package initializer untouched.
func rewriteTestImports(testsDir, oldModule, newModule string) error {
	entries, err := os.ReadDir(testsDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading tests directory: %w", err)
	}

	fromRegex := regexp.MustCompile(`\bfrom ` + regexp.QuoteMeta(oldModule) + `\.`)
	importRegex := regexp.MustCompile(`\bimport ` + regexp.QuoteMeta(oldModule) + `\b`)

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == "__init__.py" || !strings.HasSuffix(entry.Name(), ".py") {
			continue
		}

		path := filepath.Join(testsDir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading test file %s: %w", path, err)
		}

		text := string(content)
		text = fromRegex.ReplaceAllString(text, "from "+newModule+".")
		text = importRegex.ReplaceAllString(text, "import "+newModule)

		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing test file %s: %w", path, err)
		}
	}

	return nil
}

// modulePrefixRegex matches <module>. as a whole token.
func modulePrefixRegex(module string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(module) + `\.`)
}
