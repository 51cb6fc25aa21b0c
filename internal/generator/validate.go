package generator

import "regexp"

// namePattern is the grammar for project names. It guarantees the name is safe
// to use unmodified as a directory name and as a Python module identifier:
// letters, digits, and underscore only. Hyphens are rejected on purpose.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidName reports whether name is an acceptable project name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// NamePattern returns the grammar as a string, for error messages.
func NamePattern() string {
	return namePattern.String()
}
