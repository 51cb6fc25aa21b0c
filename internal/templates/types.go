// Package templates provides the bundled project templates for fastapi-gen.
package templates

import "io/fs"

// Template describes one installable template bundle.
type Template struct {
	// Name is the template identifier selected via --template.
	Name string

	// Description explains the template's purpose and use case.
	Description string

	// ModuleName is the placeholder Python module baked into the bundle's
	// source and test files, replaced with the project name during generation.
	ModuleName string

	// Bundle is the read-only file tree of the template.
	Bundle fs.FS

	// Default indicates if this is the template used when --template is omitted.
	Default bool
}
