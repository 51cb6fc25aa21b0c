// Package generator implements the template instantiation engine: it
// validates the requested project name, copies a bundled template tree to the
// destination, and rewrites the template's internal module name.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/fastapi-gen/cli/internal/errors"
	"github.com/fastapi-gen/cli/internal/output"
	"github.com/fastapi-gen/cli/internal/templates"
)

// Options configures one generation run.
type Options struct {
	// Name is the user-supplied project name.
	Name string

	// Template is the template identifier.
	Template string

	// ParentDir is the directory the project is created under. Defaults to
	// the current working directory.
	ParentDir string

	// SkipVCS disables the best-effort git repository initialization.
	SkipVCS bool
}

// Result describes a completed generation.
type Result struct {
	// Name is the project name.
	Name string

	// TemplateName is the template that was instantiated.
	TemplateName string

	// Path is the absolute destination path.
	Path string

	// Files are the relative paths written into the destination.
	Files []string

	// VCS reports the outcome of the repository initialization.
	VCS VCSStatus
}

// Generator sequences one generation run. The registry is passed in
// explicitly so tests can substitute fixture bundles.
type Generator struct {
	registry *templates.Registry
	opts     Options
}

// New creates a generator for the given registry and options.
func New(registry *templates.Registry, opts Options) *Generator {
	return &Generator{registry: registry, opts: opts}
}

// Generate runs the pipeline: validate, check destination, resolve template,
// copy, rewrite, initialize the repository. Stages are strictly ordered and
// the first fatal error aborts the run. No filesystem mutation happens before
// the destination existence check passes; partial output on a later copy or
// rewrite failure is intentionally left in place for diagnosis.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if !ValidName(g.opts.Name) {
		return nil, fmt.Errorf("%w: %q must match %s", oerrors.ErrInvalidName, g.opts.Name, NamePattern())
	}

	parent := g.opts.ParentDir
	if parent == "" {
		var err error
		parent, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
	}

	dest := filepath.Join(parent, g.opts.Name)
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return nil, fmt.Errorf("resolving destination path: %w", err)
	}

	// Existence check strictly precedes any write
	if _, err := os.Stat(absDest); err == nil {
		return nil, fmt.Errorf("%w: %s", oerrors.ErrDestinationExists, absDest)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking destination: %w", err)
	}

	tmpl := g.registry.DefaultTemplate()
	if g.opts.Template != "" {
		tmpl, err = g.registry.Resolve(g.opts.Template)
		if err != nil {
			return nil, err
		}
	}

	output.Debug("generating project",
		"name", g.opts.Name,
		"template", tmpl.Name,
		"module", tmpl.ModuleName,
		"dest", absDest)

	files, err := CopyTree(tmpl.Bundle, absDest, DefaultExcludes)
	if err != nil {
		return nil, oerrors.WrapCopy(err, "copying template files")
	}

	if err := Rewrite(absDest, tmpl.ModuleName, g.opts.Name); err != nil {
		return nil, oerrors.WrapRewrite(err, fmt.Sprintf("renaming module to %q", g.opts.Name))
	}

	result := &Result{
		Name:         g.opts.Name,
		TemplateName: tmpl.Name,
		Path:         absDest,
		Files:        renamedPaths(files, tmpl.ModuleName, g.opts.Name),
	}

	if !g.opts.SkipVCS {
		result.VCS = initVCS(ctx, absDest)
		if result.VCS.Ignored != nil {
			output.Debug("repository init ignored", "error", result.VCS.Ignored)
		}
	}

	return result, nil
}

// renamedPaths maps copied bundle paths to their post-rewrite locations.
func renamedPaths(files []string, oldModule, newModule string) []string {
	oldPrefix := "src/" + oldModule + "/"
	newPrefix := "src/" + newModule + "/"

	out := make([]string, 0, len(files))
	for _, f := range files {
		if rest, ok := strings.CutPrefix(f, oldPrefix); ok {
			out = append(out, newPrefix+rest)
			continue
		}
		out = append(out, f)
	}
	return out
}
