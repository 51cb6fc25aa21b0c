package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/fastapi-gen/cli/internal/errors"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "hello_world"

// Registry is an immutable table of template descriptors, built once at
// startup and passed explicitly to the generator.
type Registry struct {
	byName map[string]Template
	order  []string
}

// NewRegistry creates a registry from the given templates. Lookup order in
// List and Names follows registration order.
func NewRegistry(ts ...Template) *Registry {
	r := &Registry{byName: make(map[string]Template, len(ts))}
	for _, t := range ts {
		if _, dup := r.byName[t.Name]; dup {
			continue
		}
		r.byName[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return r
}

// Default returns the registry of bundled templates.
func Default() *Registry {
	return NewRegistry(
		Template{
			Name:        "hello_world",
			Description: "Minimal FastAPI service - GET/POST/PUT endpoints with typed models",
			ModuleName:  "hello_world",
			Bundle:      mustSub(helloWorldFS, "bundles/template-hello-world"),
			Default:     true,
		},
		Template{
			Name:        "advanced",
			Description: "Auth, SQLAlchemy, rate limiting, websockets, background tasks",
			ModuleName:  "advanced",
			Bundle:      mustSub(advancedFS, "bundles/template-advanced"),
		},
		Template{
			Name:        "nlp",
			Description: "Transformers pipelines - summarization, NER, text generation",
			ModuleName:  "nlp",
			Bundle:      mustSub(nlpFS, "bundles/template-nlp"),
		},
		Template{
			Name:        "langchain",
			Description: "LangChain text generation and question answering",
			ModuleName:  "langchain_app",
			Bundle:      mustSub(langchainFS, "bundles/template-langchain"),
		},
		Template{
			Name:        "llama",
			Description: "Local llama.cpp question answering",
			ModuleName:  "llama_app",
			Bundle:      mustSub(llamaFS, "bundles/template-llama"),
		},
	)
}

// Resolve returns the template for an identifier. Lookups are exact-match.
func (r *Registry) Resolve(name string) (Template, error) {
	t, ok := r.byName[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q (valid templates: %s): %w",
			name, strings.Join(r.Names(), ", "), oerrors.ErrTemplateNotFound)
	}
	return t, nil
}

// List returns all templates in registration order.
func (r *Registry) List() []Template {
	out := make([]Template, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns all template names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// DefaultTemplate returns the template marked as default, falling back to the
// first registered one.
func (r *Registry) DefaultTemplate() Template {
	for _, name := range r.order {
		if r.byName[name].Default {
			return r.byName[name]
		}
	}
	return r.byName[r.order[0]]
}
