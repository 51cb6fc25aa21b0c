package templates

import (
	"embed"
	"fmt"
	"io/fs"
)

// The bundles ship inside the binary. The all: prefix keeps dotfiles such as
// .gitignore and .env_dev in the embedded tree.

//go:embed all:bundles/template-hello-world
var helloWorldFS embed.FS

//go:embed all:bundles/template-advanced
var advancedFS embed.FS

//go:embed all:bundles/template-nlp
var nlpFS embed.FS

//go:embed all:bundles/template-langchain
var langchainFS embed.FS

//go:embed all:bundles/template-llama
var llamaFS embed.FS

// mustSub roots an embedded filesystem at the bundle directory. The roots are
// literal paths checked by the embed directive, so failure means a broken build.
func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("templates: bad bundle root %s: %v", dir, err))
	}
	return sub
}
