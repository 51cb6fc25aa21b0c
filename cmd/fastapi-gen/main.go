// Package main is the entry point for fastapi-gen.
package main

import (
	"fmt"
	"os"

	"github.com/fastapi-gen/cli/internal/cmd"
	oerrors "github.com/fastapi-gen/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
