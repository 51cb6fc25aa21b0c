// Package cmd provides the fastapi-gen command-line interface.
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastapi-gen/cli/internal/config"
	"github.com/fastapi-gen/cli/internal/generator"
	"github.com/fastapi-gen/cli/internal/output"
	"github.com/fastapi-gen/cli/internal/templates"
	"github.com/fastapi-gen/cli/internal/version"
)

var (
	// Flags
	templateFlag string
	dirFlag      string
	configFlag   string
	verboseFlag  bool
	skipGitFlag  bool
	versionFlag  bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig    *config.Config
	resolvedVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fastapi-gen <name>",
		Short: "Create FastAPI projects from templates",
		Long: `fastapi-gen scaffolds a ready-to-run FastAPI project in a new directory.

The project name must contain only letters, digits, and underscores; it is
used verbatim as the Python package name under src/.

Templates:
  hello_world  Minimal service with a health endpoint (default)
  advanced     JWT auth, SQLAlchemy, rate limiting, CORS
  nlp          Hugging Face pipelines: summarization, NER, generation
  langchain    LangChain text generation service
  llama        Llama.cpp text generation service

Examples:
  # Create a project with the default template
  fastapi-gen my_app

  # Create a project with a specific template
  fastapi-gen my_app --template nlp

  # Create a project under a specific parent directory
  fastapi-gen my_app --dir ./projects`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			// --version is valid without a project name
			if versionFlag && len(args) == 0 {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runGenerate,
	}

	rootCmd.Flags().StringVarP(&templateFlag, "template", "t", "",
		fmt.Sprintf("Template to use (%s)", strings.Join(templates.Default().Names(), ", ")))
	rootCmd.Flags().StringVarP(&dirFlag, "dir", "d", "",
		"Parent directory to create the project in (defaults to the working directory)")
	rootCmd.Flags().StringVar(&configFlag, "config", "",
		"Path to config file (env: FASTAPI_GEN_CONFIG)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVar(&skipGitFlag, "skip-git", false, "Skip git repository initialization")
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "Show version information")

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(_ *cobra.Command) error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// A broken config file must not block generation; defaults apply.
		cfg = (&config.Config{}).WithDefaults()
		output.Debug("config load error", "error", err)
	}
	loadedConfig = cfg

	resolvedVerbose = verboseFlag || cfg.Verbose
	output.SetupLogging(resolvedVerbose)

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if versionFlag {
		output.Println(version.FullVersionString(version.GetInfo(), version.DetectGit()))
		return nil
	}

	name := args[0]

	// Precedence: flag > env > config file > built-in default. The loader
	// already merged env and file, so only an explicit flag overrides it.
	templateName := loadedConfig.Template
	if cmd.Flags().Changed("template") {
		templateName = templateFlag
	}

	gen := generator.New(templates.Default(), generator.Options{
		Name:      name,
		Template:  templateName,
		ParentDir: dirFlag,
		SkipVCS:   skipGitFlag || !loadedConfig.VCSEnabled(),
	})

	var res *generator.Result
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var genErr error
		res, genErr = gen.Generate(cmd.Context())
		return genErr
	}, output.WithTitle(fmt.Sprintf("Creating %s...", name)))
	if err != nil {
		return err
	}

	if !res.VCS.Initialized && res.VCS.Ignored != nil {
		output.Debug("git init skipped", "error", res.VCS.Ignored)
	}

	if resolvedVerbose {
		files := make(map[string]string, len(res.Files))
		for _, f := range res.Files {
			files[f] = describeFile(f)
		}
		output.Print(output.RenderFileTree(res.Name, files))
	}

	output.Print(output.RenderSuccessBanner(output.BannerData{
		Name: res.Name,
		Path: res.Path,
	}))

	return nil
}

// describeFile returns a short description for well-known generated files,
// shown in the verbose file tree.
func describeFile(path string) string {
	switch filepath.Base(path) {
	case "pyproject.toml":
		return "Project metadata and dependencies"
	case "Makefile":
		return "Install, start, test, lint targets"
	case "README.md":
		return "Project documentation"
	case ".gitignore":
		return "Git ignore rules"
	case ".env_dev":
		return "Development environment settings"
	case "main.py":
		return "Application entry point"
	case "conftest.py":
		return "Shared test fixtures"
	}

	if strings.HasPrefix(path, "tests/") && strings.HasPrefix(filepath.Base(path), "test_") {
		return "Test suite"
	}

	return ""
}
