package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
)

// gitVersionRegex matches git version output like "git version 2.43.0".
var gitVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:\.[a-zA-Z0-9]+)*`)

// GitBinaryInfo contains git binary detection results.
type GitBinaryInfo struct {
	// Version is the git binary version.
	Version string `json:"version"`

	// Path is the path to the git binary.
	Path string `json:"path"`

	// Found indicates if a git binary was found on PATH.
	Found bool `json:"found"`

	// Message provides additional detail when detection fails.
	Message string `json:"message,omitempty"`
}

// DetectGit finds and checks the git binary installation. Repository
// initialization is best-effort, so a missing binary is reported, never fatal.
func DetectGit() GitBinaryInfo {
	path, err := exec.LookPath("git")
	if err != nil {
		return GitBinaryInfo{
			Found:   false,
			Message: "git binary not found in PATH",
		}
	}

	ver, err := getGitVersion(path)
	if err != nil {
		return GitBinaryInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get git version: " + err.Error(),
		}
	}

	return GitBinaryInfo{
		Version: ver,
		Path:    path,
		Found:   true,
	}
}

// getGitVersion executes 'git version' and extracts the version string.
func getGitVersion(gitPath string) (string, error) {
	cmd := exec.Command(gitPath, "version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractGitVersion(out.String())
}

// extractGitVersion extracts the version number from git version output.
func extractGitVersion(output string) (string, error) {
	match := gitVersionRegex.FindString(output)
	if match == "" {
		return "", fmt.Errorf("unrecognized git version output: %q", output)
	}
	return match, nil
}
