package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.2.3",
		GitCommit: "abc1234",
		BuildDate: "2026-01-01",
		GoVersion: "go1.25.0",
	}

	s := info.String()
	assert.Contains(t, s, "fastapi-gen")
	assert.Contains(t, s, "v1.2.3")
	assert.Contains(t, s, "abc1234")
	assert.Contains(t, s, "go1.25.0")
}

func TestExtractGitVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{
			name:   "standard output",
			output: "git version 2.43.0\n",
			want:   "2.43.0",
		},
		{
			name:   "apple git",
			output: "git version 2.39.3 (Apple Git-146)\n",
			want:   "2.39.3",
		},
		{
			name:   "two component version",
			output: "git version 2.43\n",
			want:   "2.43",
		},
		{
			name:    "garbage output",
			output:  "not a version",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractGitVersion(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFullVersionString(t *testing.T) {
	info := GetInfo()

	withGit := FullVersionString(info, GitBinaryInfo{Found: true, Version: "2.43.0", Path: "/usr/bin/git"})
	assert.Contains(t, withGit, "2.43.0")
	assert.Contains(t, withGit, "/usr/bin/git")

	withoutGit := FullVersionString(info, GitBinaryInfo{Found: false})
	assert.Contains(t, withoutGit, "not found")
}
