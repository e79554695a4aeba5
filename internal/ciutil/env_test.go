package ciutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearCIEnv blanks every CI marker so each case starts from a clean slate.
// t.Setenv restores the original values when the test finishes.
func clearCIEnv(t *testing.T) {
	t.Helper()

	keys := []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvTravisCI, EnvCircleCI}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestIsCI(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"generic CI variable", EnvCI},
		{"GitHub Actions", EnvGitHubActions},
		{"GitLab CI", EnvGitLabCI},
		{"Jenkins", EnvJenkinsURL},
		{"Travis", EnvTravisCI},
		{"CircleCI", EnvCircleCI},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearCIEnv(t)
			t.Setenv(tc.key, "true")

			assert.True(t, IsCI())
		})
	}
}

func TestIsCIFalseWithoutMarkers(t *testing.T) {
	clearCIEnv(t)

	assert.False(t, IsCI())
}
