package ciutil

import (
	"testing"

	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		t.Setenv(name, "")
	}
}

func TestIsCI(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "no CI variables", want: false},
		{name: "generic CI", env: map[string]string{EnvCI: "true"}, want: true},
		{name: "GitHub Actions", env: map[string]string{EnvGitHubActions: "true"}, want: true},
		{name: "Jenkins", env: map[string]string{EnvJenkinsURL: "https://jenkins.example.com"}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearCIEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.want, IsCI())
		})
	}
}

func TestTestDatabaseURL(t *testing.T) {
	log, buf := logger.GetTestLogger(t)

	t.Setenv(EnvTestDatabaseURL, "")
	t.Setenv(EnvDatabaseURL, "")
	assert.Empty(t, TestDatabaseURL(log))

	t.Setenv(EnvDatabaseURL, "postgres://ci:s3cret@db:5432/test")
	assert.Equal(t, "postgres://ci:s3cret@db:5432/test", TestDatabaseURL(log))
	logger.AssertLogContains(t, buf, EnvDatabaseURL)
	assert.NotContains(t, buf.String(), "s3cret")

	t.Setenv(EnvTestDatabaseURL, "postgres://local@localhost/test")
	assert.Equal(t, "postgres://local@localhost/test", TestDatabaseURL(log))
}

func TestMaskSensitiveValue(t *testing.T) {
	assert.Equal(t, "postgres://app:xxxxx@db:5432/readaloud", MaskSensitiveValue("postgres://app:pw@db:5432/readaloud"))
	assert.Equal(t, "postgres://app@db/readaloud", MaskSensitiveValue("postgres://app@db/readaloud"))
	assert.Equal(t, "plain", MaskSensitiveValue("plain"))
}
