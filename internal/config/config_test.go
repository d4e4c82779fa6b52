package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetTestRoot(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		args     []string
		expected string
	}{
		{
			name:     "default root",
			config:   &Config{TestRoot: DefaultTestRoot},
			args:     nil,
			expected: "tests",
		},
		{
			name:     "positional argument wins",
			config:   &Config{TestRoot: DefaultTestRoot},
			args:     []string{"examples"},
			expected: "examples",
		},
		{
			name:     "argument is cleaned",
			config:   &Config{TestRoot: DefaultTestRoot},
			args:     []string{"tests/sub/.."},
			expected: "tests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.GetTestRoot(tt.args)
			if got != filepath.FromSlash(tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("QSNAP_TEST_ROOT", "custom-tests")
	t.Setenv("QSNAP_ARTIFACT", filepath.Join("bin", "toolchain"))
	t.Setenv("QSNAP_BUILD_CMD", "make release")

	cfg := New()
	if cfg.TestRoot != "custom-tests" {
		t.Errorf("QSNAP_TEST_ROOT not applied: %q", cfg.TestRoot)
	}
	if cfg.ArtifactPath != filepath.Join("bin", "toolchain") {
		t.Errorf("QSNAP_ARTIFACT not applied: %q", cfg.ArtifactPath)
	}
	if cfg.BuildCommand != "make release" {
		t.Errorf("QSNAP_BUILD_CMD not applied: %q", cfg.BuildCommand)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := New()

	if cfg.TestRoot != "tests" {
		t.Errorf("unexpected default test root: %q", cfg.TestRoot)
	}
	if cfg.BuildCommand != "cargo build --release" {
		t.Errorf("unexpected default build command: %q", cfg.BuildCommand)
	}
	if filepath.Dir(cfg.ArtifactPath) != filepath.Join("target", "release") {
		t.Errorf("artifact not under the build output dir: %q", cfg.ArtifactPath)
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	p := cfg.GetOutputPath()
	if !filepath.IsAbs(p) {
		t.Errorf("output path should be absolute, got %q", p)
	}
	if filepath.Base(p) != DefaultOutputJSONFile {
		t.Errorf("unexpected output file name: %q", p)
	}
}
