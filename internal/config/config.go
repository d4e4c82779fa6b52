package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness
type Config struct {
	// Test tree settings
	TestRoot string

	// Artifact settings
	ArtifactPath string
	BuildCommand string

	// Run-results output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	NoBuild    bool
	NameFilter string
	NoSave     bool
}

// New creates a new Config with defaults and environment overrides applied.
func New() *Config {
	cfg := &Config{
		TestRoot:       DefaultTestRoot,
		ArtifactPath:   defaultArtifactPath(),
		BuildCommand:   DefaultBuildCommand,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.loadEnv()
	return cfg
}

// loadEnv applies overrides from an optional .env file and the environment.
func (c *Config) loadEnv() {
	if err := godotenv.Load(); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}
	if v := os.Getenv("QSNAP_TEST_ROOT"); v != "" {
		c.TestRoot = v
	}
	if v := os.Getenv("QSNAP_ARTIFACT"); v != "" {
		c.ArtifactPath = v
	}
	if v := os.Getenv("QSNAP_BUILD_CMD"); v != "" {
		c.BuildCommand = v
	}
}

// GetTestRoot returns the directory to walk: the positional argument if
// one was given, the configured root otherwise.
func (c *Config) GetTestRoot(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return filepath.Clean(args[0])
	}
	return c.TestRoot
}

// GetOutputPath returns the full path to the run-results JSON file.
// Resolves to an absolute path so run and view always read/write the same
// file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// defaultArtifactPath returns the conventional toolchain binary location.
func defaultArtifactPath() string {
	name := DefaultArtifactName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	parts := append(append([]string{}, DefaultBuildOutputDir...), name)
	return filepath.Join(parts...)
}
