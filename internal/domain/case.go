package domain

import "path/filepath"

// TestCase is a single Qatam source file fed to the artifact under test.
type TestCase struct {
	Path string // Full path to the case file
	Dir  string // Containing directory
	Name string // Base name including extension
}

// NewTestCase builds a TestCase from a discovered file path.
func NewTestCase(path string) TestCase {
	return TestCase{
		Path: path,
		Dir:  filepath.Dir(path),
		Name: filepath.Base(path),
	}
}
