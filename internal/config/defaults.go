package config

const (
	// DefaultTestRoot is the test tree walked when no directory argument is given
	DefaultTestRoot = "tests"
	// DefaultBuildCommand produces the artifact under test
	DefaultBuildCommand = "cargo build --release"
	// DefaultArtifactName is the toolchain binary name inside the build output directory
	DefaultArtifactName = "قتام"
	// CaseExtension marks a file as a test case
	CaseExtension = ".قتام"
	// ResultsDirName is the reserved per-directory snapshot container
	ResultsDirName = "النتائج"
	// SnapshotExtension is appended to a case's base name inside the container
	SnapshotExtension = ".txt"
	// DefaultOutputJSONFile is the default run-results file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default run-results directory
	DefaultOutputJSONDir = "storage"
)

// DefaultBuildOutputDir holds the compiled artifact, relative to the working directory.
var DefaultBuildOutputDir = []string{"target", "release"}
