package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Listing is the classified contents of a single directory level.
// Entries keep the filesystem's enumeration order.
type Listing struct {
	Cases      []string // test-case files
	Subdirs    []string // child directories to recurse into
	ResultsDir string   // reserved snapshot container, empty if absent
}

// Walker classifies directory entries for the harness. Its classification
// is authoritative: the results container is never a subdirectory and
// never a case.
type Walker struct {
	caseExt    string
	resultsDir string
}

// NewWalker creates a Walker for the given case extension and reserved
// container name.
func NewWalker(caseExt, resultsDir string) *Walker {
	return &Walker{caseExt: caseExt, resultsDir: resultsDir}
}

// List classifies the direct entries of dir. Files without the case
// extension are ignored. A listing failure is returned to the caller so
// the subtree can be skipped without aborting siblings.
func (w *Walker) List(dir string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("list %s: %w", dir, err)
	}

	var l Listing
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir() && e.Name() == w.resultsDir:
			l.ResultsDir = path
		case e.IsDir():
			l.Subdirs = append(l.Subdirs, path)
		case strings.HasSuffix(e.Name(), w.caseExt):
			l.Cases = append(l.Cases, path)
		}
	}
	return l, nil
}
