package format

import (
	"os"
	"path/filepath"
	"testing"
)

// Files under testdata/canonical are already formatted and must come back
// unchanged.
func TestCanonicalTestdata(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "canonical", "*.rs"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no canonical testdata files")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			checkCanonical(t, string(src))
		})
	}
}
