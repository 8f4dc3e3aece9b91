package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted drops the unformatted source into a sidecar
// file when go/format rejects a rendered template, so the broken
// output can be inspected. Best-effort: a sidecar failure never makes
// generation fail harder.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	// A .go extension keeps editor highlighting; the extra suffix
	// keeps it from colliding with the real output.
	name := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(dir, name), content, filePerm)
}
