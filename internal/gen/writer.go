package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files into dir, creating it if needed.
// Files whose on-disk content already matches are left untouched, so
// regeneration does not churn mtimes or retrigger file watchers.
func WriteFiles(files []GeneratedFile, dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(dir, file.Filename)

		if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, file.Content) {
			continue
		}

		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
