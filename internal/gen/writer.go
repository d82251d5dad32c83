package gen

import (
	"fmt"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to their directories on fsys.
// Directories are created if they don't exist.
func WriteFiles(fsys afero.Fs, files []GeneratedFile) error {
	for _, file := range files {
		if err := fsys.MkdirAll(file.Dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := afero.WriteFile(fsys, file.Path(), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
