package gen

import (
	"bytes"
	"errors"
	"io/fs"

	"github.com/spf13/afero"

	"nullable-generator/internal/diagnostic"
)

// Check compares freshly generated files with what is on fsys and reports
// every file that is missing or differs.
func Check(fsys afero.Fs, files []GeneratedFile) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, file := range files {
		onDisk, err := afero.ReadFile(fsys, file.Path())

		switch {
		case errors.Is(err, fs.ErrNotExist):
			diags.AddError(diagnostic.CodeMissingFile,
				file.Path()+" has not been generated", file.TypeName, "")
		case err != nil:
			diags.AddError(diagnostic.CodeMissingFile,
				"reading "+file.Path()+": "+err.Error(), file.TypeName, "")
		case !bytes.Equal(onDisk, file.Content):
			diags.AddError(diagnostic.CodeStaleFile,
				file.Path()+" is out of date", file.TypeName, "")
		default:
			diags.AddInfo(diagnostic.CodeGenerated,
				file.Path()+" is up to date", file.TypeName, "")
		}
	}

	return diags
}
