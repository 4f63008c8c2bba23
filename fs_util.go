package hashext

import (
	"github.com/spf13/afero"
	"path/filepath"
)

// writeFile writes data to path, creating missing parent directories.
// An existing file is truncated.
func writeFile(fs afero.Fs, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, modeDir); err != nil {
			return err
		}
	}

	return afero.WriteFile(fs, path, data, modeFile)
}
