// Package fileutil holds small filesystem helpers shared by the tools.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirPerm is the mode used for directories the tools create.
const DirPerm = 0755

// EnsureParentDir creates the directory that will hold path, including any
// missing intermediate directories. It reports whether anything was created.
func EnsureParentDir(path string) (bool, error) {
	dir := filepath.Dir(path)

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether something exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
