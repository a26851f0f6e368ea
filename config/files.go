// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Extension is the suffix of files picked up from directories.
const Extension = ".hcl"

// findFiles expands directories into the definition files below them.
// Explicit file paths are kept whatever their extension; each file is
// returned once, in the order first seen.
func findFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(filepath.Clean(path))
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == Extension {
				add(filepath.Clean(p))
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
