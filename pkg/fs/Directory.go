// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"
	"syscall"
)

// EnsureDirectory creates name, and any missing parents, unless it already exists.
func EnsureDirectory(ctx context.Context, fileSystem FileSystem, name string) error {
	fi, err := fileSystem.Stat(ctx, name)
	if err == nil {
		if fi.IsDir() {
			return nil
		}
		return fmt.Errorf("error creating directory %q: %w", name, syscall.ENOTDIR)
	}
	if !fileSystem.IsNotExist(err) {
		return fmt.Errorf("error stating directory %q: %w", name, err)
	}
	if err := fileSystem.MkdirAll(ctx, name, 0755); err != nil {
		return fmt.Errorf("error creating directory %q: %w", name, err)
	}
	return nil
}
