// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
	"os"
	"time"
)

type FileSystem interface {
	Chtimes(ctx context.Context, name string, atime time.Time, mtime time.Time) error
	IsNotExist(err error) bool
	Join(parent string, child string) string
	Lstat(ctx context.Context, name string) (FileInfo, error)
	MkdirAll(ctx context.Context, name string, mode os.FileMode) error
	Open(ctx context.Context, name string) (File, error)
	OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (File, error)
	ReadDirNames(ctx context.Context, name string) ([]string, error)
	Stat(ctx context.Context, name string) (FileInfo, error)
}
