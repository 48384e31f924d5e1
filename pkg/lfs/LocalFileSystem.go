// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/navwar/gobackup/pkg/fs"
)

type LocalFileSystem struct {
	fs afero.Fs
}

func (lfs *LocalFileSystem) Chtimes(ctx context.Context, name string, atime time.Time, mtime time.Time) error {
	return lfs.fs.Chtimes(name, atime, mtime)
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func (lfs *LocalFileSystem) Join(parent string, child string) string {
	return Join(parent, child)
}

func (lfs *LocalFileSystem) Lstat(ctx context.Context, name string) (fs.FileInfo, error) {
	if lstater, ok := lfs.fs.(afero.Lstater); ok {
		fi, _, err := lstater.LstatIfPossible(name)
		if err != nil {
			return nil, err
		}
		return NewLocalFileInfo(fi), nil
	}
	return lfs.Stat(ctx, name)
}

func (lfs *LocalFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.MkdirAll(name, mode)
}

func (lfs *LocalFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := lfs.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

// ReadDirNames returns the names in the directory in the order the
// underlying file system yields them.
func (lfs *LocalFileSystem) ReadDirNames(ctx context.Context, name string) ([]string, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	if err != nil {
		_ = f.Close() // silently close directory
		return nil, fmt.Errorf("error reading directory %q: %w", name, err)
	}
	err = f.Close()
	if err != nil {
		return nil, fmt.Errorf("error closing directory %q: %w", name, err)
	}
	return names, nil
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFileInfo(fi), nil
}

// NewFileSystem wraps an existing afero file system.
func NewFileSystem(fs afero.Fs) *LocalFileSystem {
	return &LocalFileSystem{
		fs: fs,
	}
}

func NewLocalFileSystem() *LocalFileSystem {
	return NewFileSystem(afero.NewOsFs())
}

func NewReadOnlyLocalFileSystem() *LocalFileSystem {
	return NewFileSystem(afero.NewReadOnlyFs(afero.NewOsFs()))
}
