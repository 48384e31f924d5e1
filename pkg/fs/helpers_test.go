// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/navwar/gobackup/pkg/fs"
	"github.com/navwar/gobackup/pkg/lfs"
	"github.com/navwar/gobackup/pkg/log"
)

var (
	t1 = time.Date(2021, time.March, 4, 5, 6, 7, 0, time.UTC)
	t2 = time.Date(2022, time.August, 9, 10, 11, 12, 0, time.UTC)
)

// journal collects the run log in memory.
type journal struct {
	buf *bytes.Buffer
	*log.RunLog
}

func newJournal() *journal {
	buf := &bytes.Buffer{}
	return &journal{buf: buf, RunLog: log.NewRunLog(buf)}
}

func (j *journal) Lines() []string {
	s := strings.TrimSuffix(j.buf.String(), "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

func writeFile(t *testing.T, mem afero.Fs, name string, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, mem.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0644))
	require.NoError(t, mem.Chtimes(name, mtime, mtime))
}

func readFile(t *testing.T, mem afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(mem, name)
	require.NoError(t, err)
	return string(b)
}

func exists(mem afero.Fs, name string) bool {
	_, err := mem.Stat(name)
	return err == nil
}

// faultyFileSystem fails Stat for a path once the number of allowed calls for
// that path is used up.
type faultyFileSystem struct {
	fs.FileSystem
	allow map[string]int
}

func (f *faultyFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if n, ok := f.allow[name]; ok {
		if n <= 0 {
			return nil, &os.PathError{Op: "stat", Path: name, Err: syscall.EACCES}
		}
		f.allow[name] = n - 1
	}
	return f.FileSystem.Stat(ctx, name)
}

func newMemFileSystem() (afero.Fs, *lfs.LocalFileSystem) {
	mem := afero.NewMemMapFs()
	return mem, lfs.NewFileSystem(mem)
}

// brokenFileSystem fails Lstat and ReadDirNames for chosen paths.
type brokenFileSystem struct {
	fs.FileSystem
	lstat map[string]error
	list  map[string]error
}

func (b *brokenFileSystem) Lstat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err, ok := b.lstat[name]; ok {
		return nil, &os.PathError{Op: "lstat", Path: name, Err: err}
	}
	return b.FileSystem.Lstat(ctx, name)
}

func (b *brokenFileSystem) ReadDirNames(ctx context.Context, name string) ([]string, error) {
	if err, ok := b.list[name]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return b.FileSystem.ReadDirNames(ctx, name)
}
