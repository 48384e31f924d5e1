// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"github.com/spf13/afero"
)

// LocalFile only exposes Read and Write, so io.CopyBuffer streams through the
// caller's buffer instead of delegating to ReadFrom.
type LocalFile struct {
	file afero.File
}

func (lf *LocalFile) Close() error {
	return lf.file.Close()
}

func (lf *LocalFile) Name() string {
	return lf.file.Name()
}

func (lf *LocalFile) Read(s []byte) (int, error) {
	return lf.file.Read(s)
}

func (lf *LocalFile) Write(s []byte) (int, error) {
	return lf.file.Write(s)
}

func NewLocalFile(file afero.File) *LocalFile {
	return &LocalFile{
		file: file,
	}
}
