// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"os"
	"time"

	"github.com/navwar/gobackup/pkg/fs"
)

type LocalFileInfo struct {
	fi os.FileInfo
}

func (lfi *LocalFileInfo) AccessTime() time.Time {
	return accessTime(lfi.fi)
}

func (lfi *LocalFileInfo) IsDir() bool {
	return lfi.fi.IsDir()
}

func (lfi *LocalFileInfo) ModTime() time.Time {
	return lfi.fi.ModTime()
}

func (lfi *LocalFileInfo) Size() int64 {
	return lfi.fi.Size()
}

func (lfi *LocalFileInfo) Type() fs.FileType {
	mode := lfi.fi.Mode()
	switch {
	case mode.IsDir():
		return fs.TypeDirectory
	case mode.IsRegular():
		return fs.TypeRegularFile
	}
	return fs.TypeOther
}

func NewLocalFileInfo(fi os.FileInfo) *LocalFileInfo {
	return &LocalFileInfo{fi: fi}
}
