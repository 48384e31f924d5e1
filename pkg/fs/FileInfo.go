// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"time"
)

type FileInfo interface {
	AccessTime() time.Time
	IsDir() bool
	ModTime() time.Time
	Size() int64
	Type() FileType
}
