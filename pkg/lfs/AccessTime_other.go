// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

//go:build !linux && !darwin

package lfs

import (
	"os"
	"time"
)

// accessTime falls back to the modification time where the access time is not
// exposed through os.FileInfo.
func accessTime(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
