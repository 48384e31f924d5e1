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

type SyncInput struct {
	BufferSize            int
	Source                string
	SourceFileSystem      FileSystem
	Destination           string
	DestinationFileSystem FileSystem
	Exclude               []string // source paths that are skipped
	Journal               Journal
	Logger                Logger
	MaxThreads            int
	TimestampPrecision    time.Duration
}
