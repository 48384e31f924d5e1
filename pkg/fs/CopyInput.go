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

type CopyInput struct {
	BufferSize            int
	SourceName            string
	SourceFileSystem      FileSystem
	DestinationName       string
	DestinationFileSystem FileSystem
	Journal               Journal
	Logger                Logger
	TimestampPrecision    time.Duration
}
