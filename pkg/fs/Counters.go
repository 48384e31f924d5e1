// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"go.uber.org/atomic"
)

// Counters are shared by every directory of a single run.
type Counters struct {
	Directories atomic.Int64
	Copied      atomic.Int64
	UpToDate    atomic.Int64
	Failed      atomic.Int64
}

func (c *Counters) Output() *SyncOutput {
	return &SyncOutput{
		Directories: c.Directories.Load(),
		Copied:      c.Copied.Load(),
		UpToDate:    c.UpToDate.Load(),
		Failed:      c.Failed.Load(),
	}
}

type SyncOutput struct {
	Directories int64 // source directories listed
	Copied      int64
	UpToDate    int64
	Failed      int64
}
