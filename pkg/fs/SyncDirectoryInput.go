// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"time"
)

type SyncDirectoryInput struct {
	BufferSize            int
	Counters              *Counters
	DestinationDirectory  string
	DestinationFileSystem FileSystem
	Exclude               []string
	Journal               Journal
	Logger                Logger
	SourceDirectory       string
	SourceFileSystem      FileSystem
	TimestampPrecision    time.Duration
}

// child returns the input for synchronizing the directory entry below this one.
func (input *SyncDirectoryInput) child(entry *DirectoryEntry, counters *Counters) *SyncDirectoryInput {
	c := *input
	c.Counters = counters
	c.SourceDirectory = entry.SourcePath()
	c.DestinationDirectory = entry.DestinationPath()
	return &c
}

func (input *SyncDirectoryInput) excluded(name string) bool {
	for _, e := range input.Exclude {
		if e == name {
			return true
		}
	}
	return false
}
