// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/navwar/gobackup/pkg/fs"
)

func TestNeedsCopy(t *testing.T) {
	ctx := context.Background()
	mem, fileSystem := newMemFileSystem()
	writeFile(t, mem, "/src/a.txt", "a", t1)

	input := &fs.CopyInput{
		SourceName:            "/src/a.txt",
		SourceFileSystem:      fileSystem,
		DestinationName:       "/dst/a.txt",
		DestinationFileSystem: fileSystem,
		TimestampPrecision:    time.Second,
	}

	// missing destination
	assert.True(t, fs.NeedsCopy(ctx, input))

	// destination newer
	writeFile(t, mem, "/dst/a.txt", "a", t2)
	assert.False(t, fs.NeedsCopy(ctx, input))

	// equal timestamps
	writeFile(t, mem, "/dst/a.txt", "a", t1)
	assert.False(t, fs.NeedsCopy(ctx, input))

	// equal within the precision
	writeFile(t, mem, "/dst/a.txt", "a", t1.Add(-300*time.Millisecond))
	assert.True(t, fs.NeedsCopy(ctx, input))
	writeFile(t, mem, "/dst/a.txt", "a", t1.Add(300*time.Millisecond))
	assert.False(t, fs.NeedsCopy(ctx, input))

	// destination older
	writeFile(t, mem, "/dst/a.txt", "a", t1.Add(-time.Hour))
	assert.True(t, fs.NeedsCopy(ctx, input))
}

// An unreadable source time falls back to the epoch, so an existing
// destination is never replaced.
func TestNeedsCopyUnreadableSource(t *testing.T) {
	ctx := context.Background()
	mem, fileSystem := newMemFileSystem()
	writeFile(t, mem, "/src/a.txt", "new", t2)
	writeFile(t, mem, "/dst/a.txt", "old", t1)

	j := newJournal()
	input := &fs.CopyInput{
		SourceName:            "/src/a.txt",
		SourceFileSystem:      &faultyFileSystem{FileSystem: fileSystem, allow: map[string]int{"/src/a.txt": 0}},
		DestinationName:       "/dst/a.txt",
		DestinationFileSystem: fileSystem,
		Journal:               j,
		TimestampPrecision:    time.Second,
	}

	assert.False(t, fs.NeedsCopy(ctx, input))
	assert.Equal(t, []string{"Could not read the metadata of '/src/a.txt' - permission denied"}, j.Lines())
}

// An unreadable destination time falls back to the epoch, so the copy is
// always attempted.
func TestNeedsCopyUnreadableDestination(t *testing.T) {
	ctx := context.Background()
	mem, fileSystem := newMemFileSystem()
	writeFile(t, mem, "/src/a.txt", "old", t1)
	writeFile(t, mem, "/dst/a.txt", "new", t2)

	j := newJournal()
	input := &fs.CopyInput{
		SourceName:            "/src/a.txt",
		SourceFileSystem:      fileSystem,
		DestinationName:       "/dst/a.txt",
		DestinationFileSystem: &faultyFileSystem{FileSystem: fileSystem, allow: map[string]int{"/dst/a.txt": 1}},
		Journal:               j,
		TimestampPrecision:    time.Second,
	}

	assert.True(t, fs.NeedsCopy(ctx, input))
	assert.Equal(t, []string{"Could not read the metadata of '/dst/a.txt' - permission denied"}, j.Lines())
}
