// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"time"
)

// Metadata is the result of a single metadata query.  Err is set when the
// query failed, in which case Info is nil.
type Metadata struct {
	Path string
	Info FileInfo
	Err  error
}

func (m Metadata) OK() bool {
	return m.Err == nil
}

// Type returns TypeOther when the metadata could not be read.
func (m Metadata) Type() FileType {
	if m.Err != nil || m.Info == nil {
		return TypeOther
	}
	return m.Info.Type()
}

func (m Metadata) ModTimeOr(fallback time.Time) time.Time {
	if m.Err != nil || m.Info == nil {
		return fallback
	}
	return m.Info.ModTime()
}

func (m Metadata) AccessTimeOr(fallback time.Time) time.Time {
	if m.Err != nil || m.Info == nil {
		return fallback
	}
	return m.Info.AccessTime()
}

// Log appends the failure, if any, to the journal.
func (m Metadata) Log(journal Journal) {
	if m.Err != nil {
		appendf(journal, "Could not read the metadata of '%s' - %s", m.Path, Reason(m.Err))
	}
}

// Inspect stats name, following symbolic links.
func Inspect(ctx context.Context, fileSystem FileSystem, name string) Metadata {
	fi, err := fileSystem.Stat(ctx, name)
	if err != nil {
		return Metadata{Path: name, Err: err}
	}
	return Metadata{Path: name, Info: fi}
}

// InspectEntry stats name without following a symbolic link, so that links
// are reported as TypeOther.
func InspectEntry(ctx context.Context, fileSystem FileSystem, name string) Metadata {
	fi, err := fileSystem.Lstat(ctx, name)
	if err != nil {
		return Metadata{Path: name, Err: err}
	}
	return Metadata{Path: name, Info: fi}
}
