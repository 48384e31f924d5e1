// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
)

// SyncDirectory synchronizes the regular files directly inside the source
// directory and returns the inputs for its subdirectories, which the caller
// is responsible for synchronizing.
//
// The destination directory is created before the first entry is handled.  If
// it cannot be created the rest of the listing is abandoned.
func SyncDirectory(ctx context.Context, input *SyncDirectoryInput) []*SyncDirectoryInput {
	counters := input.Counters
	if counters == nil {
		counters = &Counters{}
	}

	names, err := input.SourceFileSystem.ReadDirNames(ctx, input.SourceDirectory)
	if err != nil {
		appendf(input.Journal, "The source directory '%s' NOT found - %s", input.SourceDirectory, Reason(err))
		return nil
	}

	counters.Directories.Inc()

	logf(input.Logger, "Synchronizing directory", map[string]interface{}{
		"src":     input.SourceDirectory,
		"dst":     input.DestinationDirectory,
		"entries": len(names),
	})

	subdirectories := []*SyncDirectoryInput{}
	destinationReady := false

	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		entry := NewDirectoryEntry(
			name,
			input.SourceFileSystem.Join(input.SourceDirectory, name),
			input.DestinationFileSystem.Join(input.DestinationDirectory, name))

		if input.excluded(entry.SourcePath()) {
			continue
		}

		if !destinationReady {
			if err := EnsureDirectory(ctx, input.DestinationFileSystem, input.DestinationDirectory); err != nil {
				appendf(input.Journal, "FAILED to create '%s' - %s", input.DestinationDirectory, Reason(err))
				break
			}
			destinationReady = true
		}

		metadata := InspectEntry(ctx, input.SourceFileSystem, entry.SourcePath())
		if !metadata.OK() {
			// the entry vanished after the listing
			if !input.SourceFileSystem.IsNotExist(metadata.Err) {
				metadata.Log(input.Journal)
			}
			continue
		}

		switch metadata.Type() {
		case TypeDirectory:
			subdirectories = append(subdirectories, input.child(entry, counters))
		case TypeRegularFile:
			syncFile(ctx, input, entry, counters)
		}
	}

	return subdirectories
}

func syncFile(ctx context.Context, input *SyncDirectoryInput, entry *DirectoryEntry, counters *Counters) {
	copyInput := &CopyInput{
		BufferSize:            input.BufferSize,
		SourceName:            entry.SourcePath(),
		SourceFileSystem:      input.SourceFileSystem,
		DestinationName:       entry.DestinationPath(),
		DestinationFileSystem: input.DestinationFileSystem,
		Journal:               input.Journal,
		Logger:                input.Logger,
		TimestampPrecision:    input.TimestampPrecision,
	}

	if !NeedsCopy(ctx, copyInput) {
		counters.UpToDate.Inc()
		return
	}

	if err := Copy(ctx, copyInput); err != nil {
		counters.Failed.Inc()
		appendf(input.Journal, "FAILED to copy '%s' to '%s'", entry.SourcePath(), entry.DestinationPath())
		logf(input.Logger, "Error copying file", map[string]interface{}{
			"name": entry.Name(),
			"src":  entry.SourcePath(),
			"dst":  entry.DestinationPath(),
			"err":  err.Error(),
		})
		return
	}

	counters.Copied.Inc()
	appendf(input.Journal, "'%s' -> '%s'", entry.SourcePath(), entry.DestinationPath())
}
