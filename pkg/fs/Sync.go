// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sync mirrors the source directory into the destination directory.  Problems
// with individual entries are appended to the journal and never stop the run;
// the returned error is only set when ctx is done before the walk completes.
//
// Up to MaxThreads goroutines walk independent subtrees.  Each goroutine keeps
// its own work list and hands a subdirectory to a new goroutine only while a
// slot is free.
func Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error) {
	threads := input.MaxThreads
	if threads < 1 {
		threads = 1
	}

	logf(input.Logger, "Synchronizing", map[string]interface{}{
		"src":     input.Source,
		"dst":     input.Destination,
		"threads": threads,
	})

	counters := &Counters{}

	root := &SyncDirectoryInput{
		BufferSize:            input.BufferSize,
		Counters:              counters,
		DestinationDirectory:  input.Destination,
		DestinationFileSystem: input.DestinationFileSystem,
		Exclude:               input.Exclude,
		Journal:               input.Journal,
		Logger:                input.Logger,
		SourceDirectory:       input.Source,
		SourceFileSystem:      input.SourceFileSystem,
		TimestampPrecision:    input.TimestampPrecision,
	}

	var wg errgroup.Group
	wg.SetLimit(threads)
	wg.Go(func() error {
		return syncTree(ctx, &wg, root)
	})
	err := wg.Wait()

	output := counters.Output()

	logf(input.Logger, "Done synchronizing", map[string]interface{}{
		"src":         input.Source,
		"dst":         input.Destination,
		"directories": output.Directories,
		"copied":      output.Copied,
		"up_to_date":  output.UpToDate,
		"failed":      output.Failed,
	})

	return output, err
}

func syncTree(ctx context.Context, wg *errgroup.Group, root *SyncDirectoryInput) error {
	pending := []*SyncDirectoryInput{root}
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, subdirectory := range SyncDirectory(ctx, next) {
			subdirectory := subdirectory
			started := wg.TryGo(func() error {
				return syncTree(ctx, wg, subdirectory)
			})
			if !started {
				pending = append(pending, subdirectory)
			}
		}
	}
	return nil
}
