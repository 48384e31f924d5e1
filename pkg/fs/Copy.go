// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
	"fmt"
	"io"
	"os"
)

const (
	DefaultBufferSize = 32 * 1024
)

// contextReader stops a copy between two chunks once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, cr.ctx.Err()
	default:
		return cr.r.Read(p)
	}
}

// Copy copies the source file to the destination in fixed size chunks and then
// sets the access and modification times of the destination to those of the
// source.  Failures to open either file are appended to the journal.
func Copy(ctx context.Context, input *CopyInput) error {
	logf(input.Logger, "Copying file", map[string]interface{}{
		"src": input.SourceName,
		"dst": input.DestinationName,
	})

	// open source file
	sourceFile, err := input.SourceFileSystem.Open(ctx, input.SourceName)
	if err != nil {
		appendf(input.Journal, "FAILED to open the file '%s' for reading - %s", input.SourceName, Reason(err))
		return fmt.Errorf("error opening source file at %q: %w", input.SourceName, err)
	}

	// open destination file
	destinationFile, err := input.DestinationFileSystem.OpenFile(ctx, input.DestinationName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		_ = sourceFile.Close() // silently close source file
		appendf(input.Journal, "FAILED to open the file '%s' for writing - %s", input.DestinationName, Reason(err))
		return fmt.Errorf("error creating destination file at %q: %w", input.DestinationName, err)
	}

	bufferSize := input.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	// copy bytes from source to destination
	written, err := io.CopyBuffer(destinationFile, &contextReader{ctx: ctx, r: sourceFile}, make([]byte, bufferSize))
	if err != nil {
		_ = sourceFile.Close()      // silently close source file
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error copying from %q to %q: %w", input.SourceName, input.DestinationName, err)
	}

	err = sourceFile.Close()
	if err != nil {
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error closing source file after copying: %w", err)
	}

	err = destinationFile.Close()
	if err != nil {
		return fmt.Errorf("error closing destination file after copying: %w", err)
	}

	if _, err := input.DestinationFileSystem.Stat(ctx, input.DestinationName); err != nil {
		appendf(input.Journal, "FAILED to create the file '%s'", input.DestinationName)
		return fmt.Errorf("error stating destination file after copying %q: %w", input.DestinationName, err)
	}

	// Preserve access and modification times
	source := Inspect(ctx, input.SourceFileSystem, input.SourceName)
	if !source.OK() {
		logf(input.Logger, "Error reading timestamps of source", map[string]interface{}{
			"src": input.SourceName,
			"err": source.Err.Error(),
		})
	} else {
		mtime := source.ModTimeOr(Epoch)
		err = input.DestinationFileSystem.Chtimes(ctx, input.DestinationName, source.AccessTimeOr(mtime), mtime)
		if err != nil {
			logf(input.Logger, "Error changing timestamps for destination after copying", map[string]interface{}{
				"dst": input.DestinationName,
				"err": err.Error(),
			})
		}
	}

	if source.OK() && source.Info.Size() != written {
		logf(input.Logger, "Source changed size while copying", map[string]interface{}{
			"src":     input.SourceName,
			"size":    source.Info.Size(),
			"written": written,
		})
	}

	logf(input.Logger, "Done copying file", map[string]interface{}{
		"src":     input.SourceName,
		"dst":     input.DestinationName,
		"written": written,
	})

	return nil
}
