// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
)

// NeedsCopy reports whether the destination of input is missing or strictly
// older than its source.  A modification time that cannot be read is taken
// to be the Epoch.
func NeedsCopy(ctx context.Context, input *CopyInput) bool {
	if _, err := input.DestinationFileSystem.Stat(ctx, input.DestinationName); err != nil {
		return true
	}

	destination := Inspect(ctx, input.DestinationFileSystem, input.DestinationName)
	destination.Log(input.Journal)

	source := Inspect(ctx, input.SourceFileSystem, input.SourceName)
	source.Log(input.Journal)

	return OlderThan(destination.ModTimeOr(Epoch), source.ModTimeOr(Epoch), input.TimestampPrecision)
}
