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

// Epoch is the timestamp assumed for a path whose metadata could not be read.
var Epoch = time.Unix(0, 0)

// OlderThan reports whether a is strictly before b once both are truncated to d.
func OlderThan(a time.Time, b time.Time, d time.Duration) bool {
	return a.Truncate(d).Before(b.Truncate(d))
}
