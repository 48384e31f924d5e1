// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"os"
	"strings"
)

// Join appends child to parent with the path separator for the local
// operating system.  Neither argument is cleaned.
func Join(parent string, child string) string {
	var b strings.Builder
	b.Grow(len(parent) + 1 + len(child))
	b.WriteString(parent)
	b.WriteRune(os.PathSeparator)
	b.WriteString(child)
	return b.String()
}
