// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

// Nested reports whether child is strictly inside parent and, if so, returns
// the components of child below parent.  Both paths should be absolute and
// clean.
func Nested(parent string, child string) ([]string, bool) {
	parentDirectories := Split(parent)
	childDirectories := Split(child)
	if len(childDirectories) <= len(parentDirectories) {
		return nil, false
	}
	for i := range parentDirectories {
		if parentDirectories[i] != childDirectories[i] {
			return nil, false
		}
	}
	return childDirectories[len(parentDirectories):], true
}
