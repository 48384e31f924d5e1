// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

// FileType classifies a path as the walker sees it.
type FileType int

const (
	TypeOther FileType = iota
	TypeDirectory
	TypeRegularFile
)

func (t FileType) String() string {
	switch t {
	case TypeDirectory:
		return "directory"
	case TypeRegularFile:
		return "file"
	}
	return "other"
}
