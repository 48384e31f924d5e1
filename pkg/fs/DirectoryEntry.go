// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

// DirectoryEntry is one name found while listing a source directory,
// paired with the paths it maps to on both sides of the mirror.
type DirectoryEntry struct {
	name            string
	sourcePath      string
	destinationPath string
}

func (de *DirectoryEntry) Name() string {
	return de.name
}

func (de *DirectoryEntry) SourcePath() string {
	return de.sourcePath
}

func (de *DirectoryEntry) DestinationPath() string {
	return de.destinationPath
}

func NewDirectoryEntry(name string, sourcePath string, destinationPath string) *DirectoryEntry {
	return &DirectoryEntry{
		name:            name,
		sourcePath:      sourcePath,
		destinationPath: destinationPath,
	}
}
