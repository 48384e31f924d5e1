// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLogPlainLines(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRunLog(buf)
	r.Appendf("'%s' -> '%s'", "src/a.txt", "dst/a.txt")
	r.Appendf("FAILED to create '%s' - %s", "dst", "permission denied")
	require.NoError(t, r.Close())
	assert.Equal(t, "'src/a.txt' -> 'dst/a.txt'\nFAILED to create 'dst' - permission denied\n", buf.String())
}

func TestRunLogConcurrent(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRunLog(buf)
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Appendf("line %d %d", i, j)
			}
		}()
	}
	wg.Wait()
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 400)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "line "), line)
	}
}

func TestOpenRunLogTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0644))

	r, err := OpenRunLog(path)
	require.NoError(t, err)
	r.Appendf("%s", "current run")
	require.NoError(t, r.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "current run\n", string(b))
}

func TestOpenRunLogError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "last.log")
	_, err := OpenRunLog(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), fmt.Sprint(err))
}
