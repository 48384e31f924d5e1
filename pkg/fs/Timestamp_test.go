// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOlderThan(t *testing.T) {
	a := time.Date(2021, time.March, 4, 5, 6, 7, 100, time.UTC)
	b := time.Date(2021, time.March, 4, 5, 6, 7, 900, time.UTC)
	c := time.Date(2021, time.March, 4, 5, 6, 8, 0, time.UTC)

	assert.True(t, OlderThan(a, b, 0))
	assert.False(t, OlderThan(a, b, time.Second))
	assert.True(t, OlderThan(a, c, time.Second))
	assert.False(t, OlderThan(c, a, time.Second))
	assert.False(t, OlderThan(a, a, 0))
	assert.True(t, OlderThan(Epoch, a, time.Second))
}
