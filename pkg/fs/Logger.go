// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"errors"
	"os"
	"syscall"
)

// Logger receives structured diagnostic events.
type Logger interface {
	Log(msg string, fields ...map[string]interface{}) error
}

// Journal is the run log.  Every line appended is one event of the run.
type Journal interface {
	Appendf(format string, args ...interface{})
}

func appendf(journal Journal, format string, args ...interface{}) {
	if journal != nil {
		journal.Appendf(format, args...)
	}
}

func logf(logger Logger, msg string, fields map[string]interface{}) {
	if logger != nil {
		_ = logger.Log(msg, fields)
	}
}

// Reason returns the operating system's description of err without the
// operation and path that the standard library prefixes it with.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var pathError *os.PathError
	if errors.As(err, &pathError) && pathError.Err != nil {
		return pathError.Err.Error()
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}
	return err.Error()
}
