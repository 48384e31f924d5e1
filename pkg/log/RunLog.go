// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunLog writes each event as a single plain line: no timestamp, no level.
// It is safe for concurrent use.
type RunLog struct {
	logger *zap.SugaredLogger
	closer io.Closer
}

func (r *RunLog) Appendf(format string, args ...interface{}) {
	r.logger.Infof(format, args...)
}

// Close flushes the log and closes the underlying file, if RunLog opened one.
func (r *RunLog) Close() error {
	_ = r.logger.Sync()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func NewRunLog(w io.Writer) *RunLog {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zap.InfoLevel)
	return &RunLog{logger: zap.New(core).Sugar()}
}

// OpenRunLog creates or truncates the file at path.
func OpenRunLog(path string) (*RunLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening run log %q: %w", path, err)
	}
	r := NewRunLog(f)
	r.closer = f
	return r, nil
}
