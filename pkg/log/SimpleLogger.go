// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"io"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SimpleLogger writes one JSON object per event.
type SimpleLogger struct {
	logger *zap.Logger
}

func (s *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	zapFields := []zap.Field{}
	for _, m := range fields {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			zapFields = append(zapFields, zap.Any(k, m[k]))
		}
	}
	s.logger.Info(msg, zapFields...)
	return nil
}

func (s *SimpleLogger) Sync() error {
	return s.logger.Sync()
}

func NewSimpleLogger(w io.Writer) *SimpleLogger {
	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "lvl",
		TimeKey:        "ts",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zap.DebugLevel)
	return &SimpleLogger{logger: zap.New(core)}
}
