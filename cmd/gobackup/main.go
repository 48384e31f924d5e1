// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/navwar/gobackup/pkg/fs"
	"github.com/navwar/gobackup/pkg/lfs"
	"github.com/navwar/gobackup/pkg/log"
)

const (
	GoBackupVersion = "0.0.1"
)

// Debug Flag
const (
	flagDebug = "debug"
)

// Sync Flags
const (
	flagBufferSize         = "buffer-size"
	flagThreads            = "threads"
	flagTimestampPrecision = "timestamp-precision"
)

// Sync Defaults
const (
	DefaultBufferSize         = fs.DefaultBufferSize
	DefaultThreads            = 1
	DefaultTimestampPrecision = time.Second
)

// Log Flags
const (
	flagLogPath = "log-path"
)

// Log Defaults
const (
	DefaultLogPath = "last.log"
)

var errUsage = errors.New("expecting 2 positional arguments for source and destination directories")

// exitError ends the process with code after the message was already written.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func initDebugFlags(flag *pflag.FlagSet) {
	flag.BoolP(flagDebug, "d", false, "print debug messages to stderr")
}

func initSyncFlags(flag *pflag.FlagSet) {
	flag.Int(flagThreads, DefaultThreads, "maximum number of directories synchronized in parallel")
	flag.Duration(flagTimestampPrecision, DefaultTimestampPrecision, "precision to use when comparing modification times")
	flag.Int(flagBufferSize, DefaultBufferSize, "size in bytes of the buffer used to copy files")
}

func initLogFlags(flag *pflag.FlagSet) {
	flag.String(flagLogPath, DefaultLogPath, "path to the run log.  The file is truncated at the start of each run.")
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvPrefix("gobackup")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	return v, nil
}

func checkConfig(v *viper.Viper) error {
	if logPath := v.GetString(flagLogPath); len(logPath) == 0 {
		return fmt.Errorf("log path is missing")
	}
	if threads := v.GetInt(flagThreads); threads < 1 {
		return fmt.Errorf("threads %d is less than 1", threads)
	}
	if bufferSize := v.GetInt(flagBufferSize); bufferSize < 1 {
		return fmt.Errorf("buffer size %d is less than 1", bufferSize)
	}
	if timestampPrecision := v.GetDuration(flagTimestampPrecision); timestampPrecision < 0 {
		return fmt.Errorf("timestamp precision %q is negative", timestampPrecision)
	}
	return nil
}

func usage(name string) string {
	return strings.Join([]string{
		"",
		"USAGE: " + name + " SOURCE_DIRECTORY DESTINATION_DIRECTORY",
		"",
		"\tSOURCE DIRECTORY:         The path of the directory to copy from",
		"\tDESTINATION DIRECTORY:    The path of the directory to copy to",
		"",
		"\tPut -- before the directories if a path starts with '-'.",
		"",
		"",
	}, "\n")
}

// exitCode returns the errno behind err, or 1 if there is none.
func exitCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return 1
}

// nestedDestination returns the source path under which the walker would
// reach the destination, or "" if the destination is not inside the source.
func nestedDestination(source string, destination string) string {
	sourceAbsolutePath, err := filepath.Abs(source)
	if err != nil {
		return ""
	}
	destinationAbsolutePath, err := filepath.Abs(destination)
	if err != nil {
		return ""
	}
	components, ok := lfs.Nested(sourceAbsolutePath, destinationAbsolutePath)
	if !ok {
		return ""
	}
	p := source
	for _, c := range components {
		p = lfs.Join(p, c)
	}
	return p
}

func newRootCommand(name string, stderr io.Writer) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:                   name + " [flags] SOURCE_DIRECTORY DESTINATION_DIRECTORY",
		DisableFlagsInUseLine: true,
		Short:                 "copy new and updated files from the source directory into the destination directory",
		Long: strings.Join([]string{
			name + " mirrors the source directory into the destination directory.",
			"A file is copied when it is missing from the destination or the destination copy is older.",
			"Access and modification times are preserved.  Nothing is ever deleted.",
			"Every copy and every failure is written to the run log.",
		}, "\n"),
		Version:       GoBackupVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := checkConfig(v); errConfig != nil {
				return errConfig
			}

			var logger fs.Logger
			if v.GetBool(flagDebug) {
				simpleLogger := log.NewSimpleLogger(stderr)
				defer func() { _ = simpleLogger.Sync() }()
				logger = simpleLogger
			}

			logPath := v.GetString(flagLogPath)
			runLog, err := log.OpenRunLog(logPath)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "Could not create the %s file - %s\n", logPath, fs.Reason(err))
				return &exitError{code: exitCode(err), err: err}
			}
			defer func() { _ = runLog.Close() }()

			source := args[0]
			destination := args[1]

			exclude := []string{}
			if p := nestedDestination(source, destination); len(p) > 0 {
				exclude = append(exclude, p)
			}

			if logger != nil {
				_ = logger.Log("Configuration", map[string]interface{}{
					"src":                 source,
					"dst":                 destination,
					"exclude":             exclude,
					"log_path":            logPath,
					"threads":             v.GetInt(flagThreads),
					"buffer_size":         v.GetInt(flagBufferSize),
					"timestamp_precision": v.GetDuration(flagTimestampPrecision).String(),
				})
			}

			_, err = fs.Sync(ctx, &fs.SyncInput{
				BufferSize:            v.GetInt(flagBufferSize),
				Source:                source,
				SourceFileSystem:      lfs.NewReadOnlyLocalFileSystem(),
				Destination:           destination,
				DestinationFileSystem: lfs.NewLocalFileSystem(),
				Exclude:               exclude,
				Journal:               runLog,
				Logger:                logger,
				MaxThreads:            v.GetInt(flagThreads),
				TimestampPrecision:    v.GetDuration(flagTimestampPrecision),
			})
			if err != nil && logger != nil {
				_ = logger.Log("Error synchronizing", map[string]interface{}{
					"src": source,
					"dst": destination,
					"err": err.Error(),
				})
			}

			return nil
		},
	}
	initDebugFlags(rootCommand.Flags())
	initSyncFlags(rootCommand.Flags())
	initLogFlags(rootCommand.Flags())
	return rootCommand
}

// run executes the command line and returns the exit code for the process.
func run(name string, args []string, stdout io.Writer, stderr io.Writer) int {
	rootCommand := newRootCommand(name, stderr)
	rootCommand.SetArgs(args)
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)

	err := rootCommand.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var ee *exitError
	switch {
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprint(stderr, usage(name))
		return 1
	case errors.As(err, &ee):
		return ee.code
	}
	_, _ = fmt.Fprintln(stderr, name+": "+err.Error())
	_, _ = fmt.Fprintln(stderr, "Try \""+name+" --help\" for more information.")
	return 1
}

func main() {
	os.Exit(run(lfs.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}
