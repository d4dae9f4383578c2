package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

const (
	maxAge       = 7 * 24 * time.Hour
	rotationTime = 24 * time.Hour
)

// Options controls where and how much the game logs.
type Options struct {
	Level string
	Dir   string    // rotating files under Dir when set
	Out   io.Writer // used when Dir is empty; nil discards
}

// Formatter prints one compact line per entry: time, level, caller, message
// and sorted fields.
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(entry.Time.Format(time.DateTime))
	fmt.Fprintf(&b, " [%s]", strings.ToLower(entry.Level.String()))

	if entry.HasCaller() {
		file := entry.Caller.File[strings.LastIndex(entry.Caller.File, "/")+1:]
		fn := entry.Caller.Function[strings.LastIndex(entry.Caller.Function, ".")+1:]
		fmt.Fprintf(&b, " %s:%d %s", file, entry.Caller.Line, fn)
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// New builds the process logger. The returned close func releases the file
// sink, if any.
func New(opts Options) (*logrus.Logger, func() error, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}

	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)

	closer := func() error { return nil }
	switch {
	case opts.Dir != "":
		writer, err := newRotatingWriter(opts.Dir)
		if err != nil {
			return nil, nil, err
		}
		l.SetOutput(writer)
		closer = writer.Close
	case opts.Out != nil:
		l.SetOutput(opts.Out)
	default:
		l.SetOutput(io.Discard)
	}
	return l, closer, nil
}

func newRotatingWriter(dir string) (*rotatelogs.RotateLogs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	programName := filepath.Base(os.Args[0])
	pattern := filepath.Join(dir, programName+"-%Y%m%d.log")

	writer, err := rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
	)
	if err != nil {
		return nil, fmt.Errorf("create log writer: %w", err)
	}
	return writer, nil
}
