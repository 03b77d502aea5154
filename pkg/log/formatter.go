package log

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

// Names of the supported log formats.
const (
	PrettyFormat   = "pretty"
	KeyValueFormat = "key-value"
	JSONFormat     = "json"

	defaultPrettyTimestampFormat = "15:04:05.000"
)

// AllFormats lists the supported log formats.
var AllFormats = []string{PrettyFormat, KeyValueFormat, JSONFormat}

var (
	levelColorFuncs = map[Level]func(string) string{
		ErrorLevel: ansi.ColorFunc("red"),
		WarnLevel:  ansi.ColorFunc("yellow"),
		InfoLevel:  ansi.ColorFunc("green"),
		DebugLevel: ansi.ColorFunc("blue+h"),
		TraceLevel: ansi.ColorFunc("white"),
	}
	timestampColorFunc = ansi.ColorFunc("black+h")
	prefixColorFunc    = ansi.ColorFunc("cyan")
)

// NewFormatter returns the formatter registered under the given name. Colors are only used by the
// pretty format and only when out is a terminal and colors are not disabled.
func NewFormatter(format string, out io.Writer, disableColors bool) (logrus.Formatter, error) {
	switch format {
	case PrettyFormat:
		return &PrettyFormatter{DisableColors: disableColors || !IsTerminal(out)}, nil
	case KeyValueFormat:
		return &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		}, nil
	case JSONFormat:
		return &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano}, nil
	}

	return nil, errors.Errorf("invalid log format %q, supported formats: %s", format, strings.Join(AllFormats, ", "))
}

// IsTerminal returns true if out is a file descriptor attached to a terminal.
func IsTerminal(out io.Writer) bool {
	file, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// PrettyFormatter renders `time level [prefix] message key=value ...` lines for humans.
type PrettyFormatter struct {
	// TimestampFormat defaults to a time of day with milliseconds.
	TimestampFormat string

	DisableColors    bool
	DisableTimestamp bool
}

// Format implements logrus.Formatter.
func (formatter *PrettyFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	level := FromLogrusLevel(entry.Level)
	levelName := strings.ToUpper(level.ShortName())

	if !formatter.DisableTimestamp {
		timestampFormat := formatter.TimestampFormat
		if timestampFormat == "" {
			timestampFormat = defaultPrettyTimestampFormat
		}

		buf.WriteString(formatter.color(timestampColorFunc, entry.Time.Format(timestampFormat)))
		buf.WriteByte(' ')
	}

	buf.WriteString(formatter.color(levelColorFuncs[level], levelName))
	buf.WriteByte(' ')

	if prefix, ok := entry.Data[FieldKeyPrefix]; ok {
		buf.WriteString(formatter.color(prefixColorFunc, fmt.Sprintf("[%v]", prefix)))
		buf.WriteByte(' ')
	}

	buf.WriteString(entry.Message)

	fields := Fields(entry.Data)
	for _, key := range fields.Keys(FieldKeyPrefix) {
		fmt.Fprintf(buf, " %s=%v", key, fields[key])
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func (formatter *PrettyFormatter) color(colorFunc func(string) string, str string) string {
	if formatter.DisableColors || colorFunc == nil {
		return str
	}

	return colorFunc(str)
}
