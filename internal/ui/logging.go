package ui

import (
	"io"
	"time"

	"github.com/pterm/pterm"
)

const timestampLayout = time.RFC3339

var timestamps = false

// SetDebugEnabled toggles the output of Debug lines.
func SetDebugEnabled(enabled bool) {
	pterm.PrintDebugMessages = enabled
}

// SetTimestamps prefixes every log line with the current time when enabled.
func SetTimestamps(enabled bool) {
	timestamps = enabled
}

// SetOutput redirects all output, e.g. to a log file.
func SetOutput(w io.Writer) {
	pterm.SetDefaultOutput(w)
}

func stamp(format string) string {
	if !timestamps {
		return format
	}
	return time.Now().Format(timestampLayout) + " " + format
}

func Printf(format string, a ...interface{}) {
	pterm.Printf(format, a...)
}

func Printfln(format string, a ...interface{}) {
	pterm.Printfln(format, a...)
}

func Debug(format string, a ...interface{}) {
	pterm.Debug.Printfln(stamp(format), a...)
}

func Info(format string, a ...interface{}) {
	pterm.Info.Printfln(stamp(format), a...)
}

func Success(format string, a ...interface{}) {
	pterm.Success.Printfln(stamp(format), a...)
}

func Warning(format string, a ...interface{}) {
	pterm.Warning.Printfln(stamp(format), a...)
}

func Error(format string, a ...interface{}) {
	pterm.Error.Printfln(stamp(format), a...)
}

func ErrorAndNotify(title string, format string, a ...interface{}) {
	Error(format, a...)
	NotifyError(title, pterm.Sprintf(format, a...))
}

func Fatal(format string, a ...interface{}) {
	pterm.Fatal.Printfln(stamp(format), a...)
}
