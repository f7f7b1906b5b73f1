// Package log provides the program's file loggers and a debug channel with
// layout, drag and render tracing. Enable debug output with SPLITPANE_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "splitpane.log")

var globalLogFile *os.File

// Initialize opens the log file and points the loggers at it. When the file
// cannot be opened the loggers keep discarding. Debug logging is set up as
// well.
func Initialize(quiet bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		if !quiet {
			fmt.Fprintf(os.Stderr, "could not open log file: %s\n", err)
		}
		InitDebug()
		return
	}

	InfoLog = log.New(f, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)
	globalLogFile = f

	InitDebug()
}

// Close flushes the render profile into the debug log and closes all log files.
func Close() {
	if DebugEnabled {
		GetProfiler().LogStats()
	}
	CloseDebug()
	if globalLogFile != nil {
		_ = globalLogFile.Close()
		globalLogFile = nil
	}
	InfoLog = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog = log.New(io.Discard, "", 0)
}

// FileName returns the path of the main log file.
func FileName() string {
	return logFileName
}
