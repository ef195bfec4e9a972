// Package logging provides Fetcharr's leveled console and file logging.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"fetcharr/internal/domain/consts"
)

var (
	loggable bool
	logger   *log.Logger
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the log file inside targetDir.
func SetupLogging(targetDir string) error {
	logPath := filepath.Join(targetDir, consts.LogFilename)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, consts.PermsGenericFile)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", logPath, err)
	}

	logger = log.New(f, "", log.LstdFlags)
	loggable = true

	logger.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// writeLog mirrors a console message into the log file, minus ANSI codes.
func writeLog(msg string) {
	if !loggable || logger == nil {
		return
	}
	logger.Print(stripAnsiCodes(msg))
}

// stripAnsiCodes removes ANSI escape codes from a string.
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
