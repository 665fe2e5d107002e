package main

import (
	"fmt"
	"log"
	"os"
)

// debugLog writes to a file when -debug is passed; nil (and therefore
// silent) otherwise. Library code in eda/ea never logs — only this
// entry point does, and only when asked to.
var debugLog *log.Logger

// setupDebugLog opens path for append and points debugLog at it.
func setupDebugLog(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}

	debugLog = log.New(f, "", log.LstdFlags|log.Lmicroseconds)

	return nil
}

// debugf writes a formatted line to debugLog if debug logging is
// enabled; a no-op otherwise.
func debugf(format string, args ...any) {
	if debugLog == nil {
		return
	}

	debugLog.Printf(format, args...)
}
