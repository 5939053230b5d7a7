// Package utils carries the small shared helpers: the debug logger and
// date/time flag parsing.
package utils

import "log"

var debugMode bool

// SetDebug toggles debug logging for the process; wired to --debug.
func SetDebug(enable bool) {
	debugMode = enable
}

func DebugLog(format string, v ...interface{}) {
	if debugMode {
		log.Printf("[DEBUG] "+format, v...)
	}
}
