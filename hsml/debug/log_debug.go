//go:build debug

// Package debug provides logging for development and troubleshooting.
// This file contains the debug build versions with the actual logging
// implementation.
package debug

import (
	"fmt"
	"os"
	"time"
)

// DebugLog logs a debug message with component, phase, and formatted message.
// Format: [COMPONENT:phase] message
func DebugLog(component, phase, message string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05.000")
	formattedMessage := message
	if len(args) > 0 {
		formattedMessage = fmt.Sprintf(message, args...)
	}

	fmt.Fprintf(os.Stderr, "[%s] [%s:%s] %s\n",
		timestamp, component, phase, formattedMessage)
}

// DebugLogError logs error conditions during parsing or compilation.
// Format: [COMPONENT:phase] ERROR: message: error=actual_error
func DebugLogError(component, phase, message string, err error) {
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(os.Stderr, "[%s] [%s:%s] ERROR: %s: error=%v\n",
		timestamp, component, phase, message, err)
}
