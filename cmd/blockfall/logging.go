package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	logDir      = "logs"
	logFileName = "blockfall.log"
	maxLogSize  = 10 << 20 // 10 MiB
)

// setupLogging routes the standard logger to logs/blockfall.log when debug is
// set and discards it otherwise; the terminal belongs to the renderer
// Returns the open log file, nil when logging is disabled or unavailable
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("blockfall-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	// Session prefix keeps interleaved runs separable
	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.NewString()[:8]))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(f)
	return f
}
