// Package logging provides leveled console logging with an optional log file mirror.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"fetcharr/internal/domain/consts"
)

var (
	// Level gates debug output: D(l, ...) prints when l <= Level.
	Level int

	mu      sync.Mutex
	logFile *os.File
)

// SetFile mirrors all log output into the file at path.
func SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// E prints an error message with a caller tag.
func E(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.RedError)
	writeMsg(&b, format, args)
	writeCallerTag(&b)

	emit(b.String())
}

// D prints a debug message with a caller tag when l is at or below the active level.
func D(l int, format string, args ...any) {
	if l > Level {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.YellowDebug)
	writeMsg(&b, format, args)
	writeCallerTag(&b)

	emit(b.String())
}

// I prints an info message.
func I(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.BlueInfo)
	writeMsg(&b, format, args)
	b.WriteString("\n")

	emit(b.String())
}

// S prints a success message.
func S(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.GreenSuccess)
	writeMsg(&b, format, args)
	b.WriteString("\n")

	emit(b.String())
}

func writeMsg(b *strings.Builder, format string, args []any) {
	if len(args) != 0 {
		fmt.Fprintf(b, format, args...)
	} else {
		b.WriteString(format)
	}
}

// writeCallerTag appends the function, file, and line of the logging call site.
func writeCallerTag(b *strings.Builder) {
	pc, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	b.WriteString(" [")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Function: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(funcName)
	b.WriteString(" - ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("File: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(file)
	b.WriteString(" : ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Line: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(strconv.Itoa(line))
	b.WriteString("]\n")
}

// emit expects mu to be held.
func emit(msg string) {
	fmt.Print(msg)
	if logFile != nil {
		logFile.WriteString(msg)
	}
}
