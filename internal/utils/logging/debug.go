package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"fetcharr/internal/domain/consts"
)

var (
	// Level is the active debug level (0-5). D calls above it are dropped.
	Level int
	mu    sync.Mutex
)

// E prints and logs an error message, tagged with the calling location.
func E(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	pc, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	var b strings.Builder
	b.WriteString(consts.RedError)
	writef(&b, format, args)
	writeCallerTag(&b, funcName, file, line)

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
}

// W prints and logs a warning message.
func W(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.YellowWarning)
	writef(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
}

// D prints and logs a debug message when the active level is at least l.
func D(l int, format string, args ...any) {
	if l > Level {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	pc, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	var b strings.Builder
	b.WriteString(consts.YellowDebug)
	writef(&b, format, args)
	writeCallerTag(&b, funcName, file, line)

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
}

// I prints and logs an info message.
func I(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.BlueInfo)
	writef(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
}

// S prints and logs a success message.
func S(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.GreenSuccess)
	writef(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
}

// P prints and logs a plain message.
func P(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	writef(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
}

func writef(b *strings.Builder, format string, args []any) {
	if len(args) != 0 {
		fmt.Fprintf(b, format, args...)
	} else {
		b.WriteString(format)
	}
}

func writeCallerTag(b *strings.Builder, funcName, file string, line int) {
	b.WriteRune('[')
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
