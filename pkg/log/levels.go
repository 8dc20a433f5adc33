package log

import "fmt"

// Debug prints to the debug logger in the manner of fmt.Print.
func Debug(v ...interface{}) { output(LevelDebug, fmt.Sprint(v...)) }

// Debugf prints to the debug logger in the manner of fmt.Printf.
func Debugf(format string, v ...interface{}) { output(LevelDebug, fmt.Sprintf(format, v...)) }

// Info prints to the info logger in the manner of fmt.Print.
func Info(v ...interface{}) { output(LevelInfo, fmt.Sprint(v...)) }

// Infof prints to the info logger in the manner of fmt.Printf.
func Infof(format string, v ...interface{}) { output(LevelInfo, fmt.Sprintf(format, v...)) }

// Warn prints to the warning logger in the manner of fmt.Print.
func Warn(v ...interface{}) { output(LevelWarn, fmt.Sprint(v...)) }

// Warnf prints to the warning logger in the manner of fmt.Printf.
func Warnf(format string, v ...interface{}) { output(LevelWarn, fmt.Sprintf(format, v...)) }

// Perf prints to the performance logger in the manner of fmt.Print.
func Perf(v ...interface{}) { output(LevelPerf, fmt.Sprint(v...)) }

// Perff prints to the performance logger in the manner of fmt.Printf.
func Perff(format string, v ...interface{}) { output(LevelPerf, fmt.Sprintf(format, v...)) }

// Fatal prints to the fatal logger in the manner of fmt.Print, then exits
// with status 1.
func Fatal(v ...interface{}) {
	output(LevelFatal, fmt.Sprint(v...))
	exit(1)
}

// Fatalf prints to the fatal logger in the manner of fmt.Printf, then exits
// with status 1.
func Fatalf(format string, v ...interface{}) {
	output(LevelFatal, fmt.Sprintf(format, v...))
	exit(1)
}
