// Package log implements glsu's leveled loggers on top of the standard
// library logger. Every level discards its output until SetOutput is called
// for it, so library code can log freely without polluting the host
// application's streams.
package log

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
)

// Level selects one of the loggers.
type Level int

// The available loggers, in increasing order of severity. Perf sits apart
// from the rest and only carries timing reports.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelFatal
	LevelPerf
)

type stream struct {
	label  string
	color  string
	logger *log.Logger
}

// ANSI foreground text color codes
const (
	brightRed     = "91"
	brightGreen   = "92"
	brightYellow  = "93"
	brightMagenta = "95"
	brightWhite   = "97"
)

var streams = map[Level]*stream{
	LevelDebug: {"DBUG", brightMagenta, log.New(ioutil.Discard, "DBUG ", log.LstdFlags|log.Lshortfile)},
	LevelInfo:  {"INFO", brightWhite, log.New(ioutil.Discard, "INFO ", log.LstdFlags)},
	LevelWarn:  {"WARN", brightYellow, log.New(ioutil.Discard, "WARN ", log.LstdFlags)},
	LevelFatal: {"FATL", brightRed, log.New(ioutil.Discard, "FATL ", log.LstdFlags|log.Lshortfile|log.Lmicroseconds)},
	LevelPerf:  {"PERF", brightGreen, log.New(ioutil.Discard, "PERF ", log.LstdFlags|log.Lmicroseconds)},
}

var exit = os.Exit

// SetOutput sets the output destination for the given logger.
func SetOutput(l Level, out io.Writer) {
	if s, ok := streams[l]; ok {
		s.logger.SetOutput(out)
	}
}

// SetAllOutput points every logger at the same destination.
func SetAllOutput(out io.Writer) {
	for _, s := range streams {
		s.logger.SetOutput(out)
	}
}

// SetExitFunc replaces the function the Fatal family calls after logging.
// It returns the previous function so tests can restore it.
func SetExitFunc(f func(code int)) func(code int) {
	prev := exit
	exit = f
	return prev
}

// SetColorized toggles ANSI colors on every logger prefix.
func SetColorized(toggle bool) {
	for _, s := range streams {
		if !toggle {
			s.logger.SetPrefix(s.label + " ")
			continue
		}
		s.logger.SetPrefix(fmt.Sprintf("\033[%vm%v\033[0m ", s.color, s.label))
	}
}

func output(l Level, msg string) {
	_ = streams[l].logger.Output(3, msg)
}

// ConstErr is a string that can be declared as a constant error.
type ConstErr string

func (e ConstErr) Error() string {
	return string(e)
}
