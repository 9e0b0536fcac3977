package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is a general-purpose logging interface. The test framework uses this rather than
// a concrete logger type so that output can be captured per test step, sent to a global
// debug logger, or discarded.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards all output.
func NullLogger() Logger { return nullLogger{} }

type multiLogger []Logger

func (m multiLogger) Printf(message string, args ...interface{}) {
	for _, l := range m {
		l.Printf(message, args...)
	}
}

// MultiLogger returns a Logger that forwards each message to all of the given loggers.
func MultiLogger(loggers ...Logger) Logger { return multiLogger(loggers) }

// CapturedMessage is one timestamped line of captured debug output.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the accumulated debug output of a test step.
type CapturedOutput []CapturedMessage

// CapturingLogger accumulates output in memory so it can be dumped after the fact,
// for instance only when a test step has failed.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append(CapturedOutput(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Dump writes every captured message to dest, one line each, prefixed with prefix.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
}
