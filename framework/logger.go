package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the interface for the runner's debug output. *log.Logger satisfies it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the debug log of a run, oldest first.
type CapturedOutput []CapturedMessage

// CapturingLogger is a Logger that holds the runner's debug lines in memory, so that they can
// be shown only if the run did not pass.
type CapturingLogger struct {
	mu     sync.Mutex
	output CapturedOutput
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	entry := CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = append(l.output, entry)
}

// Output returns a copy of everything logged so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append(CapturedOutput(nil), l.output...)
}

// Messages returns the captured messages without their timestamps.
func (output CapturedOutput) Messages() []string {
	ret := make([]string, 0, len(output))
	for _, m := range output {
		ret = append(ret, m.Message)
	}
	return ret
}

// Dump writes one line per message, each starting with prefix and the message's timestamp.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n", prefix, m.Time.Format(timestampFormat), m.Message)
	}
}
