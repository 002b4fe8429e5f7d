// Package eventlog provides the sinks behind the tracker's event channel:
// a writer sink for the interactive shell, a zap sink for the server, and a
// capturing sink for tests.
package eventlog

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"consumption/internal/clock"
	"consumption/internal/domain"
)

// Ensure interfaces are met.
var (
	_ domain.EventLogger = (*WriterSink)(nil)
	_ domain.EventLogger = (*ZapSink)(nil)
	_ domain.EventLogger = (*Capture)(nil)
)

// WriterSink writes "[<timestamp>] <message>" lines to an output writer.
type WriterSink struct {
	mu    sync.Mutex
	out   io.Writer
	clock clock.Service
}

// NewWriterSink creates a WriterSink stamping messages with the given clock.
func NewWriterSink(out io.Writer, clk clock.Service) *WriterSink {
	return &WriterSink{out: out, clock: clk}
}

// Log writes a single timestamped line.
func (s *WriterSink) Log(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "[%s] %s\n", s.clock.Now().Format(time.RFC3339), message)
}

// ZapSink forwards tracker events to a zap logger at info level.
type ZapSink struct {
	log *zap.SugaredLogger
}

// NewZapSink creates a ZapSink.
func NewZapSink(log *zap.SugaredLogger) *ZapSink {
	return &ZapSink{log: log}
}

// Log records the event message; zap supplies the timestamp.
func (s *ZapSink) Log(message string) {
	s.log.Infow(message, "channel", "tracker")
}

// Capture retains messages in memory for test assertions.
type Capture struct {
	mu       sync.Mutex
	messages []string
}

// NewCapture creates an empty capturing sink.
func NewCapture() *Capture {
	return &Capture{}
}

// Log appends the message.
func (c *Capture) Log(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
}

// Messages returns a copy of everything logged so far.
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

// Reset discards all captured messages.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}
