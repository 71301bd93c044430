package shell

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// Terminal is the line-oriented transport between the interpreter and the
// user: a lazy sequence of input lines in one direction, printed lines in the
// other.
type Terminal struct {
	in  io.Reader
	out io.Writer

	once      sync.Once
	closeOnce sync.Once
	lines     chan string
	done      chan struct{}
}

// NewTerminal creates a terminal over the given reader and writer.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, done: make(chan struct{})}
}

// Lines returns the input line channel, starting the reader on first use.
// The channel closes when the input source is exhausted or the terminal is
// closed.
func (t *Terminal) Lines() <-chan string {
	t.once.Do(func() {
		t.lines = make(chan string)
		go func() {
			defer close(t.lines)
			scanner := bufio.NewScanner(t.in)
			for scanner.Scan() {
				select {
				case t.lines <- scanner.Text():
				case <-t.done:
					return
				}
			}
		}()
	})
	return t.lines
}

// Close releases the input reader. Lines already scanned but not yet
// consumed are discarded.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}

// Println prints one formatted output line.
func (t *Terminal) Println(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// Writer exposes the raw output for handlers that stream file content.
func (t *Terminal) Writer() io.Writer {
	return t.out
}
