package main

import (
	"bytes"
	"strings"
	"sync"
)

// maxLines bounds the scrollback; older lines are dropped first.
const maxLines = 5000

// console collects what a program prints. The interpreter goroutine writes to
// it while the render loop reads snapshots.
type console struct {
	mu      sync.Mutex
	lines   []string
	partial []byte
	running bool
	err     error
	dropped int
}

func (c *console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := p
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			c.partial = append(c.partial, data...)
			break
		}
		c.partial = append(c.partial, data[:i]...)
		c.lines = append(c.lines, string(c.partial))
		c.partial = c.partial[:0]
		data = data[i+1:]
	}
	if n := len(c.lines) - maxLines; n > 0 {
		c.lines = append(c.lines[:0], c.lines[n:]...)
		c.dropped += n
	}
	return len(p), nil
}

// begin clears the previous run and marks a new one as active.
func (c *console) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.partial = nil
	c.err = nil
	c.dropped = 0
	c.running = true
}

func (c *console) finish(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.partial) > 0 {
		c.lines = append(c.lines, string(c.partial))
		c.partial = nil
	}
	c.err = err
	c.running = false
}

// snapshot returns the printed lines followed by the error text, if any.
func (c *console) snapshot() (lines []string, running bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines = make([]string, 0, len(c.lines)+2)
	lines = append(lines, c.lines...)
	if c.err != nil {
		lines = append(lines, strings.Split("error: "+c.err.Error(), "\n")...)
	}
	return lines, c.running
}
