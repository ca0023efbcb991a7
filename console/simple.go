package console

import (
	"io"
	"sync"
)

// Simple console writes straight to an io.Writer
type Simple struct {
	mu          sync.Mutex
	out         io.Writer
	currentLine int // number of lines written so far
}

// NewSimple returns a console writing to out
func NewSimple(out io.Writer) *Simple {
	return &Simple{out: out}
}

// WriteConsole displays a string on the console
func (c *Simple) WriteConsole(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range lines(msg) {
		if _, err := io.WriteString(c.out, line+"\n"); err != nil {
			return err
		}
		c.currentLine++
	}
	return nil
}

// Lines returns the number of lines written
func (c *Simple) Lines() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLine
}
