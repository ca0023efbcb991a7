// Package statsview serves runtime statistics of the emulator process over
// HTTP, for watching long running programs. Graphs are drawn by
// "github.com/go-echarts/statsview"; the pprof pages are served next to them
// under /debug/pprof/.
package statsview

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is used when no listen address is configured
const DefaultAddress = "localhost:12600"

const graphPath = "/debug/statsview"

// ErrNoAddress is returned by Launch for an empty listen address
var ErrNoAddress = errors.New("statsview: no listen address")

// serve blocks while the stats server listens on addr
var serve = func(addr string) {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	statsview.New().Start()
}

// URL of the graph page of a server listening on addr
func URL(addr string) string {
	return "http://" + addr + graphPath
}

// Launch starts the stats server on addr in its own goroutine and reports
// where the graphs are on output.
func Launch(output io.Writer, addr string) error {
	if addr == "" {
		return ErrNoAddress
	}
	go serve(addr)

	_, err := fmt.Fprintf(output, "stats server available at %s\n", URL(addr))
	return err
}
