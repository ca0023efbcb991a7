package console

import (
	"fmt"

	"github.com/jroimartin/gocui"
)

// Gui console writes into a gocui view
type Gui struct {
	consoleOut chan string // string channel, to which the console data is sent to
	g          *gocui.Gui  // main gocui GUI object
	view       string      // name of the view receiving the output
}

// NewGui returns a console writing into the named view of g
func NewGui(g *gocui.Gui, view string) *Gui {
	c := &Gui{
		consoleOut: make(chan string, 16),
		g:          g,
		view:       view,
	}
	c.initGui()
	return c
}

// initGui starts the goroutine moving lines into the view. gocui only
// allows touching views from inside Update.
func (c *Gui) initGui() {
	go func() {
		for s := range c.consoleOut {
			s := s
			c.g.Update(func(g *gocui.Gui) error {
				v, err := g.View(c.view)
				if err != nil {
					return err
				}
				fmt.Fprint(v, s)
				return nil
			})
		}
	}()
}

// WriteConsole displays a string on the console
func (c *Gui) WriteConsole(msg string) error {
	for _, line := range lines(msg) {
		c.consoleOut <- line + "\n"
	}
	return nil
}
