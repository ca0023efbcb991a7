package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"m6502/address"
	"m6502/console"
	"m6502/logger"
	"m6502/statsview"
	"m6502/system"

	"github.com/jroimartin/gocui"
	"golang.org/x/term"
)

var (
	imagePath  = flag.String("image", "", "raw binary image to load (built in demo when empty)")
	originFlag = flag.String("origin", "0x0600", "load address of the image")
	logPath    = flag.String("log", "", "log file (stdout when empty)")
	noGui      = flag.Bool("nogui", false, "run without the terminal ui")
	stats      = flag.Bool("statsview", false, "serve runtime statistics")
	statsAddr  = flag.String("statsaddr", statsview.DefaultAddress, "listen address of the statistics server")
	memvizPath = flag.String("memviz", "", "write a graphviz dump of the registers to this file")
)

func main() {
	flag.Parse()

	origin, err := strconv.ParseUint(*originFlag, 0, 16)
	if err != nil {
		log.Fatalf("bad origin %q: %v", *originFlag, err)
	}

	if *stats {
		if err := statsview.Launch(os.Stdout, *statsAddr); err != nil {
			log.Fatal(err)
		}
	}

	if *noGui || !term.IsTerminal(int(os.Stdout.Fd())) {
		l, err := logger.New(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		sys := system.InitializeSystem(console.NewSimple(os.Stdout), l)
		if err := start(sys, address.Address(origin)); err != nil {
			log.Fatal(err)
		}
		return
	}

	// the ui owns stdout, so the log must go to a file
	if *logPath == "" {
		*logPath = "6502.log"
	}
	l, err := logger.New(*logPath)
	if err != nil {
		log.Fatal(err)
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln("Couldn't create gui!")
	}
	defer g.Close()

	g.SetManagerFunc(layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	// start emulation once the views exist
	g.Update(func(g *gocui.Gui) error {
		c := console.NewGui(g, "status")
		sys := system.InitializeSystem(c, l)
		go func() {
			if err := start(sys, address.Address(origin)); err != nil {
				_ = c.WriteConsole(err.Error())
			}
			updateViews(g, sys)
		}()
		return nil
	})

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

// start loads the requested program, or the demo, and runs it to halt
func start(sys *system.System, origin address.Address) error {
	if *imagePath == "" {
		if _, err := sys.Boot(); err != nil {
			return err
		}
	} else {
		if err := sys.LoadFile(*imagePath, origin); err != nil {
			return err
		}
		sys.Run()
	}

	if *memvizPath != "" {
		f, err := os.Create(*memvizPath)
		if err != nil {
			return err
		}
		defer f.Close()
		sys.Machine.Visualise(f)
	}
	return nil
}

// update register and listing views
// has to go through Update -> gocui allows updating the view only from the main loop
func updateViews(g *gocui.Gui, sys *system.System) {
	regs := sys.Machine.Registers.String()
	trace := sys.Machine.Trace()
	g.Update(func(g *gocui.Gui) error {
		v, err := g.View("registers")
		if err != nil {
			return err
		}
		v.Clear()
		fmt.Fprintf(v, " %s  <executed: %d>", regs, sys.Executed())

		v, err = g.View("console")
		if err != nil {
			return err
		}
		v.Clear()
		for _, line := range trace {
			fmt.Fprintln(v, line)
		}
		return nil
	})
}

// gocui layout
func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// up -> trace of executed instructions
	if v, err := g.SetView("console", 0, 0, maxX-1, maxY-18); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Trace"
		v.Autoscroll = true
	}

	// middle -> register values
	if v, err := g.SetView("registers", 0, maxY-17, maxX-1, maxY-14); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}
	// down -> status
	if v, err := g.SetView("status", 0, maxY-13, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Autoscroll = true
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
