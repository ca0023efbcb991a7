package console

import "strings"

/*
group all status console related functions here

Both consoles take whole messages and split them into lines; empty lines
are dropped. Anything in the emulator may write to the console: the
system reports the machine dump after each run and loading errors.
*/

// Console receives human readable emulator output
type Console interface {
	WriteConsole(msg string) error
}

// lines splits a message into its non empty lines
func lines(msg string) []string {
	var out []string
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
