package logger

import (
	"log"
	"os"
)

// New returns the emulator logger. An empty path logs to stdout, anything
// else is opened for appending.
func New(path string) (*log.Logger, error) {
	if len(path) == 0 {
		return log.New(os.Stdout, "6502 ", log.Ldate|log.Ltime|log.Lshortfile), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, err
	}
	l := log.New(f, "6502 ", log.Ldate|log.Ltime|log.Lshortfile)
	l.Printf("Initializing %s", path)
	return l, nil
}
