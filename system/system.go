package system

import (
	"fmt"
	"log"
	"os"

	"m6502/address"
	"m6502/console"
	"m6502/disasm"
	"m6502/machine"
)

// System definition: one machine and the outside world it reports to.
type System struct {
	Machine *machine.Machine

	console console.Console
	log     *log.Logger

	// instruction count of the last run
	executed uint64
}

// InitializeSystem initializes the emulated 6502 and its console
func InitializeSystem(c console.Console, log *log.Logger) *System {
	sys := new(System)
	sys.console = c
	sys.log = log
	sys.Machine = machine.New(machine.WithLogger(log))
	_ = sys.console.WriteConsole("Initializing 6502 CPU.\n")
	return sys
}

// Load copies image into memory at origin and points the program counter
// at its first byte
func (sys *System) Load(image []uint8, origin address.Address) error {
	if err := sys.Machine.Memory.SetBytes(origin, image); err != nil {
		return fmt.Errorf("loading %d bytes at %v: %w", len(image), origin, err)
	}
	sys.Machine.Registers.ProgramCounter = origin
	sys.log.Printf("loaded %d bytes at %v", len(image), origin)
	return nil
}

// LoadFile loads a raw binary image from disk
func (sys *System) LoadFile(path string, origin address.Address) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	return sys.Load(image, origin)
}

// Run the machine until it halts and report its state
func (sys *System) Run() uint64 {
	sys.log.Printf("running from %v", sys.Machine.Registers.ProgramCounter)
	sys.executed = sys.Machine.Run()

	_ = sys.console.WriteConsole(sys.Machine.String())
	_ = sys.console.WriteConsole(fmt.Sprintf("halted at %v after %d instructions",
		sys.Machine.Registers.ProgramCounter, sys.executed))
	return sys.executed
}

// Executed returns the instruction count of the last run
func (sys *System) Executed() uint64 {
	return sys.executed
}

// Listing disassembles count instructions from the program counter
func (sys *System) Listing(count int) []string {
	return disasm.Listing(&sys.Machine.Memory, sys.Machine.Registers.ProgramCounter, count)
}

// Reset the machine to its power on state
func (sys *System) Reset() {
	sys.Machine.Reset()
	sys.executed = 0
	_ = sys.console.WriteConsole("Reset.\n")
}
