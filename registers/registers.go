package registers

import (
	"fmt"

	"m6502/address"
	"m6502/status"
)

// Registers of the processor. The 8 bit registers hold signed
// values; flag computation relies on the two's complement view.
type Registers struct {
	Accumulator    int8
	IndexX         int8
	IndexY         int8
	ProgramCounter address.Address
	Status         status.Status
}

// New returns registers with everything cleared
func New() Registers {
	return Registers{}
}

// String returns register values in a single line
func (r Registers) String() string {
	return fmt.Sprintf("A %02X X %02X Y %02X PC %v P %s",
		uint8(r.Accumulator), uint8(r.IndexX), uint8(r.IndexY),
		r.ProgramCounter, r.Status.Flags())
}
