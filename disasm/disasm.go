// Package disasm turns memory contents back into 6502 assembler text.
package disasm

import (
	"fmt"

	"m6502/address"
	"m6502/instruction"
)

// Reader is the read side of memory needed to disassemble
type Reader interface {
	GetByte(addr address.Address) uint8
}

// operand formats per addressing mode. Two byte operands are printed as one
// 16 bit value.
var formats = map[instruction.AddressingMode]string{
	instruction.Accumulator:      " A",
	instruction.Immediate:        " #$%02X",
	instruction.ZeroPage:         " $%02X",
	instruction.ZeroPageX:        " $%02X,X",
	instruction.ZeroPageY:        " $%02X,Y",
	instruction.Absolute:         " $%04X",
	instruction.AbsoluteX:        " $%04X,X",
	instruction.AbsoluteY:        " $%04X,Y",
	instruction.Indirect:         " ($%04X)",
	instruction.IndexedIndirectX: " ($%02X,X)",
	instruction.IndirectIndexedY: " ($%02X),Y",
}

// Line disassembles the instruction at a. It returns the text and the
// number of bytes the instruction occupies. Undefined opcodes come out as
// a .byte directive of size 1.
func Line(mem Reader, a address.Address) (string, address.AddressDiff) {
	opcode := mem.GetByte(a)
	entry, ok := instruction.Lookup(opcode)
	if !ok {
		return fmt.Sprintf(".byte $%02X", opcode), 1
	}

	size := 1 + entry.Mode.ExtraBytes()
	msg := entry.Instruction.String()
	lo := mem.GetByte(a.Add(1))
	hi := mem.GetByte(a.Add(2))

	switch entry.Mode {
	case instruction.Implied:
		// nothing follows
	case instruction.Accumulator:
		msg += formats[entry.Mode]
	case instruction.Relative:
		// branch target relative to the following instruction
		target := a.Add(size + address.AddressDiff(int8(lo)))
		msg += fmt.Sprintf(" $%04X", uint16(target))
	default:
		if size == 3 {
			msg += fmt.Sprintf(formats[entry.Mode], uint16(address.FromBytes(lo, hi)))
		} else {
			msg += fmt.Sprintf(formats[entry.Mode], lo)
		}
	}
	return msg, size
}

// Listing disassembles count consecutive instructions starting at a. Each
// line is prefixed with its address and raw bytes.
func Listing(mem Reader, a address.Address, count int) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, size := listingLine(mem, a)
		lines = append(lines, line)
		a = a.Add(size)
	}
	return lines
}

// Range disassembles the instructions that start within length bytes of a,
// for example a freshly loaded image
func Range(mem Reader, a address.Address, length address.AddressDiff) []string {
	var lines []string
	for done := address.AddressDiff(0); done < length; {
		line, size := listingLine(mem, a.Add(done))
		lines = append(lines, line)
		done += size
	}
	return lines
}

func listingLine(mem Reader, a address.Address) (string, address.AddressDiff) {
	text, size := Line(mem, a)

	raw := ""
	for j := address.AddressDiff(0); j < size; j++ {
		raw += fmt.Sprintf("%02X ", mem.GetByte(a.Add(j)))
	}
	return fmt.Sprintf("%v  %-9s %s", a, raw, text), size
}
