package instruction

import (
	"m6502/address"
	"m6502/registers"
)

// AddressingMode determines how many bytes follow the opcode and how they
// turn into an operand
type AddressingMode uint8

// addressing modes
const (
	Accumulator      AddressingMode = iota // 1 byte instruction working on A
	Implied                                // 1 byte instruction
	Immediate                              // #$XX
	ZeroPage                               // $XX
	ZeroPageX                              // $XX,X
	ZeroPageY                              // $XX,Y
	Relative                               // signed branch offset
	Absolute                               // $XXXX
	AbsoluteX                              // $XXXX,X
	AbsoluteY                              // $XXXX,Y
	Indirect                               // ($XXXX)
	IndexedIndirectX                       // ($XX,X)
	IndirectIndexedY                       // ($XX),Y
)

var modeNames = [...]string{
	"accumulator", "implied", "immediate", "zero page", "zero page,X",
	"zero page,Y", "relative", "absolute", "absolute,X", "absolute,Y",
	"indirect", "(indirect,X)", "(indirect),Y",
}

func (am AddressingMode) String() string {
	if int(am) < len(modeNames) {
		return modeNames[am]
	}
	return "unknown"
}

// ExtraBytes returns the operand width in bytes following the opcode
func (am AddressingMode) ExtraBytes() address.AddressDiff {
	switch am {
	case Accumulator, Implied:
		return 0
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, Relative,
		IndexedIndirectX, IndirectIndexedY:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	}
	return 0
}

// Reader is the read side of memory needed to resolve indirect operands
type Reader interface {
	GetByte(addr address.Address) uint8
}

// Process resolves the operand bytes that follow an opcode. regs must hold
// the state at the time the opcode was fetched, so ProgramCounter is the
// address of the opcode itself. Machine state is only read.
func (am AddressingMode) Process(regs registers.Registers, mem Reader, data []uint8) Operand {
	x := uint8(regs.IndexX)
	y := uint8(regs.IndexY)

	switch am {
	case Immediate:
		return UseImmediate(byteAt(data, 0))

	case ZeroPage:
		return UseAddress(address.Address(byteAt(data, 0)))

	case ZeroPageX:
		return UseAddress(address.Address(byteAt(data, 0) + x))

	case ZeroPageY:
		return UseAddress(address.Address(byteAt(data, 0) + y))

	case Relative:
		// offset counts from the instruction following the branch
		offset := address.AddressDiff(int8(byteAt(data, 0)))
		return UseAddress(regs.ProgramCounter.Add(2 + offset))

	case Absolute:
		return UseAddress(absolute(data))

	case AbsoluteX:
		return UseAddress(absolute(data).Add(address.AddressDiff(x)))

	case AbsoluteY:
		return UseAddress(absolute(data).Add(address.AddressDiff(y)))

	case Indirect:
		// the chip never carries into the high byte of the pointer:
		// JMP ($10FF) reads $10FF and $1000
		ptr := absolute(data)
		hi := address.FromBytes(ptr.Lo()+1, ptr.Hi())
		return UseAddress(address.FromBytes(mem.GetByte(ptr), mem.GetByte(hi)))

	case IndexedIndirectX:
		return UseAddress(zeroPagePointer(mem, byteAt(data, 0)+x))

	case IndirectIndexedY:
		base := zeroPagePointer(mem, byteAt(data, 0))
		return UseAddress(base.Add(address.AddressDiff(y)))
	}

	// Accumulator, Implied
	return UseImplied()
}

// byteAt reads data[i], treating missing bytes as zero
func byteAt(data []uint8, i int) uint8 {
	if i < len(data) {
		return data[i]
	}
	return 0
}

func absolute(data []uint8) address.Address {
	return address.FromBytes(byteAt(data, 0), byteAt(data, 1))
}

// zeroPagePointer reads a little endian pointer stored in page zero; the
// high byte wraps within the page
func zeroPagePointer(mem Reader, zp uint8) address.Address {
	lo := mem.GetByte(address.Address(zp))
	hi := mem.GetByte(address.Address(zp + 1))
	return address.FromBytes(lo, hi)
}
