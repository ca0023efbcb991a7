package instruction

// Entry is a defined opcode
type Entry struct {
	Instruction Instruction
	Mode        AddressingMode
}

// opcode table. nil entries are undefined opcodes.
var opcodes = [256]*Entry{
	0x69: {ADC, Immediate},
	0x65: {ADC, ZeroPage},
	0x75: {ADC, ZeroPageX},
	0x6d: {ADC, Absolute},
	0x7d: {ADC, AbsoluteX},
	0x79: {ADC, AbsoluteY},
	0x61: {ADC, IndexedIndirectX},
	0x71: {ADC, IndirectIndexedY},

	0x29: {AND, Immediate},
	0x25: {AND, ZeroPage},
	0x35: {AND, ZeroPageX},
	0x2d: {AND, Absolute},
	0x3d: {AND, AbsoluteX},
	0x39: {AND, AbsoluteY},
	0x21: {AND, IndexedIndirectX},
	0x31: {AND, IndirectIndexedY},

	0x0a: {ASL, Accumulator},
	0x06: {ASL, ZeroPage},
	0x16: {ASL, ZeroPageX},
	0x0e: {ASL, Absolute},
	0x1e: {ASL, AbsoluteX},

	0x90: {BCC, Relative},
	0xb0: {BCS, Relative},
	0xf0: {BEQ, Relative},
	0x30: {BMI, Relative},
	0xd0: {BNE, Relative},
	0x10: {BPL, Relative},
	0x50: {BVC, Relative},
	0x70: {BVS, Relative},

	0x24: {BIT, ZeroPage},
	0x2c: {BIT, Absolute},

	0x00: {BRK, Implied},

	0x18: {CLC, Implied},
	0xd8: {CLD, Implied},
	0x58: {CLI, Implied},
	0xb8: {CLV, Implied},

	0xc9: {CMP, Immediate},
	0xc5: {CMP, ZeroPage},
	0xd5: {CMP, ZeroPageX},
	0xcd: {CMP, Absolute},
	0xdd: {CMP, AbsoluteX},
	0xd9: {CMP, AbsoluteY},
	0xc1: {CMP, IndexedIndirectX},
	0xd1: {CMP, IndirectIndexedY},

	0xe0: {CPX, Immediate},
	0xe4: {CPX, ZeroPage},
	0xec: {CPX, Absolute},

	0xc0: {CPY, Immediate},
	0xc4: {CPY, ZeroPage},
	0xcc: {CPY, Absolute},

	0xc6: {DEC, ZeroPage},
	0xd6: {DEC, ZeroPageX},
	0xce: {DEC, Absolute},
	0xde: {DEC, AbsoluteX},

	0xca: {DEX, Implied},
	0x88: {DEY, Implied},

	0x49: {EOR, Immediate},
	0x45: {EOR, ZeroPage},
	0x55: {EOR, ZeroPageX},
	0x4d: {EOR, Absolute},
	0x5d: {EOR, AbsoluteX},
	0x59: {EOR, AbsoluteY},
	0x41: {EOR, IndexedIndirectX},
	0x51: {EOR, IndirectIndexedY},

	0xe6: {INC, ZeroPage},
	0xf6: {INC, ZeroPageX},
	0xee: {INC, Absolute},
	0xfe: {INC, AbsoluteX},

	0xe8: {INX, Implied},
	0xc8: {INY, Implied},

	0x4c: {JMP, Absolute},
	0x6c: {JMP, Indirect},

	0x20: {JSR, Absolute},

	0xa9: {LDA, Immediate},
	0xa5: {LDA, ZeroPage},
	0xb5: {LDA, ZeroPageX},
	0xad: {LDA, Absolute},
	0xbd: {LDA, AbsoluteX},
	0xb9: {LDA, AbsoluteY},
	0xa1: {LDA, IndexedIndirectX},
	0xb1: {LDA, IndirectIndexedY},

	0xa2: {LDX, Immediate},
	0xa6: {LDX, ZeroPage},
	0xb6: {LDX, ZeroPageY},
	0xae: {LDX, Absolute},
	0xbe: {LDX, AbsoluteY},

	0xa0: {LDY, Immediate},
	0xa4: {LDY, ZeroPage},
	0xb4: {LDY, ZeroPageX},
	0xac: {LDY, Absolute},
	0xbc: {LDY, AbsoluteX},

	0x4a: {LSR, Accumulator},
	0x46: {LSR, ZeroPage},
	0x56: {LSR, ZeroPageX},
	0x4e: {LSR, Absolute},
	0x5e: {LSR, AbsoluteX},

	0xea: {NOP, Implied},

	0x09: {ORA, Immediate},
	0x05: {ORA, ZeroPage},
	0x15: {ORA, ZeroPageX},
	0x0d: {ORA, Absolute},
	0x1d: {ORA, AbsoluteX},
	0x19: {ORA, AbsoluteY},
	0x01: {ORA, IndexedIndirectX},
	0x11: {ORA, IndirectIndexedY},

	0x48: {PHA, Implied},
	0x08: {PHP, Implied},
	0x68: {PLA, Implied},
	0x28: {PLP, Implied},

	0x2a: {ROL, Accumulator},
	0x26: {ROL, ZeroPage},
	0x36: {ROL, ZeroPageX},
	0x2e: {ROL, Absolute},
	0x3e: {ROL, AbsoluteX},

	0x6a: {ROR, Accumulator},
	0x66: {ROR, ZeroPage},
	0x76: {ROR, ZeroPageX},
	0x6e: {ROR, Absolute},
	0x7e: {ROR, AbsoluteX},

	0x40: {RTI, Implied},
	0x60: {RTS, Implied},

	0xe9: {SBC, Immediate},
	0xe5: {SBC, ZeroPage},
	0xf5: {SBC, ZeroPageX},
	0xed: {SBC, Absolute},
	0xfd: {SBC, AbsoluteX},
	0xf9: {SBC, AbsoluteY},
	0xe1: {SBC, IndexedIndirectX},
	0xf1: {SBC, IndirectIndexedY},

	0x38: {SEC, Implied},
	0xf8: {SED, Implied},
	0x78: {SEI, Implied},

	0x85: {STA, ZeroPage},
	0x95: {STA, ZeroPageX},
	0x8d: {STA, Absolute},
	0x9d: {STA, AbsoluteX},
	0x99: {STA, AbsoluteY},
	0x81: {STA, IndexedIndirectX},
	0x91: {STA, IndirectIndexedY},

	0x86: {STX, ZeroPage},
	0x96: {STX, ZeroPageY},
	0x8e: {STX, Absolute},

	0x84: {STY, ZeroPage},
	0x94: {STY, ZeroPageX},
	0x8c: {STY, Absolute},

	0xaa: {TAX, Implied},
	0xa8: {TAY, Implied},
	0xba: {TSX, Implied},
	0x8a: {TXA, Implied},
	0x9a: {TXS, Implied},
	0x98: {TYA, Implied},
}

// Lookup returns the table entry for opcode. ok is false for undefined
// opcodes.
func Lookup(opcode uint8) (entry Entry, ok bool) {
	if e := opcodes[opcode]; e != nil {
		return *e, true
	}
	return Entry{}, false
}
