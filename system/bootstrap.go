package system

import (
	"m6502/address"
	"m6502/disasm"
)

/*
	Built in demonstration program -> load to memory, start executing.

	LDX #$05, DEX x5      ; X = 0, Z set
	LDA #$7F, ADC #$01    ; A = -128, V and N set
	STA $00, CLC, ADC $00 ; -128 + -128 = 0, C V Z set
	TAY, NOP, then an undefined opcode to halt
*/

const (
	// BOOTBASE is a base bootstrap address
	BOOTBASE = 0x0600
)

var bootcode = [...]uint8{
	0xa2, // LDX #
	0x05,
	0xca, // DEX
	0xca, // DEX
	0xca, // DEX
	0xca, // DEX
	0xca, // DEX
	0xa9, // LDA #
	0x7f,
	0x69, // ADC #
	0x01,
	0x85, // STA zp
	0x00,
	0x18, // CLC
	0x65, // ADC zp
	0x00,
	0xa8, // TAY
	0xea, // NOP
	0xff, // halt
}

// Boot loads the demonstration program and runs it
func (sys *System) Boot() (uint64, error) {
	if err := sys.Load(bootcode[:], BOOTBASE); err != nil {
		return 0, err
	}
	_ = sys.console.WriteConsole("Booting..\n")
	for _, line := range disasm.Range(&sys.Machine.Memory, BOOTBASE, address.AddressDiff(len(bootcode))) {
		sys.log.Print(line)
	}
	return sys.Run(), nil
}
