// Package instruction holds the static side of the 6502 instruction set:
// instruction tags, addressing modes, resolved operands and the opcode
// table mapping each opcode byte to an (instruction, addressing mode)
// pair.
package instruction

import "fmt"

// Instruction tags every documented 6502 mnemonic
type Instruction uint8

// instruction set
const (
	ADC Instruction = iota // add with carry
	AND                    // and (with accumulator)
	ASL                    // arithmetic shift left
	BCC                    // branch on carry clear
	BCS                    // branch on carry set
	BEQ                    // branch on equal (zero set)
	BIT                    // bit test
	BMI                    // branch on minus (negative set)
	BNE                    // branch on not equal (zero clear)
	BPL                    // branch on plus (negative clear)
	BRK                    // break / interrupt
	BVC                    // branch on overflow clear
	BVS                    // branch on overflow set
	CLC                    // clear carry
	CLD                    // clear decimal
	CLI                    // clear interrupt disable
	CLV                    // clear overflow
	CMP                    // compare (with accumulator)
	CPX                    // compare with X
	CPY                    // compare with Y
	DEC                    // decrement
	DEX                    // decrement X
	DEY                    // decrement Y
	EOR                    // exclusive or (with accumulator)
	INC                    // increment
	INX                    // increment X
	INY                    // increment Y
	JMP                    // jump
	JSR                    // jump subroutine
	LDA                    // load accumulator
	LDX                    // load X
	LDY                    // load Y
	LSR                    // logical shift right
	NOP                    // no operation
	ORA                    // or with accumulator
	PHA                    // push accumulator
	PHP                    // push processor status
	PLA                    // pull accumulator
	PLP                    // pull processor status
	ROL                    // rotate left
	ROR                    // rotate right
	RTI                    // return from interrupt
	RTS                    // return from subroutine
	SBC                    // subtract with carry
	SEC                    // set carry
	SED                    // set decimal
	SEI                    // set interrupt disable
	STA                    // store accumulator
	STX                    // store X
	STY                    // store Y
	TAX                    // transfer accumulator to X
	TAY                    // transfer accumulator to Y
	TSX                    // transfer stack pointer to X
	TXA                    // transfer X to accumulator
	TXS                    // transfer X to stack pointer
	TYA                    // transfer Y to accumulator
)

var mnemonics = [...]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI",
	"CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR",
	"INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA",
	"STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (i Instruction) String() string {
	if int(i) < len(mnemonics) {
		return mnemonics[i]
	}
	return fmt.Sprintf("???(%d)", uint8(i))
}

// Decoded pairs an instruction with its resolved operand. It lives for
// a single fetch / execute cycle.
type Decoded struct {
	Instruction Instruction
	Operand     Operand
}

func (d Decoded) String() string {
	if d.Operand.Kind == ImpliedOperand {
		return d.Instruction.String()
	}
	return d.Instruction.String() + " " + d.Operand.String()
}
