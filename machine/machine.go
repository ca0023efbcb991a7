// Package machine is the execution core: it fetches and decodes opcodes from
// memory, dispatches them to their effect on registers and memory, and runs
// until the program counter lands on an undefined opcode.
package machine

import (
	"fmt"
	"io"
	"log"

	"m6502/address"
	"m6502/instruction"
	"m6502/memory"
	"m6502/registers"
)

// DefaultTraceDepth is the number of trace lines kept when no other depth
// is requested
const DefaultTraceDepth = 64

// Machine owns the registers and the memory of one emulated processor.
// It is driven by a single goroutine and must not be shared.
type Machine struct {
	Registers registers.Registers
	Memory    memory.Memory

	log   *log.Logger
	trace *TraceQueue

	// kept so Reset can build an identically configured machine
	opts []Option
}

// Option configures a new machine
type Option func(*Machine)

// WithLogger sends diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithTraceDepth sets how many trace lines are kept
func WithTraceDepth(n int) Option {
	return func(m *Machine) {
		m.trace = NewTraceQueue(n)
	}
}

// New returns a machine with zeroed registers and zero filled memory
func New(opts ...Option) *Machine {
	m := &Machine{
		log:   log.New(io.Discard, "", 0),
		trace: NewTraceQueue(DefaultTraceDepth),
		opts:  opts,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reset replaces the whole machine state with a fresh instance
func (m *Machine) Reset() {
	*m = *New(m.opts...)
}

// FetchNextAndDecode reads the opcode at the program counter, resolves its
// operand and moves the program counter past both. It returns false, leaving
// the machine untouched, when the byte is not a defined opcode.
func (m *Machine) FetchNextAndDecode() (instruction.Decoded, bool) {
	pc := m.Registers.ProgramCounter
	opcode := m.Memory.GetByte(pc)

	entry, ok := instruction.Lookup(opcode)
	if !ok {
		m.log.Printf("halt: undefined opcode $%02X at %v", opcode, pc)
		return instruction.Decoded{}, false
	}

	extraBytes := entry.Mode.ExtraBytes()
	numBytes := 1 + extraBytes

	slice := m.Memory.GetSlice(pc.Add(1), extraBytes)
	operand := entry.Mode.Process(m.Registers, &m.Memory, slice)

	m.Registers.ProgramCounter = pc.Add(numBytes)

	return instruction.Decoded{Instruction: entry.Instruction, Operand: operand}, true
}

// ExecuteInstruction applies a decoded instruction to the machine. Pairs of
// instruction and operand without semantics are traced and otherwise ignored.
func (m *Machine) ExecuteInstruction(d instruction.Decoded) {
	m.trace.Enqueue(d.String())

	switch d.Instruction {
	case instruction.ADC:
		if v, ok := m.operandValue(d.Operand); ok {
			m.log.Printf("add with carry: %v value: %d", d.Operand, v)
			m.AddWithCarry(v)
			return
		}

	case instruction.SBC:
		if v, ok := m.operandValue(d.Operand); ok {
			m.log.Printf("subtract with carry: %v value: %d", d.Operand, v)
			m.SubtractWithCarry(v)
			return
		}

	case instruction.LDA:
		if v, ok := m.operandValue(d.Operand); ok {
			m.log.Printf("load A: %v value: %d", d.Operand, v)
			m.LoadAccumulator(v)
			return
		}

	case instruction.LDX:
		if v, ok := m.operandValue(d.Operand); ok {
			m.log.Printf("load X: %v value: %d", d.Operand, v)
			m.LoadXRegister(v)
			return
		}

	case instruction.LDY:
		if v, ok := m.operandValue(d.Operand); ok {
			m.log.Printf("load Y: %v value: %d", d.Operand, v)
			m.LoadYRegister(v)
			return
		}

	case instruction.STA:
		if d.Operand.Kind == instruction.AddressOperand {
			m.store(d.Operand.Address, m.Registers.Accumulator)
			return
		}

	case instruction.STX:
		if d.Operand.Kind == instruction.AddressOperand {
			m.store(d.Operand.Address, m.Registers.IndexX)
			return
		}

	case instruction.STY:
		if d.Operand.Kind == instruction.AddressOperand {
			m.store(d.Operand.Address, m.Registers.IndexY)
			return
		}

	case instruction.DEX, instruction.DEY, instruction.INX, instruction.INY,
		instruction.TAX, instruction.TAY, instruction.TXA, instruction.TYA,
		instruction.CLC, instruction.SEC, instruction.CLV:
		if d.Operand.Kind == instruction.ImpliedOperand {
			m.executeImplied(d.Instruction)
			return
		}

	case instruction.NOP:
		m.log.Printf("nop instr")
		return
	}

	m.log.Printf("attempting to execute unimplemented instruction: %v", d)
	m.trace.Enqueue("unimplemented: " + d.String())
}

// register only instructions without an operand
func (m *Machine) executeImplied(instr instruction.Instruction) {
	r := &m.Registers
	switch instr {
	case instruction.DEX:
		m.DecX()
	case instruction.DEY:
		m.DecY()
	case instruction.INX:
		m.IncX()
	case instruction.INY:
		m.IncY()
	case instruction.TAX:
		m.LoadXRegister(r.Accumulator)
	case instruction.TAY:
		m.LoadYRegister(r.Accumulator)
	case instruction.TXA:
		m.LoadAccumulator(r.IndexX)
	case instruction.TYA:
		m.LoadAccumulator(r.IndexY)
	case instruction.CLC:
		r.Status.SetWithMask(carryMask, 0)
	case instruction.SEC:
		r.Status.SetWithMask(carryMask, carryMask)
	case instruction.CLV:
		r.Status.SetWithMask(overflowMask, 0)
	}
}

// operandValue returns the signed value an Immediate or Address operand
// refers to
func (m *Machine) operandValue(op instruction.Operand) (int8, bool) {
	switch op.Kind {
	case instruction.ImmediateOperand:
		return int8(op.Value), true
	case instruction.AddressOperand:
		return int8(m.Memory.GetByte(op.Address)), true
	}
	return 0, false
}

func (m *Machine) store(addr address.Address, value int8) {
	m.log.Printf("store %d at %v", value, addr)
	m.Memory.SetByte(addr, uint8(value))
}

// Run fetches and executes instructions until an undefined opcode is
// reached. It returns the number of instructions executed.
func (m *Machine) Run() uint64 {
	var executed uint64
	for {
		decoded, ok := m.FetchNextAndDecode()
		if !ok {
			return executed
		}
		m.ExecuteInstruction(decoded)
		executed++
	}
}

// Trace returns the most recent trace lines, oldest first
func (m *Machine) Trace() []string {
	return m.trace.Items()
}

func (m *Machine) String() string {
	return fmt.Sprintf("Machine Dump:\n\nAccumulator: %d\n%v",
		m.Registers.Accumulator, m.Registers)
}
