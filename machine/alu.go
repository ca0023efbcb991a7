package machine

import (
	"m6502/status"
)

// flag masks touched by the ALU primitives
const (
	loadMask     = status.Zero | status.Negative
	carryMask    = status.Carry
	overflowMask = status.Overflow
	addMask      = status.Carry | status.Overflow
)

// loadRegisterWithFlags stores value and recomputes Z and N from it. C and V
// are left alone.
func loadRegisterWithFlags(register *int8, s *status.Status, value int8) {
	*register = value

	s.SetWithMask(loadMask, status.New(status.Args{
		Zero:     value == 0,
		Negative: value < 0,
	}))
}

// LoadAccumulator loads A and sets Z and N
func (m *Machine) LoadAccumulator(value int8) {
	loadRegisterWithFlags(&m.Registers.Accumulator, &m.Registers.Status, value)
}

// LoadXRegister loads X and sets Z and N
func (m *Machine) LoadXRegister(value int8) {
	loadRegisterWithFlags(&m.Registers.IndexX, &m.Registers.Status, value)
}

// LoadYRegister loads Y and sets Z and N
func (m *Machine) LoadYRegister(value int8) {
	loadRegisterWithFlags(&m.Registers.IndexY, &m.Registers.Status, value)
}

// AddWithCarry adds value and the carry flag to the accumulator.
//
// The sum is computed on unsigned bytes, so the result is the byte sum
// modulo 256 whatever the signs involved. C is set when the sum does not fit
// in a byte. V is set when both operands have the same sign bit and the
// result does not. Decimal mode is not supported: the addition is always
// binary, whatever the D flag says.
func (m *Machine) AddWithCarry(value int8) {
	aBefore := uint8(m.Registers.Accumulator)
	cBefore := m.Registers.Status.CarryIn()
	v := uint8(value)

	sum := uint16(aBefore) + uint16(cBefore) + uint16(v)
	aAfter := uint8(sum)

	didCarry := sum > 0xff
	didOverflow := (aBefore^aAfter)&(v^aAfter)&0x80 != 0

	if m.Registers.Status.Contains(status.DecimalMode) {
		m.log.Printf("decimal mode is not supported, adding in binary")
	}

	m.Registers.Status.SetWithMask(addMask, status.New(status.Args{
		Carry:    didCarry,
		Overflow: didOverflow,
	}))

	m.LoadAccumulator(int8(aAfter))

	m.log.Printf("accumulator: %d", m.Registers.Accumulator)
}

// SubtractWithCarry subtracts value and the borrow (inverted carry) from
// the accumulator. In binary mode this is an addition of the one's
// complement of value.
func (m *Machine) SubtractWithCarry(value int8) {
	m.AddWithCarry(^value)
}

// DecX decrements X, wrapping 0 to -1 and -128 to 127
func (m *Machine) DecX() {
	m.LoadXRegister(decrement(m.Registers.IndexX))
}

// DecY decrements Y
func (m *Machine) DecY() {
	m.LoadYRegister(decrement(m.Registers.IndexY))
}

// IncX increments X
func (m *Machine) IncX() {
	m.LoadXRegister(increment(m.Registers.IndexX))
}

// IncY increments Y
func (m *Machine) IncY() {
	m.LoadYRegister(increment(m.Registers.IndexY))
}

func decrement(v int8) int8 {
	return int8(uint8(v) - 1)
}

func increment(v int8) int8 {
	return int8(uint8(v) + 1)
}
