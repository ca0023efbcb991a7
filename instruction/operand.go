package instruction

import (
	"fmt"

	"m6502/address"
)

// OperandKind tells which field of an Operand is meaningful
type OperandKind uint8

// operand kinds:
const (
	ImpliedOperand OperandKind = iota
	ImmediateOperand
	AddressOperand
)

// Operand is what an addressing mode resolves the raw operand bytes to:
// nothing, an immediate value, or a target address.
type Operand struct {
	Kind    OperandKind
	Value   uint8
	Address address.Address
}

// UseImplied returns an empty operand
func UseImplied() Operand {
	return Operand{Kind: ImpliedOperand}
}

// UseImmediate returns an immediate value operand
func UseImmediate(v uint8) Operand {
	return Operand{Kind: ImmediateOperand, Value: v}
}

// UseAddress returns a memory address operand
func UseAddress(a address.Address) Operand {
	return Operand{Kind: AddressOperand, Address: a}
}

func (o Operand) String() string {
	switch o.Kind {
	case ImmediateOperand:
		return fmt.Sprintf("#$%02X", o.Value)
	case AddressOperand:
		return o.Address.String()
	}
	return ""
}
