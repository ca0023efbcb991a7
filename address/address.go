package address

import "fmt"

// Address is a location in the 16 bit address space
type Address uint16

// AddressDiff is a signed byte count between two addresses
type AddressDiff int

// FromBytes builds an address from its little endian byte pair
func FromBytes(lo, hi uint8) Address {
	return Address(uint16(hi)<<8 | uint16(lo))
}

// Add returns a + d, wrapping around the top of the address space
func (a Address) Add(d AddressDiff) Address {
	return Address(uint16(int(a) + int(d)))
}

// Lo returns the low byte
func (a Address) Lo() uint8 {
	return uint8(a)
}

// Hi returns the high byte
func (a Address) Hi() uint8 {
	return uint8(a >> 8)
}

// Page returns the 256 byte page the address lives in
func (a Address) Page() uint8 {
	return a.Hi()
}

func (a Address) String() string {
	return fmt.Sprintf("$%04X", uint16(a))
}
