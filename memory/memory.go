package memory

import (
	"errors"

	"m6502/address"
)

// Size of the addressable memory: the full 16 bit address space
const Size = 1 << 16

// ErrImageTooLarge is returned when an image does not fit between its
// start address and the end of memory
var ErrImageTooLarge = errors.New("image does not fit in memory")

// Memory is the byte addressable store of the machine. Every read and
// write is total over the address space.
type Memory struct {
	bytes [Size]uint8
}

// New returns zero filled memory
func New() *Memory {
	return &Memory{}
}

// GetByte reads single byte
func (m *Memory) GetByte(addr address.Address) uint8 {
	return m.bytes[addr]
}

// SetByte writes single byte
func (m *Memory) SetByte(addr address.Address, value uint8) {
	m.bytes[addr] = value
}

// GetSlice returns a copy of length bytes starting at addr. The read
// wraps around past $FFFF.
func (m *Memory) GetSlice(addr address.Address, length address.AddressDiff) []uint8 {
	if length <= 0 {
		return []uint8{}
	}
	out := make([]uint8, length)
	for i := range out {
		out[i] = m.bytes[addr.Add(address.AddressDiff(i))]
	}
	return out
}

// SetBytes copies an image into memory at addr
func (m *Memory) SetBytes(addr address.Address, data []uint8) error {
	if int(addr)+len(data) > Size {
		return ErrImageTooLarge
	}
	copy(m.bytes[addr:], data)
	return nil
}
