package status

/**
Processor status register package
*/

// Status keeps the processor status register. Bits are laid
// out the way the chip pushes them on the stack.
type Status uint8

// status bits
const (
	Carry Status = 1 << iota
	Zero
	InterruptDisable
	DecimalMode
	Break
	Unused
	Overflow
	Negative
)

// None is the empty status
const None Status = 0

// Args names every flag. Zero value means all clear.
type Args struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	DecimalMode      bool
	Break            bool
	Unused           bool
	Overflow         bool
	Negative         bool
}

// New builds a status value out of named flags
func New(args Args) Status {
	var s Status
	s.set(Carry, args.Carry)
	s.set(Zero, args.Zero)
	s.set(InterruptDisable, args.InterruptDisable)
	s.set(DecimalMode, args.DecimalMode)
	s.set(Break, args.Break)
	s.set(Unused, args.Unused)
	s.set(Overflow, args.Overflow)
	s.set(Negative, args.Negative)
	return s
}

// SetWithMask replaces the bits selected by mask with the
// corresponding bits of value. All other bits are preserved.
func (s *Status) SetWithMask(mask, value Status) {
	*s = (*s &^ mask) | (value & mask)
}

// Contains reports whether every bit in flag is set
func (s Status) Contains(flag Status) bool {
	return s&flag == flag
}

// Insert sets flag
func (s *Status) Insert(flag Status) {
	*s |= flag
}

// Remove clears flag
func (s *Status) Remove(flag Status) {
	*s &^= flag
}

// CarryIn returns the carry flag as the 0 or 1 fed into an addition
func (s Status) CarryIn() uint8 {
	if s.Contains(Carry) {
		return 1
	}
	return 0
}

// generic set flag function
func (s *Status) set(flag Status, on bool) {
	if on {
		s.Insert(flag)
	} else {
		s.Remove(flag)
	}
}

// Flags returns set flags, most significant first
func (s Status) Flags() string {
	const letters = "NVUBDIZC"
	flags := make([]byte, 0, len(letters)+2)
	flags = append(flags, '[')
	for i := 0; i < len(letters); i++ {
		if s&(Negative>>uint(i)) != 0 {
			flags = append(flags, letters[i])
		} else {
			flags = append(flags, ' ')
		}
	}
	return string(append(flags, ']'))
}
