package machine

import (
	"testing"

	"m6502/status"
)

// flags is a struct used to assert cpu flags settings
type flags struct {
	c bool
	v bool
	z bool
	n bool
}

func flagsOf(m *Machine) flags {
	s := m.Registers.Status
	return flags{
		c: s.Contains(status.Carry),
		v: s.Contains(status.Overflow),
		z: s.Contains(status.Zero),
		n: s.Contains(status.Negative),
	}
}

func TestMachine_AddWithCarry(t *testing.T) {
	type step struct {
		name       string
		clearCarry bool
		value      int8
		wantA      int8
		wantFlags  flags
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"one minus one", []step{
			{"1", false, 1, 1, flags{}},
			{"-1 wraps to zero", false, -1, 0, flags{c: true, z: true}},
			{"1 plus carry in", false, 1, 2, flags{}},
		}},
		{"127 minus 127", []step{
			{"127", false, 127, 127, flags{}},
			{"-127", false, -127, 0, flags{c: true, z: true}},
			{"-128 without carry", true, -128, -128, flags{n: true}},
			{"127 to -1", false, 127, -1, flags{n: true}},
		}},
		{"signed overflow", []step{
			{"127", false, 127, 127, flags{}},
			{"1 overflows", false, 1, -128, flags{v: true, n: true}},
		}},
		{"negative overflow", []step{
			{"-128", false, -128, -128, flags{n: true}},
			{"-1 overflows and carries", false, -1, 127, flags{c: true, v: true}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			for _, s := range tt.steps {
				if s.clearCarry {
					m.Registers.Status.Remove(status.Carry)
				}
				m.AddWithCarry(s.value)
				if m.Registers.Accumulator != s.wantA {
					t.Errorf("%s: accumulator = %d, want %d", s.name, m.Registers.Accumulator, s.wantA)
				}
				if got := flagsOf(m); got != s.wantFlags {
					t.Errorf("%s: flags = %+v, want %+v", s.name, got, s.wantFlags)
				}
			}
		})
	}
}

// Every accumulator, carry and operand combination is checked against the
// unsigned definition of the sum and the sign definition of overflow.
func TestAddWithCarry_Exhaustive(t *testing.T) {
	m := New()
	for a := -128; a <= 127; a++ {
		for c := 0; c <= 1; c++ {
			for v := -128; v <= 127; v++ {
				m.Registers.Accumulator = int8(a)
				m.Registers.Status = 0
				if c == 1 {
					m.Registers.Status.Insert(status.Carry)
				}

				m.AddWithCarry(int8(v))

				sum := int(uint8(int8(a))) + c + int(uint8(int8(v)))
				got := m.Registers.Accumulator

				if uint8(got) != uint8(sum%256) {
					t.Fatalf("a=%d c=%d v=%d: result %d, want byte %d", a, c, v, got, sum%256)
				}
				if wantC := sum > 255; m.Registers.Status.Contains(status.Carry) != wantC {
					t.Fatalf("a=%d c=%d v=%d: carry = %v, want %v", a, c, v, !wantC, wantC)
				}
				sameSign := (a < 0) == (v < 0)
				wantV := sameSign && (got < 0) != (a < 0)
				if m.Registers.Status.Contains(status.Overflow) != wantV {
					t.Fatalf("a=%d c=%d v=%d: overflow = %v, want %v", a, c, v, !wantV, wantV)
				}
				if m.Registers.Status.Contains(status.Zero) != (got == 0) {
					t.Fatalf("a=%d c=%d v=%d: zero flag does not match result %d", a, c, v, got)
				}
				if m.Registers.Status.Contains(status.Negative) != (got < 0) {
					t.Fatalf("a=%d c=%d v=%d: negative flag does not match result %d", a, c, v, got)
				}
			}
		}
	}
}

// Carry follows the 9 bit sum and overflow the operand signs, also when the
// carry in is what pushes the sum across a boundary.
func TestAddWithCarry_CarryInCrossesBoundary(t *testing.T) {
	tests := []struct {
		name  string
		a     int8
		value int8
		want  int8
		flags flags
	}{
		// 5 + 1 + $FF = $105: the result equals a, the sum still wrapped
		{"carry in wraps sum to a", 5, -1, 5, flags{c: true}},
		// 0 + 1 + 127 = 128: two non negative operands give -128
		{"carry in overflows zero plus max", 0, 127, -128, flags{v: true, n: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Registers.Accumulator = tt.a
			m.Registers.Status.Insert(status.Carry)

			m.AddWithCarry(tt.value)

			if m.Registers.Accumulator != tt.want {
				t.Errorf("accumulator = %d, want %d", m.Registers.Accumulator, tt.want)
			}
			if got := flagsOf(m); got != tt.flags {
				t.Errorf("flags = %+v, want %+v", got, tt.flags)
			}
		})
	}
}

func TestAddWithCarry_LeavesOtherFlags(t *testing.T) {
	m := New()
	m.Registers.Status = status.InterruptDisable | status.Break | status.Unused
	m.AddWithCarry(1)
	for _, f := range []status.Status{status.InterruptDisable, status.Break, status.Unused} {
		if !m.Registers.Status.Contains(f) {
			t.Errorf("flag %08b cleared by AddWithCarry()", f)
		}
	}
}

func TestAddWithCarry_DecimalIsBinary(t *testing.T) {
	m := New()
	m.Registers.Status.Insert(status.DecimalMode)
	m.LoadAccumulator(0x09)
	m.AddWithCarry(0x01)
	if m.Registers.Accumulator != 0x0a {
		t.Errorf("accumulator = %#x, want binary sum 0x0a", m.Registers.Accumulator)
	}
	if !m.Registers.Status.Contains(status.DecimalMode) {
		t.Errorf("decimal flag cleared")
	}
}

func TestMachine_SubtractWithCarry(t *testing.T) {
	tests := []struct {
		name      string
		a         int8
		carry     bool
		value     int8
		wantA     int8
		wantFlags flags
	}{
		{"5 - 3", 5, true, 3, 2, flags{c: true}},
		{"5 - 3 with borrow", 5, false, 3, 1, flags{c: true}},
		{"3 - 5 borrows", 3, true, 5, -2, flags{n: true}},
		{"equal", 42, true, 42, 0, flags{c: true, z: true}},
		{"-128 - 1 overflows", -128, true, 1, 127, flags{c: true, v: true}},
		{"127 - -1 overflows", 127, true, -1, -128, flags{v: true, n: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Registers.Accumulator = tt.a
			if tt.carry {
				m.Registers.Status.Insert(status.Carry)
			}
			m.SubtractWithCarry(tt.value)
			if m.Registers.Accumulator != tt.wantA {
				t.Errorf("accumulator = %d, want %d", m.Registers.Accumulator, tt.wantA)
			}
			if got := flagsOf(m); got != tt.wantFlags {
				t.Errorf("flags = %+v, want %+v", got, tt.wantFlags)
			}
		})
	}
}

func TestMachine_Loads(t *testing.T) {
	loads := []struct {
		name string
		load func(*Machine, int8)
		reg  func(*Machine) int8
	}{
		{"LoadAccumulator", (*Machine).LoadAccumulator, func(m *Machine) int8 { return m.Registers.Accumulator }},
		{"LoadXRegister", (*Machine).LoadXRegister, func(m *Machine) int8 { return m.Registers.IndexX }},
		{"LoadYRegister", (*Machine).LoadYRegister, func(m *Machine) int8 { return m.Registers.IndexY }},
	}
	values := []struct {
		value int8
		z, n  bool
	}{
		{0, true, false},
		{1, false, false},
		{127, false, false},
		{-1, false, true},
		{-128, false, true},
	}

	for _, l := range loads {
		for _, v := range values {
			for _, cv := range []status.Status{0, status.Carry | status.Overflow} {
				m := New()
				m.Registers.Status = cv
				l.load(m, v.value)
				if got := l.reg(m); got != v.value {
					t.Errorf("%s(%d): register = %d", l.name, v.value, got)
				}
				got := flagsOf(m)
				want := flags{c: cv != 0, v: cv != 0, z: v.z, n: v.n}
				if got != want {
					t.Errorf("%s(%d) with C|V=%v: flags = %+v, want %+v", l.name, v.value, cv != 0, got, want)
				}
			}
		}
	}
}

func TestMachine_DecX(t *testing.T) {
	m := New()

	m.DecX()
	if m.Registers.IndexX != -1 {
		t.Errorf("X = %d, want -1", m.Registers.IndexX)
	}
	if got := flagsOf(m); got != (flags{n: true}) {
		t.Errorf("flags = %+v, want N", got)
	}

	m.DecX()
	m.DecX()
	m.DecX()
	if m.Registers.IndexX != -4 {
		t.Errorf("X = %d, want -4", m.Registers.IndexX)
	}

	m.LoadXRegister(5)
	m.DecX()
	if m.Registers.IndexX != 4 {
		t.Errorf("X = %d, want 4", m.Registers.IndexX)
	}
	if got := flagsOf(m); got != (flags{}) {
		t.Errorf("flags = %+v, want none", got)
	}

	m.DecX()
	m.DecX()
	m.DecX()
	m.DecX()
	if m.Registers.IndexX != 0 {
		t.Errorf("X = %d, want 0", m.Registers.IndexX)
	}
	if got := flagsOf(m); got != (flags{z: true}) {
		t.Errorf("flags = %+v, want Z", got)
	}

	m.DecX()
	if m.Registers.IndexX != -1 {
		t.Errorf("X = %d, want -1", m.Registers.IndexX)
	}
	if got := flagsOf(m); got != (flags{n: true}) {
		t.Errorf("flags = %+v, want N", got)
	}
}

func TestMachine_DecXWraps(t *testing.T) {
	tests := []struct {
		name      string
		start     int8
		want      int8
		wantFlags flags
	}{
		{"0 to -1", 0, -1, flags{n: true}},
		{"-128 to 127", -128, 127, flags{}},
		{"1 to 0", 1, 0, flags{z: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Registers.IndexX = tt.start
			m.Registers.Status = status.Carry | status.Overflow
			m.DecX()
			if m.Registers.IndexX != tt.want {
				t.Errorf("X = %d, want %d", m.Registers.IndexX, tt.want)
			}
			want := tt.wantFlags
			want.c, want.v = true, true
			if got := flagsOf(m); got != want {
				t.Errorf("flags = %+v, want %+v", got, want)
			}
		})
	}
}

func TestMachine_IncDecY(t *testing.T) {
	m := New()
	m.IncY()
	if m.Registers.IndexY != 1 {
		t.Errorf("Y = %d, want 1", m.Registers.IndexY)
	}
	m.DecY()
	m.DecY()
	if m.Registers.IndexY != -1 || !m.Registers.Status.Contains(status.Negative) {
		t.Errorf("Y = %d, N = %v; want -1, N set", m.Registers.IndexY, m.Registers.Status.Contains(status.Negative))
	}

	m.LoadXRegister(127)
	m.IncX()
	if m.Registers.IndexX != -128 {
		t.Errorf("X = %d, want -128", m.Registers.IndexX)
	}
}
