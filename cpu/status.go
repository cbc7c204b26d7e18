package cpu

import "strings"

// Status is the processor status register, one bit per flag.
type Status uint8

// Status flags, in register bit order.
const (
	Carry Status = 1 << iota
	Zero
	InterruptDisable
	Decimal
	Break
	Break2
	Overflow
	Negative
)

// DefaultStatus is the status register value after a reset.
const DefaultStatus = InterruptDisable | Break | Break2

// Has returns whether all bits of flag are set.
func (s Status) Has(flag Status) bool {
	return s&flag == flag
}

// Set sets or clears the flag.
func (s *Status) Set(flag Status, value bool) {
	if value {
		*s |= flag
	} else {
		*s &^= flag
	}
}

// SetZero sets the zero flag if the value is zero.
func (s *Status) SetZero(value uint8) {
	s.Set(Zero, value == 0)
}

// SetNegative sets the negative flag to bit 7 of the value.
func (s *Status) SetNegative(value uint8) {
	s.Set(Negative, value&0x80 != 0)
}

// SetCarry sets the carry flag if the intermediate sum does not fit into a byte.
func (s *Status) SetCarry(sum uint16) {
	s.Set(Carry, sum > 0xFF)
}

// SetOverflow sets or clears the overflow flag.
func (s *Status) SetOverflow(value bool) {
	s.Set(Overflow, value)
}

// statusLetters lists the flag letters from bit 7 down to bit 0.
var statusLetters = [8]struct {
	flag   Status
	letter byte
}{
	{Negative, 'N'},
	{Overflow, 'V'},
	{Break2, 'U'},
	{Break, 'B'},
	{Decimal, 'D'},
	{InterruptDisable, 'I'},
	{Zero, 'Z'},
	{Carry, 'C'},
}

// String returns the flags as letters, upper case letters are set flags.
func (s Status) String() string {
	var sb strings.Builder
	for _, l := range statusLetters {
		if s.Has(l.flag) {
			sb.WriteByte(l.letter)
		} else {
			sb.WriteByte(l.letter + 'a' - 'A')
		}
	}
	return sb.String()
}
