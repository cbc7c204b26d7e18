package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStatusBitAssignment(t *testing.T) {
	flags := []Status{Carry, Zero, InterruptDisable, Decimal, Break, Break2, Overflow, Negative}
	for bit, flag := range flags {
		assert.Equal(t, Status(1<<bit), flag)
	}
	assert.Equal(t, Status(0x34), DefaultStatus)
}

func TestStatusSetZero(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		var s Status
		s.SetZero(uint8(v))
		assert.Equal(t, v == 0, s.Has(Zero))

		s = 0xFF
		s.SetZero(uint8(v))
		assert.Equal(t, v == 0, s.Has(Zero))
		assert.Equal(t, Status(0xFF)&^Zero, s&^Zero)
	}
}

func TestStatusSetNegative(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		var s Status
		s.SetNegative(uint8(v))
		assert.Equal(t, v&0x80 != 0, s.Has(Negative))
		assert.Equal(t, Status(0), s&^Negative)
	}
}

func TestStatusSetCarry(t *testing.T) {
	for sum := 0; sum <= 0x1FF; sum++ {
		s := DefaultStatus
		s.SetCarry(uint16(sum))
		assert.Equal(t, sum > 0xFF, s.Has(Carry))
		assert.Equal(t, DefaultStatus, s&^Carry)
	}

	s := Carry
	s.SetCarry(0xFFFF)
	assert.True(t, s.Has(Carry))
}

func TestStatusSetOverflow(t *testing.T) {
	tests := []struct {
		name    string
		initial Status
		value   bool
	}{
		{"off off", DefaultStatus, false},
		{"off on", DefaultStatus, true},
		{"on off", DefaultStatus | Overflow, false},
		{"on on", DefaultStatus | Overflow, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.initial
			s.SetOverflow(tt.value)
			assert.Equal(t, tt.value, s.Has(Overflow))
			assert.Equal(t, DefaultStatus, s&^Overflow)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "nvUBdIzc", DefaultStatus.String())
	assert.Equal(t, "NVUBDIZC", Status(0xFF).String())
	assert.Equal(t, "nvubdizC", Carry.String())
}
