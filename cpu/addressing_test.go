package cpu

import (
	"testing"

	"github.com/retroenv/retro6502/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // table driven test
func TestResolveOperand(t *testing.T) {
	tests := []struct {
		name     string
		mode     AddressingMode
		operand  []byte
		x, y     uint8
		setup    func(c *CPU)
		expected uint16
		resolved bool
	}{
		{
			name:     "none",
			mode:     NoneAddressing,
			resolved: false,
		},
		{
			name:     "immediate",
			mode:     Immediate,
			operand:  []byte{0x42},
			expected: 0x0600,
			resolved: true,
		},
		{
			name:     "zero page",
			mode:     ZeroPage,
			operand:  []byte{0x10},
			expected: 0x0010,
			resolved: true,
		},
		{
			name:     "zero page x wraps",
			mode:     ZeroPageX,
			operand:  []byte{0xF0},
			x:        0x20,
			expected: 0x0010,
			resolved: true,
		},
		{
			name:     "zero page y",
			mode:     ZeroPageY,
			operand:  []byte{0x10},
			y:        0x05,
			expected: 0x0015,
			resolved: true,
		},
		{
			name:     "absolute",
			mode:     Absolute,
			operand:  []byte{0x34, 0x12},
			expected: 0x1234,
			resolved: true,
		},
		{
			name:     "absolute x crosses page",
			mode:     AbsoluteX,
			operand:  []byte{0xFF, 0x12},
			x:        0x01,
			expected: 0x1300,
			resolved: true,
		},
		{
			name:     "absolute y wraps",
			mode:     AbsoluteY,
			operand:  []byte{0xFF, 0xFF},
			y:        0x02,
			expected: 0x0001,
			resolved: true,
		},
		{
			name:    "indirect",
			mode:    Indirect,
			operand: []byte{0x20, 0x30},
			setup: func(c *CPU) {
				c.Memory().WriteWord(0x3020, 0xBAFC)
			},
			expected: 0xBAFC,
			resolved: true,
		},
		{
			name:    "indirect x",
			mode:    IndirectX,
			operand: []byte{0x20},
			x:       0x10,
			setup: func(c *CPU) {
				c.Memory().WriteWord(0x0030, 0xBAFC)
			},
			expected: 0xBAFC,
			resolved: true,
		},
		{
			name:    "indirect x pointer wraps in zero page",
			mode:    IndirectX,
			operand: []byte{0xFE},
			x:       0x01,
			setup: func(c *CPU) {
				c.Memory().Write(0x00FF, 0x34)
				c.Memory().Write(0x0000, 0x12)
			},
			expected: 0x1234,
			resolved: true,
		},
		{
			name:    "indirect y",
			mode:    IndirectY,
			operand: []byte{0x20},
			y:       0x10,
			setup: func(c *CPU) {
				c.Memory().WriteWord(0x0020, 0xBAFC)
			},
			expected: 0xBB0C,
			resolved: true,
		},
		{
			name:    "indirect y wraps address space",
			mode:    IndirectY,
			operand: []byte{0x20},
			y:       0x02,
			setup: func(c *CPU) {
				c.Memory().WriteWord(0x0020, 0xFFFF)
			},
			expected: 0x0001,
			resolved: true,
		},
		{
			name:     "relative forward",
			mode:     Relative,
			operand:  []byte{0x05},
			expected: 0x0606,
			resolved: true,
		},
		{
			name:     "relative backward",
			mode:     Relative,
			operand:  []byte{0xFC},
			expected: 0x05FD,
			resolved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(options.NewCPU())
			for i, b := range tt.operand {
				c.Memory().Write(0x0600+uint16(i), b)
			}
			if tt.setup != nil {
				tt.setup(c)
			}
			c.ProgramCounter = 0x0600
			c.IndexX = tt.x
			c.IndexY = tt.y

			address, resolved := c.resolveOperand(tt.mode)

			assert.Equal(t, tt.resolved, resolved)
			assert.Equal(t, tt.expected, address)
			assert.Equal(t, 0x0600+tt.mode.OperandBytes(), c.ProgramCounter)
			assert.Equal(t, uint16(len(tt.operand)), tt.mode.OperandBytes())
		})
	}
}

func TestResolveOperandMatchesOpcodeLength(t *testing.T) {
	for code := 0; code < 256; code++ {
		op, ok := LookupOpcode(uint8(code))
		if !ok {
			continue
		}

		c := New(options.NewCPU())
		c.ProgramCounter = 0x0601
		c.resolveOperand(op.Mode)

		assert.Equal(t, uint16(0x0601)+uint16(op.Length)-1, c.ProgramCounter)
	}
}

func TestAddressingModeString(t *testing.T) {
	assert.Equal(t, "(indirect),y", IndirectY.String())
	assert.Equal(t, "none", NoneAddressing.String())
	assert.Equal(t, "AddressingMode(99)", AddressingMode(99).String())
}
