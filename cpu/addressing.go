package cpu

import "fmt"

// AddressingMode defines how the operand address of an instruction is computed.
type AddressingMode uint8

// Supported addressing modes.
const (
	NoneAddressing AddressingMode = iota // implied or accumulator operand
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect  // only used by JMP
	IndirectX // (zp,X)
	IndirectY // (zp),Y
	Relative  // only used by branches
)

var addressingModeNames = [...]string{
	NoneAddressing: "none",
	Immediate:      "immediate",
	ZeroPage:       "zeropage",
	ZeroPageX:      "zeropage,x",
	ZeroPageY:      "zeropage,y",
	Absolute:       "absolute",
	AbsoluteX:      "absolute,x",
	AbsoluteY:      "absolute,y",
	Indirect:       "indirect",
	IndirectX:      "(indirect,x)",
	IndirectY:      "(indirect),y",
	Relative:       "relative",
}

// String returns the name of the addressing mode.
func (m AddressingMode) String() string {
	if int(m) < len(addressingModeNames) {
		return addressingModeNames[m]
	}
	return fmt.Sprintf("AddressingMode(%d)", uint8(m))
}

// OperandBytes returns the number of instruction bytes the mode consumes
// after the opcode.
func (m AddressingMode) OperandBytes() uint16 {
	switch m {
	case NoneAddressing:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 1
	}
}

// fetch8 returns the byte at the program counter and advances it.
func (c *CPU) fetch8() uint8 {
	value := c.memory.Read(c.ProgramCounter)
	c.ProgramCounter++
	return value
}

// fetch16 returns the word at the program counter and advances it.
func (c *CPU) fetch16() uint16 {
	value := c.memory.ReadWord(c.ProgramCounter)
	c.ProgramCounter += 2
	return value
}

// readZeroPageWord reads a little endian pointer from the zero page, the
// high byte wraps around within the page.
func (c *CPU) readZeroPageWord(pointer uint8) uint16 {
	low := uint16(c.memory.Read(uint16(pointer)))
	high := uint16(c.memory.Read(uint16(pointer + 1)))
	return high<<8 | low
}

// resolveOperand consumes the operand bytes of the addressing mode and
// returns the effective address. The second return value is false for
// instructions without a memory operand.
func (c *CPU) resolveOperand(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Immediate:
		// the instruction reads the operand byte directly
		address := c.ProgramCounter
		c.ProgramCounter++
		return address, true

	case ZeroPage:
		return uint16(c.fetch8()), true
	case ZeroPageX:
		return uint16(c.fetch8() + c.IndexX), true
	case ZeroPageY:
		return uint16(c.fetch8() + c.IndexY), true

	case Absolute:
		return c.fetch16(), true
	case AbsoluteX:
		return c.fetch16() + uint16(c.IndexX), true
	case AbsoluteY:
		return c.fetch16() + uint16(c.IndexY), true

	case Indirect:
		pointer := c.fetch16()
		return c.memory.ReadWord(pointer), true
	case IndirectX:
		pointer := c.fetch8() + c.IndexX
		return c.readZeroPageWord(pointer), true
	case IndirectY:
		pointer := c.fetch8()
		return c.readZeroPageWord(pointer) + uint16(c.IndexY), true

	case Relative:
		displacement := int8(c.fetch8())
		return c.ProgramCounter + uint16(displacement), true

	default:
		return 0, false
	}
}
