package cpu

import "github.com/retroenv/retro6502/memory"

// StackPointer is the offset of the next free stack slot inside the stack page.
// It wraps around within the page, pushing onto a full or popping from an
// empty stack is not detected.
type StackPointer uint8

// Advance moves the pointer by the signed offset.
func (sp *StackPointer) Advance(offset int) {
	*sp = StackPointer(int(*sp) + offset)
}

// Address returns the physical memory address the pointer refers to.
func (sp StackPointer) Address() uint16 {
	return memory.StackPage + uint16(sp)
}

func (c *CPU) push8(value uint8) {
	c.memory.Write(c.StackPointer.Address(), value)
	c.StackPointer.Advance(1)
}

func (c *CPU) push16(value uint16) {
	c.memory.WriteWord(c.StackPointer.Address(), value)
	c.StackPointer.Advance(2)
}

func (c *CPU) pop8() uint8 {
	c.StackPointer.Advance(-1)
	return c.memory.Read(c.StackPointer.Address())
}

func (c *CPU) pop16() uint16 {
	c.StackPointer.Advance(-2)
	return c.memory.ReadWord(c.StackPointer.Address())
}
