package cpu

import "github.com/retroenv/retro6502/memory"

// target is the location a shift or rotate instruction operates on,
// either the accumulator or a memory address.
type target struct {
	inMemory bool
	address  uint16
}

var accumulatorTarget = target{}

func memoryTarget(address uint16) target {
	return target{inMemory: true, address: address}
}

// targetOf returns the memory target for a resolved operand and the
// accumulator otherwise.
func targetOf(op operand) target {
	if op.resolved {
		return memoryTarget(op.address)
	}
	return accumulatorTarget
}

func (c *CPU) load(t target) uint8 {
	if t.inMemory {
		return c.memory.Read(t.address)
	}
	return c.Accumulator
}

func (c *CPU) store(t target, value uint8) {
	if t.inMemory {
		c.memory.Write(t.address, value)
	} else {
		c.Accumulator = value
	}
}

// readOperand returns the memory byte at the operand address.
func (c *CPU) readOperand(op operand) (uint8, error) {
	address, err := op.addr()
	if err != nil {
		return 0, err
	}
	return c.memory.Read(address), nil
}

func (c *CPU) setZeroNegative(value uint8) {
	c.Status.SetZero(value)
	c.Status.SetNegative(value)
}

func (c *CPU) setAccumulator(value uint8) {
	c.Accumulator = value
	c.setZeroNegative(value)
}

func (c *CPU) setIndexX(value uint8) {
	c.IndexX = value
	c.setZeroNegative(value)
}

func (c *CPU) setIndexY(value uint8) {
	c.IndexY = value
	c.setZeroNegative(value)
}

// addToAccumulator adds the value and the carry flag to the accumulator.
func (c *CPU) addToAccumulator(value uint8) {
	carry := uint16(0)
	if c.Status.Has(Carry) {
		carry = 1
	}
	sum := uint16(c.Accumulator) + uint16(value) + carry
	result := uint8(sum)

	c.Status.SetCarry(sum)
	c.Status.SetOverflow((value^result)&(result^c.Accumulator)&0x80 != 0)
	c.setAccumulator(result)
}

// compare sets the flags as if the operand was subtracted from the register.
func (c *CPU) compare(register uint8, op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.Status.Set(Carry, register >= value)
	c.setZeroNegative(register - value)
	return nil
}

// branch jumps to the operand address if the condition is met.
func (c *CPU) branch(op operand, condition bool) error {
	address, err := op.addr()
	if err != nil {
		return err
	}
	if condition {
		c.ProgramCounter = address
	}
	return nil
}

// modify replaces the memory byte at the operand address by the result of fn.
func (c *CPU) modify(op operand, fn func(uint8) uint8) error {
	address, err := op.addr()
	if err != nil {
		return err
	}
	result := fn(c.memory.Read(address))
	c.memory.Write(address, result)
	c.setZeroNegative(result)
	return nil
}

func (c *CPU) adc(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.addToAccumulator(value)
	return nil
}

func (c *CPU) sbc(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.addToAccumulator(uint8(-int8(value) - 1))
	return nil
}

func (c *CPU) and(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.setAccumulator(c.Accumulator & value)
	return nil
}

func (c *CPU) ora(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.setAccumulator(c.Accumulator | value)
	return nil
}

func (c *CPU) eor(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.setAccumulator(c.Accumulator ^ value)
	return nil
}

func (c *CPU) asl(op operand) error {
	t := targetOf(op)
	value := c.load(t)
	result := value << 1

	c.Status.Set(Carry, value&0x80 != 0)
	c.setZeroNegative(result)
	c.store(t, result)
	return nil
}

func (c *CPU) lsr(op operand) error {
	t := targetOf(op)
	value := c.load(t)
	result := value >> 1

	c.Status.Set(Carry, value&0x01 != 0)
	c.setZeroNegative(result)
	c.store(t, result)
	return nil
}

func (c *CPU) rol(op operand) error {
	t := targetOf(op)
	value := c.load(t)
	result := value << 1
	if c.Status.Has(Carry) {
		result |= 0x01
	}

	c.Status.Set(Carry, value&0x80 != 0)
	c.setZeroNegative(result)
	c.store(t, result)
	return nil
}

func (c *CPU) ror(op operand) error {
	t := targetOf(op)
	value := c.load(t)
	result := value >> 1
	if c.Status.Has(Carry) {
		result |= 0x80
	}

	c.Status.Set(Carry, value&0x01 != 0)
	c.setZeroNegative(result)
	c.store(t, result)
	return nil
}

func (c *CPU) bcc(op operand) error { return c.branch(op, !c.Status.Has(Carry)) }
func (c *CPU) bcs(op operand) error { return c.branch(op, c.Status.Has(Carry)) }
func (c *CPU) beq(op operand) error { return c.branch(op, c.Status.Has(Zero)) }
func (c *CPU) bne(op operand) error { return c.branch(op, !c.Status.Has(Zero)) }
func (c *CPU) bmi(op operand) error { return c.branch(op, c.Status.Has(Negative)) }
func (c *CPU) bpl(op operand) error { return c.branch(op, !c.Status.Has(Negative)) }
func (c *CPU) bvc(op operand) error { return c.branch(op, !c.Status.Has(Overflow)) }
func (c *CPU) bvs(op operand) error { return c.branch(op, c.Status.Has(Overflow)) }

func (c *CPU) bit(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.Status.SetZero(c.Accumulator & value)
	c.Status.SetOverflow(value&0x40 != 0)
	c.Status.SetNegative(value)
	return nil
}

// brk pushes the program counter and the status register and continues at
// the address stored in the interrupt vector.
func (c *CPU) brk(operand) error {
	c.push16(c.ProgramCounter)
	c.push8(uint8(c.Status))
	c.ProgramCounter = c.memory.ReadWord(memory.InterruptVector)
	c.Status.Set(Break, true)
	c.Status.Set(Break2, true)
	return nil
}

func (c *CPU) rti(operand) error {
	c.Status = Status(c.pop8())
	c.ProgramCounter = c.pop16()
	return nil
}

func (c *CPU) clc(operand) error { c.Status.Set(Carry, false); return nil }
func (c *CPU) cld(operand) error { c.Status.Set(Decimal, false); return nil }
func (c *CPU) cli(operand) error { c.Status.Set(InterruptDisable, false); return nil }
func (c *CPU) clv(operand) error { c.Status.Set(Overflow, false); return nil }
func (c *CPU) sec(operand) error { c.Status.Set(Carry, true); return nil }
func (c *CPU) sed(operand) error { c.Status.Set(Decimal, true); return nil }
func (c *CPU) sei(operand) error { c.Status.Set(InterruptDisable, true); return nil }

func (c *CPU) cmp(op operand) error { return c.compare(c.Accumulator, op) }
func (c *CPU) cpx(op operand) error { return c.compare(c.IndexX, op) }
func (c *CPU) cpy(op operand) error { return c.compare(c.IndexY, op) }

func (c *CPU) inc(op operand) error {
	return c.modify(op, func(v uint8) uint8 { return v + 1 })
}

func (c *CPU) dec(op operand) error {
	return c.modify(op, func(v uint8) uint8 { return v - 1 })
}

func (c *CPU) inx(operand) error { c.setIndexX(c.IndexX + 1); return nil }
func (c *CPU) iny(operand) error { c.setIndexY(c.IndexY + 1); return nil }
func (c *CPU) dex(operand) error { c.setIndexX(c.IndexX - 1); return nil }
func (c *CPU) dey(operand) error { c.setIndexY(c.IndexY - 1); return nil }

func (c *CPU) jmp(op operand) error {
	address, err := op.addr()
	if err != nil {
		return err
	}
	c.ProgramCounter = address
	return nil
}

// jsr pushes the address of its own last byte, rts continues one byte after it.
func (c *CPU) jsr(op operand) error {
	address, err := op.addr()
	if err != nil {
		return err
	}
	c.push16(c.ProgramCounter - 1)
	c.ProgramCounter = address
	return nil
}

func (c *CPU) rts(operand) error {
	c.ProgramCounter = c.pop16() + 1
	return nil
}

func (c *CPU) lda(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.setAccumulator(value)
	return nil
}

func (c *CPU) ldx(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.setIndexX(value)
	return nil
}

func (c *CPU) ldy(op operand) error {
	value, err := c.readOperand(op)
	if err != nil {
		return err
	}
	c.setIndexY(value)
	return nil
}

// storeRegister writes the register value to the operand address.
func (c *CPU) storeRegister(op operand, value uint8) error {
	address, err := op.addr()
	if err != nil {
		return err
	}
	c.memory.Write(address, value)
	return nil
}

func (c *CPU) sta(op operand) error { return c.storeRegister(op, c.Accumulator) }
func (c *CPU) stx(op operand) error { return c.storeRegister(op, c.IndexX) }
func (c *CPU) sty(op operand) error { return c.storeRegister(op, c.IndexY) }

func (c *CPU) tax(operand) error { c.setIndexX(c.Accumulator); return nil }
func (c *CPU) tay(operand) error { c.setIndexY(c.Accumulator); return nil }
func (c *CPU) txa(operand) error { c.setAccumulator(c.IndexX); return nil }
func (c *CPU) tya(operand) error { c.setAccumulator(c.IndexY); return nil }
func (c *CPU) tsx(operand) error { c.setIndexX(uint8(c.StackPointer)); return nil }

func (c *CPU) txs(operand) error {
	c.StackPointer = StackPointer(c.IndexX)
	return nil
}

func (c *CPU) pha(operand) error { c.push8(c.Accumulator); return nil }
func (c *CPU) php(operand) error { c.push8(uint8(c.Status)); return nil }

func (c *CPU) pla(operand) error {
	c.setAccumulator(c.pop8())
	return nil
}

func (c *CPU) plp(operand) error {
	c.Status = Status(c.pop8())
	return nil
}

func (c *CPU) nop(operand) error { return nil }
