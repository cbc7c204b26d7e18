package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// operand is the resolved operand address of an instruction, if any.
type operand struct {
	address  uint16
	resolved bool
}

// addr returns the operand address or ErrMissingOperand if none was resolved.
func (o operand) addr() (uint16, error) {
	if !o.resolved {
		return 0, ErrMissingOperand
	}
	return o.address, nil
}

type handler func(c *CPU, op operand) error

// handlers maps every instruction to its implementation.
var handlers = [instructionCount]handler{
	Adc: (*CPU).adc, And: (*CPU).and, Asl: (*CPU).asl,
	Bcc: (*CPU).bcc, Bcs: (*CPU).bcs, Beq: (*CPU).beq, Bit: (*CPU).bit,
	Bmi: (*CPU).bmi, Bne: (*CPU).bne, Bpl: (*CPU).bpl, Brk: (*CPU).brk,
	Bvc: (*CPU).bvc, Bvs: (*CPU).bvs,
	Clc: (*CPU).clc, Cld: (*CPU).cld, Cli: (*CPU).cli, Clv: (*CPU).clv,
	Cmp: (*CPU).cmp, Cpx: (*CPU).cpx, Cpy: (*CPU).cpy,
	Dec: (*CPU).dec, Dex: (*CPU).dex, Dey: (*CPU).dey,
	Eor: (*CPU).eor,
	Inc: (*CPU).inc, Inx: (*CPU).inx, Iny: (*CPU).iny,
	Jmp: (*CPU).jmp, Jsr: (*CPU).jsr,
	Lda: (*CPU).lda, Ldx: (*CPU).ldx, Ldy: (*CPU).ldy, Lsr: (*CPU).lsr,
	Nop: (*CPU).nop,
	Ora: (*CPU).ora,
	Pha: (*CPU).pha, Php: (*CPU).php, Pla: (*CPU).pla, Plp: (*CPU).plp,
	Rol: (*CPU).rol, Ror: (*CPU).ror, Rti: (*CPU).rti, Rts: (*CPU).rts,
	Sbc: (*CPU).sbc, Sec: (*CPU).sec, Sed: (*CPU).sed, Sei: (*CPU).sei,
	Sta: (*CPU).sta, Stx: (*CPU).stx, Sty: (*CPU).sty,
	Tax: (*CPU).tax, Tay: (*CPU).tay, Tsx: (*CPU).tsx,
	Txa: (*CPU).txa, Txs: (*CPU).txs, Tya: (*CPU).tya,
}

// Step executes a single instruction and returns whether the processor
// halted because the instruction was a BRK.
func (c *CPU) Step() (bool, error) {
	pc := c.ProgramCounter
	code := c.fetch8()

	opcode := opcodeTable[code]
	if opcode == nil {
		return false, fmt.Errorf("%w 0x%02X at 0x%04X", ErrUnrecognizedOpcode, code, pc)
	}

	if c.options.Trace {
		c.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", code),
			log.String("instruction", opcode.Instruction.String()),
			log.String("mode", opcode.Mode.String()),
			log.String("registers", c.String()))
	}

	address, resolved := c.resolveOperand(opcode.Mode)
	op := operand{address: address, resolved: resolved}

	if err := handlers[opcode.Instruction](c, op); err != nil {
		return false, fmt.Errorf("executing %s at 0x%04X: %w", opcode.Instruction, pc, err)
	}
	c.instructions++

	return opcode.Instruction == Brk, nil
}
