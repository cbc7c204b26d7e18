package cpu

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/cpu6502"
)

// OpCode describes a single opcode byte.
type OpCode struct {
	Code        uint8
	Instruction Instruction
	Length      uint8 // instruction length in bytes, including the opcode
	Cycles      uint8 // base cycle count, informational only
	Mode        AddressingMode
}

// addressingModes maps the reference addressing modes to the ones the
// processor resolves. Implied and accumulator operands need no address.
var addressingModes = map[cpu6502.AddressingMode]AddressingMode{
	cpu6502.ImpliedAddressing:     NoneAddressing,
	cpu6502.AccumulatorAddressing: NoneAddressing,
	cpu6502.ImmediateAddressing:   Immediate,
	cpu6502.ZeroPageAddressing:    ZeroPage,
	cpu6502.ZeroPageXAddressing:   ZeroPageX,
	cpu6502.ZeroPageYAddressing:   ZeroPageY,
	cpu6502.AbsoluteAddressing:    Absolute,
	cpu6502.AbsoluteXAddressing:   AbsoluteX,
	cpu6502.AbsoluteYAddressing:   AbsoluteY,
	cpu6502.IndirectAddressing:    Indirect,
	cpu6502.IndirectXAddressing:   IndirectX,
	cpu6502.IndirectYAddressing:   IndirectY,
	cpu6502.RelativeAddressing:    Relative,
}

// opcodeTable is indexed by the opcode byte, nil entries are undocumented opcodes.
// It is built once and never modified.
var opcodeTable = buildOpcodeTable()

// buildOpcodeTable decodes the documented subset of the 6502 opcode reference.
// Undocumented opcodes and the KIL opcodes that jam the processor stay unset.
func buildOpcodeTable() [256]*OpCode {
	mnemonics := make(map[string]Instruction, instructionCount)
	for ins := range instructionCount {
		mnemonics[strings.ToLower(ins.String())] = ins
	}

	var table [256]*OpCode
	for code, ref := range cpu6502.Opcodes {
		if ref.Instruction == nil || ref.Instruction.Unofficial || ref.Instruction == cpu6502.KilInst {
			continue
		}

		ins, ok := mnemonics[ref.Instruction.Name]
		if !ok {
			panic(fmt.Sprintf("unsupported instruction %s for opcode 0x%02X", ref.Instruction.Name, code))
		}
		mode, ok := addressingModes[ref.Addressing]
		if !ok {
			panic(fmt.Sprintf("unsupported addressing mode %d for opcode 0x%02X", ref.Addressing, code))
		}

		table[code] = &OpCode{
			Code:        uint8(code),
			Instruction: ins,
			Length:      ref.Instruction.Addressing[ref.Addressing].Size,
			Cycles:      ref.Timing,
			Mode:        mode,
		}
	}
	return table
}

// LookupOpcode returns the opcode definition for the code byte.
func LookupOpcode(code uint8) (OpCode, bool) {
	op := opcodeTable[code]
	if op == nil {
		return OpCode{}, false
	}
	return *op, true
}
