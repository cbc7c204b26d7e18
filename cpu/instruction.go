package cpu

import "fmt"

// Instruction is a 6502 mnemonic.
type Instruction uint8

// All documented 6502 instructions.
const (
	Adc Instruction = iota // add with carry
	And                    // logical and
	Asl                    // arithmetic shift left
	Bcc                    // branch if carry clear
	Bcs                    // branch if carry set
	Beq                    // branch if equal
	Bit                    // bit test
	Bmi                    // branch if minus
	Bne                    // branch if not equal
	Bpl                    // branch if plus
	Brk                    // force interrupt
	Bvc                    // branch if overflow clear
	Bvs                    // branch if overflow set
	Clc                    // clear carry flag
	Cld                    // clear decimal flag
	Cli                    // clear interrupt disable flag
	Clv                    // clear overflow flag
	Cmp                    // compare accumulator
	Cpx                    // compare x register
	Cpy                    // compare y register
	Dec                    // decrement memory
	Dex                    // decrement x register
	Dey                    // decrement y register
	Eor                    // exclusive or
	Inc                    // increment memory
	Inx                    // increment x register
	Iny                    // increment y register
	Jmp                    // jump
	Jsr                    // jump to subroutine
	Lda                    // load accumulator
	Ldx                    // load x register
	Ldy                    // load y register
	Lsr                    // logical shift right
	Nop                    // no operation
	Ora                    // logical inclusive or
	Pha                    // push accumulator
	Php                    // push processor status
	Pla                    // pull accumulator
	Plp                    // pull processor status
	Rol                    // rotate left
	Ror                    // rotate right
	Rti                    // return from interrupt
	Rts                    // return from subroutine
	Sbc                    // subtract with carry
	Sec                    // set carry flag
	Sed                    // set decimal flag
	Sei                    // set interrupt disable flag
	Sta                    // store accumulator
	Stx                    // store x register
	Sty                    // store y register
	Tax                    // transfer accumulator to x
	Tay                    // transfer accumulator to y
	Tsx                    // transfer stack pointer to x
	Txa                    // transfer x to accumulator
	Txs                    // transfer x to stack pointer
	Tya                    // transfer y to accumulator

	instructionCount
)

var instructionNames = [instructionCount]string{
	Adc: "ADC", And: "AND", Asl: "ASL", Bcc: "BCC", Bcs: "BCS", Beq: "BEQ", Bit: "BIT",
	Bmi: "BMI", Bne: "BNE", Bpl: "BPL", Brk: "BRK", Bvc: "BVC", Bvs: "BVS", Clc: "CLC",
	Cld: "CLD", Cli: "CLI", Clv: "CLV", Cmp: "CMP", Cpx: "CPX", Cpy: "CPY", Dec: "DEC",
	Dex: "DEX", Dey: "DEY", Eor: "EOR", Inc: "INC", Inx: "INX", Iny: "INY", Jmp: "JMP",
	Jsr: "JSR", Lda: "LDA", Ldx: "LDX", Ldy: "LDY", Lsr: "LSR", Nop: "NOP", Ora: "ORA",
	Pha: "PHA", Php: "PHP", Pla: "PLA", Plp: "PLP", Rol: "ROL", Ror: "ROR", Rti: "RTI",
	Rts: "RTS", Sbc: "SBC", Sec: "SEC", Sed: "SED", Sei: "SEI", Sta: "STA", Stx: "STX",
	Sty: "STY", Tax: "TAX", Tay: "TAY", Tsx: "TSX", Txa: "TXA", Txs: "TXS", Tya: "TYA",
}

// String returns the upper case mnemonic.
func (i Instruction) String() string {
	if i < instructionCount {
		return instructionNames[i]
	}
	return fmt.Sprintf("Instruction(%d)", uint8(i))
}
