// Package options contains the processor options.
package options

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

// Mode selects the processor variant that is emulated.
type Mode int

const (
	// Nes2A03 is the NES console variant, programs are loaded into the cartridge ROM area.
	Nes2A03 Mode = iota
	// Mos6502 is the plain MOS 6502, programs are loaded at 0x0600, the usual 6502 program start.
	Mos6502
)

const (
	nesOrigin     = 0x8000
	mos6502Origin = 0x0600
)

// Origin returns the address that programs are loaded at for the mode.
func (m Mode) Origin() uint16 {
	if m == Mos6502 {
		return mos6502Origin
	}
	return nesOrigin
}

// String returns the name of the processor variant.
func (m Mode) String() string {
	switch m {
	case Nes2A03:
		return "2A03"
	case Mos6502:
		return "6502"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// CPU defines options to control the processor.
type CPU struct {
	Mode   Mode        // processor variant, selects the program origin
	Logger *log.Logger // logger to use, a quiet logger is created if not set
	Output io.Writer   // output of the created logger if Logger is not set, defaults to os.Stdout

	MaxInstructions uint64 // stop a run after this many instructions, 0 disables the limit
	Trace           bool   // log every executed instruction at debug level, enables debug output of the created logger
}

// NewCPU returns a new options instance with default options.
func NewCPU() CPU {
	return CPU{
		Mode: Nes2A03,
	}
}
