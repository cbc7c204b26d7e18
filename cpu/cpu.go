// Package cpu implements a 6502 processor core and its NES 2A03 variant.
package cpu

import (
	"fmt"

	"github.com/retroenv/retro6502/internal/config"
	"github.com/retroenv/retro6502/memory"
	"github.com/retroenv/retro6502/options"
	"github.com/retroenv/retrogolib/log"
)

// CPU is a 6502 processor with its own 64 KiB memory.
// It is not safe for concurrent use.
type CPU struct {
	Accumulator    uint8
	IndexX         uint8
	IndexY         uint8
	ProgramCounter uint16
	StackPointer   StackPointer
	Status         Status

	memory  *memory.Memory
	logger  *log.Logger
	options options.CPU

	instructions uint64 // executed since the last reset
}

// New returns a new processor with zeroed registers and memory.
func New(opts options.CPU) *CPU {
	logger := opts.Logger
	if logger == nil {
		logger = config.CreateLogger(opts.Trace, !opts.Trace, opts.Output)
	}

	return &CPU{
		memory:  memory.New(),
		logger:  logger,
		options: opts,
	}
}

// Memory returns the memory of the processor.
func (c *CPU) Memory() *memory.Memory {
	return c.memory
}

// Mode returns the emulated processor variant.
func (c *CPU) Mode() options.Mode {
	return c.options.Mode
}

// Instructions returns the number of instructions executed since the last reset.
func (c *CPU) Instructions() uint64 {
	return c.instructions
}

// Load copies the program to the ROM origin of the processor mode and points
// the reset vector at it.
func (c *CPU) Load(program []byte) {
	origin := c.options.Mode.Origin()
	c.memory.Load(program, origin)
	c.logger.Debug("Program loaded",
		log.Hex("origin", origin),
		log.Int("size", len(program)))
}

// Reset sets all registers to their default values and continues execution
// at the address stored in the reset vector. Memory is not modified.
func (c *CPU) Reset() {
	c.Accumulator = 0
	c.IndexX = 0
	c.IndexY = 0
	c.StackPointer = 0
	c.Status = DefaultStatus
	c.instructions = 0

	c.ProgramCounter = c.memory.ReadWord(memory.ResetVector)
	c.logger.Debug("Processor reset", log.Hex("reset_vector", c.ProgramCounter))
}

// Run executes instructions until a BRK instruction was executed.
// Any returned error aborts the run, the processor state is left as is.
func (c *CPU) Run() error {
	for {
		if limit := c.options.MaxInstructions; limit > 0 && c.instructions >= limit {
			return fmt.Errorf("%w: %d instructions at 0x%04X", ErrInstructionLimit, limit, c.ProgramCounter)
		}

		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			c.logger.Debug("Processor halted",
				log.Hex("pc", c.ProgramCounter),
				log.Int("instructions", int(c.instructions)))
			return nil
		}
	}
}

// LoadAndRun loads the program, resets the processor and runs it.
func (c *CPU) LoadAndRun(program []byte) error {
	c.Load(program)
	c.Reset()
	return c.Run()
}

// String returns the register state in a single line.
func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X PC:%04X SP:%02X P:%s",
		c.Accumulator, c.IndexX, c.IndexY, c.ProgramCounter, uint8(c.StackPointer), c.Status)
}
