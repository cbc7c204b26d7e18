package cpu

import "errors"

var (
	// ErrUnrecognizedOpcode is returned when the fetched byte is not a documented opcode.
	ErrUnrecognizedOpcode = errors.New("unrecognized opcode")
	// ErrMissingOperand is returned when an instruction that needs an operand
	// address was dispatched without one.
	ErrMissingOperand = errors.New("missing operand address")
	// ErrInstructionLimit is returned by Run when the configured instruction limit is reached.
	ErrInstructionLimit = errors.New("instruction limit reached")
)
