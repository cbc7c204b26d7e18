// Package memory provides the flat 64 KiB address space of a 6502 system.
package memory

const (
	// Size is the number of addressable bytes.
	Size = 0x10000

	// StackPage is the first address of the page used by the stack.
	StackPage = 0x0100
	// ResetVector holds the address that execution starts at after a reset.
	ResetVector = 0xFFFC
	// InterruptVector holds the address that execution continues at on BRK.
	InterruptVector = 0xFFFE
)

// Memory is a flat byte addressable store. All addresses wrap within
// the 16 bit address space.
type Memory struct {
	data [Size]byte
}

// New returns a new zeroed memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) uint8 {
	return m.data[address]
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value uint8) {
	m.data[address] = value
}

// ReadWord returns the little endian word starting at the given address.
func (m *Memory) ReadWord(address uint16) uint16 {
	low := uint16(m.data[address])
	high := uint16(m.data[address+1])
	return high<<8 | low
}

// WriteWord stores the word in little endian order starting at the given address.
func (m *Memory) WriteWord(address uint16, value uint16) {
	m.data[address] = uint8(value)
	m.data[address+1] = uint8(value >> 8)
}

// Load copies the program into memory starting at origin and points the
// reset vector at it. Programs that run past the end of the address space
// continue at address 0.
func (m *Memory) Load(program []byte, origin uint16) {
	address := origin
	for _, b := range program {
		m.data[address] = b
		address++
	}
	m.WriteWord(ResetVector, origin)
}

// Clear zeroes the whole address space.
func (m *Memory) Clear() {
	m.data = [Size]byte{}
}

// Bytes returns a copy of the memory image.
func (m *Memory) Bytes() []byte {
	image := make([]byte, Size)
	copy(image, m.data[:])
	return image
}
