package memory

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReadWrite(t *testing.T) {
	m := New()

	m.Write(0x1234, 0xAB)
	assert.Equal(t, uint8(0xAB), m.Read(0x1234))
	assert.Equal(t, uint8(0), m.Read(0x1235))

	m.Write(0xFFFF, 0x01)
	assert.Equal(t, uint8(0x01), m.Read(0xFFFF))
}

func TestWordAccess(t *testing.T) {
	tests := []struct {
		name    string
		address uint16
		value   uint16
		low     uint16
		high    uint16
	}{
		{"zero page", 0x0010, 0xBAFC, 0x0010, 0x0011},
		{"page crossing", 0x01FF, 0x1234, 0x01FF, 0x0200},
		{"address space wrap", 0xFFFF, 0xCDEF, 0xFFFF, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.WriteWord(tt.address, tt.value)

			assert.Equal(t, uint8(tt.value), m.Read(tt.low))
			assert.Equal(t, uint8(tt.value>>8), m.Read(tt.high))
			assert.Equal(t, tt.value, m.ReadWord(tt.address))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("copies program and sets reset vector", func(t *testing.T) {
		m := New()
		m.Load([]byte{0xA9, 0x05, 0x00}, 0x8000)

		assert.Equal(t, uint8(0xA9), m.Read(0x8000))
		assert.Equal(t, uint8(0x05), m.Read(0x8001))
		assert.Equal(t, uint8(0x00), m.Read(0x8002))
		assert.Equal(t, uint16(0x8000), m.ReadWord(ResetVector))
	})

	t.Run("wraps past the end of the address space", func(t *testing.T) {
		m := New()
		m.Load([]byte{0x11, 0x22, 0x33}, 0xFFFE)

		assert.Equal(t, uint8(0x33), m.Read(0x0000))
		// the reset vector is written after the program
		assert.Equal(t, uint16(0xFFFE), m.ReadWord(ResetVector))
	})
}

func TestClearAndBytes(t *testing.T) {
	m := New()
	m.Write(0x0600, 0xEA)

	image := m.Bytes()
	assert.Equal(t, Size, len(image))
	assert.Equal(t, byte(0xEA), image[0x0600])

	image[0x0600] = 0x00
	assert.Equal(t, uint8(0xEA), m.Read(0x0600))

	m.Clear()
	assert.Equal(t, uint8(0), m.Read(0x0600))
}
