package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignTo(t *testing.T) {
	assert.Equal(t, uint32(0x20), AlignTo(0x11, 0x20))
	assert.Equal(t, uint32(0x20), AlignTo(0x20, 0x20))
	assert.Equal(t, uint32(0x40), AlignTo(0x21, 0x20))
	assert.Equal(t, uint32(5), AlignTo(5, 0))
}

func TestAllZeros(t *testing.T) {
	assert.True(t, AllZeros(nil))
	assert.True(t, AllZeros([]byte{0, 0, 0}))
	assert.False(t, AllZeros([]byte{0, 0, 1}))
}

type roundTrip struct {
	A uint32
	B uint16
	C int32
}

func TestReadWriteRoundTrip(t *testing.T) {
	in := roundTrip{A: 0xCAFEBABE, B: 0xFE01, C: -1}
	buf := make([]byte, 10)
	Write(buf, in)

	assert.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE}, buf[0:4])
	assert.Equal(t, []byte{0xFE, 0x01}, buf[4:6])

	out := Read[roundTrip](buf)
	assert.Equal(t, in, out)
}

func TestMapSet(t *testing.T) {
	s := NewMapSet[uint8]()
	assert.False(t, s.Contains(3))
	s.Add(3)
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
}
