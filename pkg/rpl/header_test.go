package rpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixHeaderShoffRoundsUpTo64(t *testing.T) {
	file := &File{Sections: []*Section{
		makeSection("", SHT_NULL, 0),
		{Name: ".shstrtab", Header: SectionHeader{Type: SHT_STRTAB}},
	}}

	err := FixHeader(file)
	assert.NoError(t, err)

	assert.Equal(t, uint32(64), file.Header.SHOff)
	assert.Equal(t, uint16(2), file.Header.SHNum)
	assert.Equal(t, uint16(1), file.Header.SHStrNdx)
	assert.Equal(t, uint16(RPXType), file.Header.Type)
	assert.Equal(t, uint16(EABICafe), file.Header.ABI)
}
