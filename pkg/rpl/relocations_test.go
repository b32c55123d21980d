package rpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixRelocationsLowersRel32(t *testing.T) {
	file := &File{
		Sections: []*Section{
			makeSection("", SHT_NULL, 0),
			makeSection(".symtab", SHT_SYMTAB, 0),
			{Name: ".rela.text", Header: SectionHeader{Type: SHT_RELA, Link: 1}},
		},
	}
	file.Sections[1].Data = NewSymbolData(make([]Symbol, 6))
	file.Sections[2].Data = EncodeRelas([]Rela{
		{Offset: 0x20000010, Info: MakeRelaInfo(5, R_PPC_REL32), Addend: 0},
	})

	err := FixRelocations(file)
	assert.NoError(t, err)

	relas := DecodeRelas(file.Sections[2].Data)
	assert.Len(t, relas, 2)

	assert.Equal(t, uint32(0x20000010), relas[0].Offset)
	assert.Equal(t, MakeRelaInfo(5, R_PPC_GHS_REL16_HI), relas[0].Info)
	assert.Equal(t, int32(0), relas[0].Addend)

	assert.Equal(t, uint32(0x20000012), relas[1].Offset)
	assert.Equal(t, MakeRelaInfo(5, R_PPC_GHS_REL16_LO), relas[1].Info)
	assert.Equal(t, int32(2), relas[1].Addend)

	assert.Equal(t, uint32(0), file.Sections[2].Header.Flags)
}

func TestFixRelocationsRejectsUnsupportedType(t *testing.T) {
	file := &File{
		Sections: []*Section{
			makeSection("", SHT_NULL, 0),
			makeSection(".symtab", SHT_SYMTAB, 0),
			{Name: ".rela.text", Header: SectionHeader{Type: SHT_RELA, Link: 1}},
		},
	}
	file.Sections[1].Data = NewSymbolData(make([]Symbol, 1))

	const rPPCAddr24 = 2
	file.Sections[2].Data = EncodeRelas([]Rela{
		{Offset: 0, Info: MakeRelaInfo(0, rPPCAddr24), Addend: 0},
	})

	err := FixRelocations(file)
	assert.Error(t, err)
}

func TestFixRelocationsRejectsOutOfRangeSymbol(t *testing.T) {
	file := &File{
		Sections: []*Section{
			makeSection("", SHT_NULL, 0),
			makeSection(".symtab", SHT_SYMTAB, 0),
			{Name: ".rela.text", Header: SectionHeader{Type: SHT_RELA, Link: 1}},
		},
	}
	file.Sections[1].Data = NewSymbolData(make([]Symbol, 1))
	file.Sections[2].Data = EncodeRelas([]Rela{
		{Offset: 0, Info: MakeRelaInfo(5, R_PPC_REL32), Addend: 0},
	})

	err := FixRelocations(file)
	assert.Error(t, err)
}
