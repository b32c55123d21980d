package rpl

import (
	"testing"

	"github.com/decaf-tools/elf2rpl/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestGenerateFileInfoAllZeroForMinimalFile(t *testing.T) {
	file := &File{Sections: []*Section{makeSection("", SHT_NULL, 0)}}

	err := GenerateFileInfo(file)
	assert.NoError(t, err)

	fi := file.sectionByType(SHT_RPL_FILEINFO)
	assert.NotNil(t, fi)

	info := utilsReadFileInfo(fi.Data)
	assert.Equal(t, uint32(0), info.TextSize)
	assert.Equal(t, uint32(0), info.DataSize)
	assert.Equal(t, uint32(0), info.LoadSize)
	assert.Equal(t, uint32(FileInfoVersion), info.Version)
}

func TestGenerateFileInfoTextSize(t *testing.T) {
	text := &Section{
		Name:   ".text",
		Header: SectionHeader{Type: SHT_PROGBITS, Flags: SHF_EXECINSTR, Addr: CodeBaseAddress, Size: 0x100},
		Data:   make([]byte, 0x100),
	}
	file := &File{Sections: []*Section{makeSection("", SHT_NULL, 0), text}}

	err := GenerateFileInfo(file)
	assert.NoError(t, err)

	fi := file.sectionByType(SHT_RPL_FILEINFO)
	info := utilsReadFileInfo(fi.Data)
	assert.Equal(t, uint32(0x100), info.TextSize)
	assert.Equal(t, uint32(0), info.DataSize)
	assert.Equal(t, uint32(0), info.LoadSize)
}

func TestGenerateFileInfoSizesAreAligned(t *testing.T) {
	text := &Section{
		Header: SectionHeader{Type: SHT_PROGBITS, Flags: SHF_EXECINSTR, Addr: CodeBaseAddress, Size: 5},
		Data:   make([]byte, 5),
	}
	data := &Section{
		Header: SectionHeader{Type: SHT_PROGBITS, Flags: SHF_WRITE, Addr: DataBaseAddress, Size: 5},
		Data:   make([]byte, 5),
	}
	load := &Section{
		Header: SectionHeader{Type: SHT_RPL_IMPORTS, Addr: LoadBaseAddress, Size: 5},
		Data:   make([]byte, 5),
	}
	file := &File{Sections: []*Section{makeSection("", SHT_NULL, 0), text, data, load}}

	assert.NoError(t, GenerateFileInfo(file))

	fi := file.sectionByType(SHT_RPL_FILEINFO)
	info := utilsReadFileInfo(fi.Data)

	assert.Equal(t, uint32(0), info.TextSize%FileInfoTextAlign)
	assert.Equal(t, uint32(0), info.DataSize%FileInfoDataAlign)
	assert.Equal(t, uint32(0), info.LoadSize%FileInfoLoadAlign)
}

func TestGenerateFileInfoTempSize(t *testing.T) {
	orphan := &Section{
		Header: SectionHeader{Type: SHT_PROGBITS, Addr: 0, Size: 10},
		Data:   make([]byte, 10),
	}
	file := &File{Sections: []*Section{makeSection("", SHT_NULL, 0), orphan}}

	assert.NoError(t, GenerateFileInfo(file))

	fi := file.sectionByType(SHT_RPL_FILEINFO)
	info := utilsReadFileInfo(fi.Data)
	// The NULL section also sits at address 0, so it counts as 0+128
	// alongside the orphan's 10+128.
	assert.Equal(t, uint32((0+128)+(10+128)), info.TempSize)
}

func utilsReadFileInfo(data []byte) FileInfo {
	return utils.Read[FileInfo](data)
}
