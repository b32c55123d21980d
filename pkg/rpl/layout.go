package rpl

import (
	"encoding/binary"

	"github.com/decaf-tools/elf2rpl/pkg/utils"
)

// CalculateOffsets implements P11: section file offsets are assigned in
// the canonical on-disk traversal order (spec.md §4.11). NOBITS sections
// are skipped entirely — they contribute no file content.
func CalculateOffsets(file *File) error {
	shdrSize := uint32(binary.Size(SectionHeader{}))
	offset := file.Header.SHOff
	offset += utils.AlignTo(uint32(len(file.Sections))*shdrSize, 64)

	place := func(section *Section) {
		section.Header.Offset = offset
		section.Header.Size = uint32(len(section.Data))
		offset += section.Header.Size
	}

	if section := file.sectionByType(SHT_RPL_CRCS); section != nil {
		place(section)
	}
	if section := file.sectionByType(SHT_RPL_FILEINFO); section != nil {
		place(section)
	}

	for _, section := range file.Sections {
		if section.Header.Type == SHT_PROGBITS && section.Header.Flags&SHF_EXECINSTR == 0 {
			place(section)
		}
	}
	for _, section := range file.Sections {
		if section.Header.Type == SHT_RPL_EXPORTS {
			place(section)
		}
	}
	for _, section := range file.Sections {
		if section.Header.Type == SHT_RPL_IMPORTS {
			place(section)
		}
	}
	for _, section := range file.Sections {
		if section.Header.Type == SHT_SYMTAB || section.Header.Type == SHT_STRTAB {
			place(section)
		}
	}
	for _, section := range file.Sections {
		if section.Header.Type == SHT_PROGBITS && section.Header.Flags&SHF_EXECINSTR != 0 {
			place(section)
		}
	}
	for _, section := range file.Sections {
		if section.Header.Type == SHT_REL || section.Header.Type == SHT_RELA {
			place(section)
		}
	}

	return nil
}
