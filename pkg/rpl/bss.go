package rpl

import (
	"errors"

	"github.com/decaf-tools/elf2rpl/pkg/utils"
)

// NormalizeBss implements P2: the linker script sometimes lowers .bss from
// NOBITS to PROGBITS; the loader requires NOBITS (spec.md §4.2).
func NormalizeBss(file *File) error {
	section := file.sectionByName(".bss")
	if section == nil {
		return nil
	}

	if !utils.AllZeros(section.Data) {
		return errors.New("BSS has non-zero content")
	}

	section.Header.Type = SHT_NOBITS
	section.Header.Offset = 0
	section.Data = nil
	return nil
}
