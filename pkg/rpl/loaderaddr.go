package rpl

import "github.com/decaf-tools/elf2rpl/pkg/utils"

// FixLoaderAddresses implements P6: the linker script does not place the
// symbol/string tables or the export/import sections in loader address
// space, so this pass does it by hand (spec.md §4.6).
func FixLoaderAddresses(file *File) error {
	addr := uint32(LoadBaseAddress)

	advance := func(section *Section) {
		relocateSection(file, section, utils.AlignTo(addr, section.Header.AddrAlign))
		addr += section.Size()
	}

	if section := file.sectionByName(".fexports"); section != nil {
		advance(section)
	}

	if section := file.sectionByName(".dexports"); section != nil {
		advance(section)
	}

	if section := file.sectionByName(".symtab"); section != nil {
		advance(section)
		section.Header.Flags |= SHF_ALLOC
	}

	if section := file.sectionByName(".strtab"); section != nil {
		advance(section)
		section.Header.Flags |= SHF_ALLOC
	}

	if section := file.sectionByName(".shstrtab"); section != nil {
		advance(section)
		section.Header.Flags |= SHF_ALLOC
	}

	for _, section := range file.Sections {
		if section.Header.Type == SHT_RPL_IMPORTS {
			advance(section)
		}
	}

	return nil
}

// relocateSection implements §4.6.1: it moves a section to newAddr and
// shifts every symbol value and relocation offset that pointed into its
// old address window by the same delta. The bounds check is inclusive at
// both ends, admitting boundary symbols that point just past the
// section's final byte (spec.md §9).
func relocateSection(file *File, section *Section, newAddr uint32) {
	size := section.Size()
	oldAddr := section.Header.Addr
	oldEnd := oldAddr + size

	for _, symtab := range file.Sections {
		if symtab.Header.Type != SHT_SYMTAB {
			continue
		}

		syms := DecodeSymbols(symtab.Data)
		changed := false
		for i := range syms {
			t := syms[i].Type()
			if t != STT_OBJECT && t != STT_FUNC && t != STT_SECTION {
				continue
			}

			value := syms[i].Value
			if value >= oldAddr && value <= oldEnd {
				syms[i].Value = (value - oldAddr) + newAddr
				changed = true
			}
		}
		if changed {
			EncodeSymbols(symtab.Data, syms)
		}
	}

	for _, rela := range file.Sections {
		if rela.Header.Type != SHT_RELA {
			continue
		}

		relas := DecodeRelas(rela.Data)
		changed := false
		for i := range relas {
			offset := relas[i].Offset
			if offset >= oldAddr && offset <= oldEnd {
				relas[i].Offset = (offset - oldAddr) + newAddr
				changed = true
			}
		}
		if changed {
			rela.Data = EncodeRelas(relas)
		}
	}

	section.Header.Addr = newAddr
}
