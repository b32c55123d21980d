package rpl

import (
	"errors"

	"github.com/decaf-tools/elf2rpl/pkg/utils"
)

// ReorderSections implements P3: it produces the canonical on-disk section
// ordering (spec.md §4.3) and rewrites every index-valued field that
// refers to a section by position.
func ReorderSections(file *File) error {
	isProgbits := func(s *Section) bool { return s.Header.Type == SHT_PROGBITS }
	hasFlag := func(s *Section, flag uint32) bool { return s.Header.Flags&flag != 0 }

	buckets := []func(*Section) bool{
		func(s *Section) bool { return s.Header.Type == SHT_NULL },
		func(s *Section) bool { return isProgbits(s) && hasFlag(s, SHF_EXECINSTR) },
		func(s *Section) bool { return s.Header.Type == SHT_RPL_EXPORTS },
		func(s *Section) bool {
			return isProgbits(s) && !hasFlag(s, SHF_EXECINSTR) && !hasFlag(s, SHF_WRITE)
		},
		func(s *Section) bool {
			return isProgbits(s) && !hasFlag(s, SHF_EXECINSTR) && hasFlag(s, SHF_WRITE)
		},
		func(s *Section) bool { return s.Header.Type == SHT_NOBITS },
		func(s *Section) bool { return s.Header.Type == SHT_REL || s.Header.Type == SHT_RELA },
		func(s *Section) bool { return s.Header.Type == SHT_RPL_IMPORTS },
		func(s *Section) bool { return s.Header.Type == SHT_SYMTAB || s.Header.Type == SHT_STRTAB },
	}

	var newToOld []int
	for _, inBucket := range buckets {
		for i, s := range file.Sections {
			if inBucket(s) {
				newToOld = append(newToOld, i)
			}
		}
	}

	if len(newToOld) != len(file.Sections) {
		return errors.New("invalid section in elf file")
	}

	oldSections := file.Sections
	newSections := make([]*Section, len(newToOld))
	oldToNew := make([]uint32, len(oldSections))
	for newIdx, oldIdx := range newToOld {
		newSections[newIdx] = oldSections[oldIdx]
		oldToNew[oldIdx] = uint32(newIdx)
	}
	file.Sections = newSections

	utils.Assert(int(file.Header.SHStrNdx) < len(oldToNew))
	file.Header.SHStrNdx = uint16(oldToNew[file.Header.SHStrNdx])

	for _, s := range file.Sections {
		utils.Assert(int(s.Header.Link) < len(oldToNew))
		s.Header.Link = oldToNew[s.Header.Link]

		if s.Header.Type == SHT_RELA {
			utils.Assert(int(s.Header.Info) < len(oldToNew))
			s.Header.Info = oldToNew[s.Header.Info]
		}

		if s.Header.Type == SHT_SYMTAB {
			syms := DecodeSymbols(s.Data)
			for i := range syms {
				if uint32(syms[i].Shndx) < SHN_LORESERVE {
					utils.Assert(int(syms[i].Shndx) < len(oldToNew))
					syms[i].Shndx = uint16(oldToNew[syms[i].Shndx])
				}
			}
			EncodeSymbols(s.Data, syms)
		}
	}

	return nil
}
