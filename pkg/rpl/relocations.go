package rpl

import (
	"fmt"
	"os"

	"github.com/decaf-tools/elf2rpl/pkg/utils"
)

// supportedRelocations are accepted unchanged by FixRelocations (spec.md
// §4.4). R_PPC_REL32 is handled separately, since it is lowered rather
// than passed through.
var supportedRelocations = utils.NewMapSet[uint32]()

func init() {
	for _, t := range []uint32{
		R_PPC_NONE, R_PPC_ADDR32, R_PPC_ADDR16_LO, R_PPC_ADDR16_HI, R_PPC_ADDR16_HA,
		R_PPC_REL24, R_PPC_REL14, R_PPC_DTPMOD32, R_PPC_DTPREL32,
		R_PPC_EMB_SDA21, R_PPC_EMB_RELSDA,
		R_PPC_DIAB_SDA21_LO, R_PPC_DIAB_SDA21_HI, R_PPC_DIAB_SDA21_HA,
		R_PPC_DIAB_RELSDA_LO, R_PPC_DIAB_RELSDA_HI, R_PPC_DIAB_RELSDA_HA,
	} {
		supportedRelocations.Add(t)
	}
}

// FixRelocations implements P4: the Wii U loader does not support every
// PowerPC relocation kind the compiler emits, so R_PPC_REL32 is lowered
// into a pair of GHS_REL16 relocations and anything else unrecognized
// fails the pass (spec.md §4.4, §7).
func FixRelocations(file *File) error {
	unsupported := utils.NewMapSet[uint32]()

	for _, section := range file.Sections {
		if section.Header.Type != SHT_RELA {
			continue
		}

		section.Header.Flags = 0

		symtab := file.Sections[section.Header.Link]
		relas := DecodeRelas(section.Data)
		var appended []Rela

		for i := range relas {
			index := relas[i].SymIndex()
			relType := relas[i].RelType()

			switch {
			case supportedRelocations.Contains(relType):
				// Valid on the Wii U as-is, nothing to do.

			case relType == R_PPC_REL32:
				syms := DecodeSymbols(symtab.Data)
				if index >= uint32(len(syms)) {
					return fmt.Errorf("could not find symbol %d for fixing a R_PPC_REL32 relocation", index)
				}

				addend := relas[i].Addend
				offset := relas[i].Offset

				relas[i].Info = MakeRelaInfo(index, R_PPC_GHS_REL16_HI)
				relas[i].Addend = addend
				relas[i].Offset = offset

				appended = append(appended, Rela{
					Info:   MakeRelaInfo(index, R_PPC_GHS_REL16_LO),
					Addend: addend + 2,
					Offset: offset + 2,
				})

			default:
				if !unsupported.Contains(relType) {
					fmt.Fprintf(os.Stderr, "ERROR: Unsupported relocation type %d\n", relType)
					unsupported.Add(relType)
				}
			}
		}

		relas = append(relas, appended...)
		section.Data = EncodeRelas(relas)
	}

	if unsupported.Len() > 0 {
		return fmt.Errorf("%d unsupported relocation type(s)", unsupported.Len())
	}

	return nil
}
