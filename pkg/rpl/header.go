package rpl

import (
	"encoding/binary"

	"github.com/decaf-tools/elf2rpl/pkg/utils"
)

// FixHeader implements P9: it rewrites the file header into its final RPL
// form. Entry is left untouched — neither the original tool nor this one
// rewrites it (spec.md §4.9).
func FixHeader(file *File) error {
	hdr := &file.Header

	hdr.Magic = HeaderMagic
	hdr.Class = 1
	hdr.Encoding = 2
	hdr.Version = 1
	hdr.ABI = EABICafe
	hdr.Pad = [7]uint8{}

	hdr.Type = RPXType
	hdr.Machine = 20
	hdr.ElfVersion = 1
	hdr.Flags = 0
	hdr.PHOff = 0
	hdr.PHEntSize = 0
	hdr.PHNum = 0

	hdr.SHOff = utils.AlignTo(uint32(binary.Size(Header{})), 64)
	hdr.SHNum = uint16(len(file.Sections))
	hdr.SHEntSize = uint16(binary.Size(SectionHeader{}))
	hdr.EHSize = uint16(binary.Size(Header{}))
	hdr.SHStrNdx = uint16(file.sectionIndex(".shstrtab"))

	return nil
}
