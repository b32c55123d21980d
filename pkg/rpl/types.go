package rpl

import "debug/elf"

// Address space bases (spec.md §3 "Address spaces").
const (
	CodeBaseAddress = 0x02000000
	DataBaseAddress = 0x10000000
	LoadBaseAddress = 0xC0000000
)

// Wire-format magic and ABI/type values specific to the RPL container
// (spec.md §6).
const (
	HeaderMagic = 0x7F454C46
	EABICafe    = 0xCAFE
	RPXType     = 0xFE01
)

// FILEINFO constants (spec.md §6).
const (
	FileInfoVersion   = 0xCAFE0402
	FileInfoTextAlign = 32
	FileInfoDataAlign = 4096
	FileInfoLoadAlign = 4
	FileInfoStackSize = 0x10000
	FileInfoHeapSize  = 0x8000
	FileInfoMinVer    = 0x5078
	FileInfoSDKVer    = 0x51BA
	FileInfoSDKRev    = 0xCCD1
	RPLIsRPX          = 1
)

// Section types. The standard ELF ones reuse debug/elf's constants;
// RPL_* are platform extensions with no stdlib equivalent (spec.md §3).
const (
	SHT_NULL    = uint32(elf.SHT_NULL)
	SHT_PROGBITS = uint32(elf.SHT_PROGBITS)
	SHT_SYMTAB  = uint32(elf.SHT_SYMTAB)
	SHT_STRTAB  = uint32(elf.SHT_STRTAB)
	SHT_RELA    = uint32(elf.SHT_RELA)
	SHT_REL     = uint32(elf.SHT_REL)
	SHT_NOBITS  = uint32(elf.SHT_NOBITS)

	SHT_RPL_EXPORTS  = uint32(0x80000001)
	SHT_RPL_IMPORTS  = uint32(0x80000002)
	SHT_RPL_CRCS     = uint32(0x80000003)
	SHT_RPL_FILEINFO = uint32(0x80000004)
)

// Section flags.
const (
	SHF_WRITE     = uint32(elf.SHF_WRITE)
	SHF_ALLOC     = uint32(elf.SHF_ALLOC)
	SHF_EXECINSTR = uint32(elf.SHF_EXECINSTR)
	SHF_DEFLATED  = uint32(0x08000000)
)

// SHN_LORESERVE is the lowest reserved ELF section index; symbols whose
// shndx is at or above this sentinel refer to non-section targets and
// must never be remapped (spec.md §3, §4.3).
const SHN_LORESERVE = uint32(elf.SHN_LORESERVE)

// Symbol types (low 4 bits of Sym.Info).
const (
	STT_OBJECT  = uint8(elf.STT_OBJECT)
	STT_FUNC    = uint8(elf.STT_FUNC)
	STT_SECTION = uint8(elf.STT_SECTION)
)

// PowerPC relocation types recognized by this tool (spec.md §4.4).
const (
	R_PPC_NONE      = 0
	R_PPC_ADDR32    = 1
	R_PPC_ADDR16_LO = 4
	R_PPC_ADDR16_HI = 5
	R_PPC_ADDR16_HA = 6
	R_PPC_REL24     = 10
	R_PPC_REL14     = 11
	R_PPC_REL32     = 26

	R_PPC_DTPMOD32  = 68
	R_PPC_DTPREL32  = 78

	R_PPC_EMB_SDA21   = 109
	R_PPC_EMB_RELSDA  = 116

	R_PPC_DIAB_SDA21_LO  = 180
	R_PPC_DIAB_SDA21_HI  = 181
	R_PPC_DIAB_SDA21_HA  = 182
	R_PPC_DIAB_RELSDA_LO = 183
	R_PPC_DIAB_RELSDA_HI = 184
	R_PPC_DIAB_RELSDA_HA = 185

	// Wii U loader equivalents that R_PPC_REL32 is lowered into.
	R_PPC_GHS_REL16_HI = 251
	R_PPC_GHS_REL16_LO = 252
)

// Header is the 52-byte on-disk file header, wire-packed in field order
// (no Go struct padding leaks into the serialized form, since every field
// is written individually by encoding/binary). All multi-byte scalars are
// big-endian on disk.
type Header struct {
	Magic    uint32
	Class    uint8
	Encoding uint8
	Version  uint8
	ABI      uint16
	Pad      [7]uint8

	Type       uint16
	Machine    uint16
	ElfVersion uint32
	Entry      uint32
	PHOff      uint32
	SHOff      uint32
	Flags      uint32
	EHSize     uint16
	PHEntSize  uint16
	PHNum      uint16
	SHEntSize  uint16
	SHNum      uint16
	SHStrNdx   uint16
}

// SectionHeader is the 40-byte on-disk section header record (spec.md §3).
type SectionHeader struct {
	Name      uint32
	Type      uint32
	Flags     uint32
	Addr      uint32
	Offset    uint32
	Size      uint32
	Link      uint32
	Info      uint32
	AddrAlign uint32
	EntSize   uint32
}

// Symbol is the 16-byte on-disk SYMTAB record (spec.md §3).
type Symbol struct {
	Name  uint32
	Value uint32
	Size  uint32
	Info  uint8
	Other uint8
	Shndx uint16
}

func (s Symbol) Type() uint8 {
	return s.Info & 0xf
}

// Rela is the 12-byte on-disk RELA record (spec.md §3).
type Rela struct {
	Offset uint32
	Info   uint32
	Addend int32
}

func (r Rela) SymIndex() uint32 {
	return r.Info >> 8
}

func (r Rela) RelType() uint32 {
	return r.Info & 0xFF
}

func MakeRelaInfo(symIndex, relType uint32) uint32 {
	return (symIndex << 8) | (relType & 0xFF)
}

// FileInfo is the RPL_FILEINFO payload record (spec.md §6).
type FileInfo struct {
	Version uint32

	TextSize  uint32
	TextAlign uint32
	DataSize  uint32
	DataAlign uint32
	LoadSize  uint32
	LoadAlign uint32
	TempSize  uint32

	TrampAdjust   uint32
	TrampAddition uint32
	SdaBase       uint32
	Sda2Base      uint32
	StackSize     uint32
	HeapSize      uint32
	Filename      uint32
	Flags         uint32
	MinVersion    uint32

	CompressionLevel int32
	FileInfoPad      uint32
	CafeSdkVersion   uint32
	CafeSdkRevision  uint32
	TlsAlignShift    uint16
	TlsModuleIndex   uint16

	RuntimeFileInfoSize uint32
	TagOffset           uint32
}
