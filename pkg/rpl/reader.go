package rpl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// ReadFile implements P1: it loads the ELF file at path into an in-memory
// File, validating the fixed fields spec.md §4.1 requires before trusting
// the rest of the layout.
func ReadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s for reading: %w", path, err)
	}

	r := bytes.NewReader(raw)

	var hdr Header
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("could not read ELF header: %w", err)
	}

	if hdr.Magic != HeaderMagic {
		return nil, fmt.Errorf("invalid ELF magic header %08X", hdr.Magic)
	}
	if hdr.Class != 1 {
		return nil, fmt.Errorf("unexpected ELF file class %d, expected 1", hdr.Class)
	}
	if hdr.Encoding != 2 {
		return nil, fmt.Errorf("unexpected ELF encoding %d, expected 2", hdr.Encoding)
	}
	if hdr.Machine != 20 {
		return nil, fmt.Errorf("unexpected ELF machine type %d, expected 20 (EM_PPC)", hdr.Machine)
	}
	if hdr.ElfVersion != 1 {
		return nil, fmt.Errorf("unexpected ELF version %d, expected 1", hdr.ElfVersion)
	}

	file := &File{Header: hdr}

	shdrSize := binary.Size(SectionHeader{})
	for i := 0; i < int(hdr.SHNum); i++ {
		if _, err := r.Seek(int64(hdr.SHOff)+int64(i)*int64(shdrSize), 0); err != nil {
			return nil, fmt.Errorf("could not seek to section header %d: %w", i, err)
		}

		var shdr SectionHeader
		if err := binary.Read(r, binary.BigEndian, &shdr); err != nil {
			return nil, fmt.Errorf("could not read section header %d: %w", i, err)
		}

		section := &Section{Header: shdr}

		if shdr.Size > 0 && shdr.Type != SHT_NOBITS {
			if _, err := r.Seek(int64(shdr.Offset), 0); err != nil {
				return nil, fmt.Errorf("could not seek to section %d data: %w", i, err)
			}

			data := make([]byte, shdr.Size)
			if _, err := r.Read(data); err != nil {
				return nil, fmt.Errorf("could not read section %d data: %w", i, err)
			}
			section.Data = data
		}

		file.Sections = append(file.Sections, section)
	}

	shStrTab := file.Sections[hdr.SHStrNdx].Data
	for _, section := range file.Sections {
		section.Name = cString(shStrTab, section.Header.Name)
	}

	return file, nil
}

func cString(strTab []byte, offset uint32) string {
	if int(offset) >= len(strTab) {
		return ""
	}
	end := bytes.IndexByte(strTab[offset:], 0)
	if end == -1 {
		return string(strTab[offset:])
	}
	return string(strTab[offset : offset+uint32(end)])
}
