package rpl

// FixSectionAlign implements P5: sections are realigned per type ahead of
// loader virtual address assignment (spec.md §4.5).
func FixSectionAlign(file *File) error {
	for _, section := range file.Sections {
		switch section.Header.Type {
		case SHT_PROGBITS:
			section.Header.AddrAlign = 32
		case SHT_NOBITS:
			section.Header.AddrAlign = 64
		case SHT_RPL_IMPORTS:
			section.Header.AddrAlign = 4
		}
	}

	return nil
}
