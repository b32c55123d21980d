package rpl

import (
	"encoding/binary"
	"hash/crc32"
)

// GenerateCrcs implements P8: it computes a zlib-compatible CRC-32 per
// section, reserves a slot for the CRCS section's own (always-zero) entry,
// and inserts the new section immediately before FILEINFO (spec.md §4.8).
//
// hash/crc32.ChecksumIEEE and zlib's crc32() compute the same polynomial,
// so no third-party checksum library is needed here.
func GenerateCrcs(file *File) error {
	crcs := make([]uint32, 0, len(file.Sections))
	for _, section := range file.Sections {
		if len(section.Data) == 0 {
			crcs = append(crcs, 0)
			continue
		}
		crcs = append(crcs, crc32.ChecksumIEEE(section.Data))
	}

	// Reserve the CRCS section's own slot at the position it will occupy
	// once inserted just before the last (FILEINFO) entry.
	fileInfoCrc := crcs[len(crcs)-1]
	crcs[len(crcs)-1] = 0
	crcs = append(crcs, fileInfoCrc)

	payload := make([]byte, len(crcs)*4)
	for i, crc := range crcs {
		binary.BigEndian.PutUint32(payload[i*4:], crc)
	}

	crcSection := &Section{
		Header: SectionHeader{
			Type:      SHT_RPL_CRCS,
			AddrAlign: 4,
			EntSize:   4,
		},
		Data: payload,
	}

	insertAt := len(file.Sections) - 1
	file.Sections = append(file.Sections[:insertAt],
		append([]*Section{crcSection}, file.Sections[insertAt:]...)...)

	return nil
}
