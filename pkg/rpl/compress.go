package rpl

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
)

// DeflateMinSectionSize is the smallest payload DeflateSections will
// compress; anything below it is left alone (spec.md §4.10).
const DeflateMinSectionSize = 0x18

// CompressExclude names section types DeflateSections never compresses
// regardless of size, resolving the open question in spec.md §9 by
// exposing the exclusion set instead of hard-coding it inline.
var CompressExclude = map[uint32]bool{
	SHT_RPL_CRCS:     true,
	SHT_RPL_FILEINFO: true,
}

// DeflateSections implements P10: eligible section payloads are replaced
// with a 4-byte big-endian inflated-size prefix followed by a zlib DEFLATE
// stream of the original bytes, compressed at level 6 (spec.md §4.10).
func DeflateSections(file *File) error {
	for _, section := range file.Sections {
		if len(section.Data) < DeflateMinSectionSize || CompressExclude[section.Header.Type] {
			continue
		}

		var compressed bytes.Buffer
		compressed.Write(make([]byte, 4))

		w, err := zlib.NewWriterLevel(&compressed, 6)
		if err != nil {
			return fmt.Errorf("could not start deflate stream: %w", err)
		}
		if _, err := w.Write(section.Data); err != nil {
			return fmt.Errorf("could not deflate section %s: %w", section.Name, err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("could not finish deflate stream for section %s: %w", section.Name, err)
		}

		out := compressed.Bytes()
		binary.BigEndian.PutUint32(out[0:4], uint32(len(section.Data)))

		section.Data = out
		section.Header.Flags |= SHF_DEFLATED
	}

	return nil
}
