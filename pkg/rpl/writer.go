package rpl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// WriteFile implements P12: header, section headers, and section bodies
// are written at their precomputed offsets; gaps are left unwritten and
// are zero-filled by the filesystem (spec.md §4.12).
func WriteFile(file *File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	defer out.Close()

	var hdrBuf bytes.Buffer
	if err := binary.Write(&hdrBuf, binary.BigEndian, file.Header); err != nil {
		return fmt.Errorf("could not serialize file header: %w", err)
	}
	if _, err := out.WriteAt(hdrBuf.Bytes(), 0); err != nil {
		return fmt.Errorf("could not write file header: %w", err)
	}

	shdrOff := int64(file.Header.SHOff)
	for _, section := range file.Sections {
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.BigEndian, section.Header); err != nil {
			return fmt.Errorf("could not serialize section header for %s: %w", section.Name, err)
		}
		if _, err := out.WriteAt(buf.Bytes(), shdrOff); err != nil {
			return fmt.Errorf("could not write section header for %s: %w", section.Name, err)
		}
		shdrOff += int64(buf.Len())
	}

	for _, section := range file.Sections {
		if len(section.Data) == 0 {
			continue
		}
		if _, err := out.WriteAt(section.Data, int64(section.Header.Offset)); err != nil {
			return fmt.Errorf("could not write section data for %s: %w", section.Name, err)
		}
	}

	return nil
}
