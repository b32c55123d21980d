package rpl

import (
	"encoding/binary"

	"github.com/decaf-tools/elf2rpl/pkg/utils"
)

// GenerateFileInfo implements P7: it synthesizes the RPL_FILEINFO record
// the loader reads for aggregate text/data/load sizes (spec.md §4.7, §6).
func GenerateFileInfo(file *File) error {
	info := FileInfo{
		Version:          FileInfoVersion,
		TextAlign:        FileInfoTextAlign,
		DataAlign:        FileInfoDataAlign,
		LoadAlign:        FileInfoLoadAlign,
		StackSize:        FileInfoStackSize,
		HeapSize:         FileInfoHeapSize,
		Flags:            RPLIsRPX,
		MinVersion:       FileInfoMinVer,
		CompressionLevel: -1,
		CafeSdkVersion:   FileInfoSDKVer,
		CafeSdkRevision:  FileInfoSDKRev,
	}

	for _, section := range file.Sections {
		addr := section.Header.Addr
		size := section.Size()

		switch {
		case addr >= CodeBaseAddress && addr < DataBaseAddress:
			if val := addr + size - CodeBaseAddress; val > info.TextSize {
				info.TextSize = val
			}
		case addr >= DataBaseAddress && addr < LoadBaseAddress:
			if val := addr + size - DataBaseAddress; val > info.DataSize {
				info.DataSize = val
			}
		case addr >= LoadBaseAddress:
			if val := addr + size - LoadBaseAddress; val > info.LoadSize {
				info.LoadSize = val
			}
		case addr == 0 && section.Header.Type != SHT_RPL_CRCS && section.Header.Type != SHT_RPL_FILEINFO:
			info.TempSize += size + 128
		}
	}

	info.TextSize = utils.AlignTo(info.TextSize, info.TextAlign)
	info.DataSize = utils.AlignTo(info.DataSize, info.DataAlign)
	info.LoadSize = utils.AlignTo(info.LoadSize, info.LoadAlign)

	payload := make([]byte, binary.Size(info))
	utils.Write(payload, info)

	file.Sections = append(file.Sections, &Section{
		Header: SectionHeader{
			Type:      SHT_RPL_FILEINFO,
			AddrAlign: 4,
		},
		Data: payload,
	})

	return nil
}
