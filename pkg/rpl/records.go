package rpl

import (
	"encoding/binary"

	"github.com/decaf-tools/elf2rpl/pkg/utils"
)

var (
	symbolSize = binary.Size(Symbol{})
	relaSize   = binary.Size(Rela{})
)

// DecodeSymbols and DecodeRelas turn a raw SYMTAB/RELA payload into typed
// records; EncodeSymbols/EncodeRelas write them back. Every pass that
// touches symbol or relocation fields goes through these instead of
// indexing raw bytes.
func DecodeSymbols(data []byte) []Symbol {
	n := len(data) / symbolSize
	syms := make([]Symbol, n)
	for i := range syms {
		syms[i] = utils.Read[Symbol](data[i*symbolSize:])
	}
	return syms
}

func EncodeSymbols(data []byte, syms []Symbol) {
	for i, sym := range syms {
		utils.Write(data[i*symbolSize:], sym)
	}
}

// NewSymbolData allocates a fresh SYMTAB payload from scratch, for
// synthesizing symbol tables rather than mutating an existing one.
func NewSymbolData(syms []Symbol) []byte {
	buf := make([]byte, len(syms)*symbolSize)
	EncodeSymbols(buf, syms)
	return buf
}

func DecodeRelas(data []byte) []Rela {
	n := len(data) / relaSize
	relas := make([]Rela, n)
	for i := range relas {
		relas[i] = utils.Read[Rela](data[i*relaSize:])
	}
	return relas
}

func EncodeRelas(relas []Rela) []byte {
	buf := make([]byte, len(relas)*relaSize)
	for i, rel := range relas {
		utils.Write(buf[i*relaSize:], rel)
	}
	return buf
}
