package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"runtime/debug"
)

func MustNo(err error) {
	if err != nil {
		Fatal(err)
	}
}

func Fatal(v any) {
	fmt.Println("elf2rpl: "+"\033[0;1;31mfatal:\033[0m", fmt.Sprintf("%s", v))
	debug.PrintStack()
	os.Exit(1)
}

func Assert(condition bool) {
	if !condition {
		Fatal("Assert failed")
	}
}

func AlignTo(val, align uint32) uint32 {
	if align == 0 {
		return val
	}
	return (val + align - 1) & ^(align - 1)
}

func AllZeros(bs []byte) bool {
	b := byte(0)
	for _, s := range bs {
		b |= s
	}
	return b == 0
}

// Read and Write serialize fixed-layout records using the platform's wire
// order: every multi-byte scalar in this format is big-endian.
func Read[T any](data []byte) (val T) {
	reader := bytes.NewReader(data)
	err := binary.Read(reader, binary.BigEndian, &val)
	MustNo(err)
	return
}

func Write[T any](data []byte, e T) {
	buf := &bytes.Buffer{}
	err := binary.Write(buf, binary.BigEndian, e)
	MustNo(err)
	copy(data, buf.Bytes())
}
