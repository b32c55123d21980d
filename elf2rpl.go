package main

import (
	"fmt"
	"os"

	"github.com/decaf-tools/elf2rpl/pkg/rpl"
)

func main() {
	args := os.Args[1:]

	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			printUsage(os.Stdout)
			os.Exit(0)
		}
	}

	if len(args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	src, dst := args[0], args[1]

	if err := rpl.Run(src, dst); err != nil {
		fmt.Fprintf(os.Stderr, "elf2rpl: %s\n", err)
		os.Exit(1)
	}
}

func printUsage(w *os.File) {
	fmt.Fprintf(w, "Usage: %s <src elf> <dst rpl>\n", os.Args[0])
}
