package cliutil

import (
	"bufio"
	"fmt"
	"os"
)

// WriteASMFiles writes the two sibling files spec.md §6 requires for
// -asm_file: asm.txt (signed integer matrix) and asm_pretty.txt ("- ", "+ ",
// or two spaces per entry), in the current working directory.
func WriteASMFiles(asm [][]int) error {
	if err := writeFile("asm.txt", asm, formatSigned); err != nil {
		return err
	}
	return writeFile("asm_pretty.txt", asm, formatPretty)
}

func writeFile(name string, asm [][]int, cell func(int) string) error {
	f, err := os.Create(name)
	if err != nil {
		return New(KindIOFailure, "cannot open %s: %v", name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range asm {
		for _, v := range row {
			fmt.Fprint(w, cell(v))
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return New(KindIOFailure, "cannot write %s: %v", name, err)
	}
	return nil
}

func formatSigned(v int) string { return fmt.Sprintf("%d ", v) }

func formatPretty(v int) string {
	switch v {
	case 1:
		return "+ "
	case -1:
		return "- "
	default:
		return "  "
	}
}
