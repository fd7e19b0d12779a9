// Command synacor runs or converts Synacor-style VM programs. It is
// peripheral glue over package vm and package asm: argument parsing,
// subcommand dispatch, and terminal detection live here so the core
// packages stay pure and independently testable.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/chenson2018/synacor/pkg/asm"
	"github.com/chenson2018/synacor/pkg/vm"
)

// fileType names the external encoding of an input file.
type fileType string

const (
	fileTypeBinary   fileType = "binary"
	fileTypeAssembly fileType = "assembly"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		log.Fatal("usage: synacor <run|convert> -ftype <binary|assembly> -path <file> [flags]")
	}
	sub := os.Args[1]
	args := os.Args[2:]

	switch sub {
	case "run":
		runCommand(args)
	case "convert":
		convertCommand(args)
	default:
		log.Fatalf("unknown command %q: expected \"run\" or \"convert\"", sub)
	}
}

func sharedFlags(fs *flag.FlagSet) (ftype *string, path *string) {
	ftype = fs.String("ftype", "", "input file type: binary or assembly")
	path = fs.String("path", "", "input file path")
	return
}

func loadWords(ftypeStr, path string) ([]vm.Word, error) {
	switch fileType(ftypeStr) {
	case fileTypeBinary:
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return toVMWords(asm.BytesToWords(raw)), nil
	case fileTypeAssembly:
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		words, err := asm.TextToWords(path, string(raw))
		if err != nil {
			return nil, err
		}
		return toVMWords(words), nil
	default:
		return nil, fmt.Errorf("invalid -ftype %q: expected \"binary\" or \"assembly\"", ftypeStr)
	}
}

func toVMWords(words []asm.Word) []vm.Word {
	out := make([]vm.Word, len(words))
	for i, w := range words {
		out[i] = vm.Word(w)
	}
	return out
}

func toASMWords(words []vm.Word) []asm.Word {
	out := make([]asm.Word, len(words))
	for i, w := range words {
		out[i] = asm.Word(w)
	}
	return out
}

func runCommand(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	ftype, path := sharedFlags(fs)
	auto := fs.Bool("auto", false, "feed input from -auto-script before falling back to stdin")
	autoScript := fs.String("auto-script", "", "file of newline-terminated commands for -auto")
	debug := fs.Bool("d", false, "pause for Enter before each instruction")
	verbose := fs.Bool("v", false, "trace every instruction to stderr")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if *path == "" {
		log.Fatal("usage: synacor run -ftype <binary|assembly> -path <file> [-auto] [-auto-script <file>]")
	}

	words, err := loadWords(*ftype, *path)
	if err != nil {
		log.Fatal(err)
	}

	var script []string
	if *auto && *autoScript != "" {
		script, err = readScript(*autoScript)
		if err != nil {
			log.Fatal(err)
		}
	}

	machine, err := vm.New(words, os.Stdin, os.Stdout, script)
	if err != nil {
		log.Fatal(err)
	}
	machine.Plain = !isInteractive()

	for {
		if *verbose {
			fmt.Fprintln(os.Stderr, machine.Trace())
		}
		if *debug {
			fmt.Fprint(os.Stderr, "vm: paused, press Enter to continue...")
			bufio.NewReader(os.Stdin).ReadString('\n')
		}
		halted, err := machine.Step()
		if err != nil {
			log.Fatal(err)
		}
		if halted {
			return
		}
	}
}

func convertCommand(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	ftype, path := sharedFlags(fs)
	outPath := fs.String("out-path", "", "output file path")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if *path == "" || *outPath == "" {
		log.Fatal("usage: synacor convert -ftype <binary|assembly> -path <file> -out-path <file>")
	}

	switch fileType(*ftype) {
	case fileTypeBinary:
		raw, err := os.ReadFile(*path)
		if err != nil {
			log.Fatal(err)
		}
		text, err := asm.WordsToText(asm.BytesToWords(raw))
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*outPath, []byte(text), 0o644); err != nil {
			log.Fatal(err)
		}
	case fileTypeAssembly:
		raw, err := os.ReadFile(*path)
		if err != nil {
			log.Fatal(err)
		}
		words, err := asm.TextToWords(*path, string(raw))
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*outPath, asm.WordsToBytes(words), 0o644); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("invalid -ftype %q: expected \"binary\" or \"assembly\"", *ftype)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

func readScript(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		lines = append(lines, sc.Text()+"\n")
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// isInteractive reports whether stdout is attached to a terminal, used
// to decide whether to render the admin-introspection banner with
// borders or as plain text. It deliberately stops at IsTerminal: the
// VM only ever needs line-buffered blocking stdin reads, so raw
// terminal mode (term.MakeRaw) is never engaged here.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
